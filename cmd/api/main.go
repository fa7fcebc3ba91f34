package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/distributor-api/internal/application/auth"
	"github.com/jhoicas/distributor-api/internal/application/ordering"
	appstock "github.com/jhoicas/distributor-api/internal/application/stock"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/distributor-api/internal/interfaces/http"
	"github.com/jhoicas/distributor-api/pkg/config"
	"github.com/jhoicas/distributor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	schemeRepo := postgres.NewSchemeRepository(pool)
	tierRepo := postgres.NewPriceTierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	walletRepo := postgres.NewWalletRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	skuUC := usecase.NewSKUUseCase(skuRepo)
	distributorUC := usecase.NewDistributorUseCase(distributorRepo, tierRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	schemeUC := usecase.NewSchemeUseCase(schemeRepo, skuRepo)
	tierUC := usecase.NewPriceTierUseCase(tierRepo, skuRepo)
	walletUC := usecase.NewWalletUseCase(txRunner, walletRepo)
	orderUC := ordering.NewOrderUseCase(txRunner, distributorRepo, skuRepo, schemeRepo, tierRepo, stockRepo, orderRepo)
	stockUC := appstock.NewStockUseCase(txRunner, stockRepo)
	transferUC := appstock.NewTransferUseCase(txRunner, skuRepo, stockRepo, storeRepo, transferRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Distributor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SKUUC:         skuUC,
		DistributorUC: distributorUC,
		StoreUC:       storeUC,
		SchemeUC:      schemeUC,
		PriceTierUC:   tierUC,
		WalletUC:      walletUC,
		OrderUC:       orderUC,
		StockUC:       stockUC,
		TransferUC:    transferUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
