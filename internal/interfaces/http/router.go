package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/auth"
	"github.com/jhoicas/distributor-api/internal/application/ordering"
	"github.com/jhoicas/distributor-api/internal/application/stock"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SKUUC         *usecase.SKUUseCase
	DistributorUC *usecase.DistributorUseCase
	StoreUC       *usecase.StoreUseCase
	SchemeUC      *usecase.SchemeUseCase
	PriceTierUC   *usecase.PriceTierUseCase
	WalletUC      *usecase.WalletUseCase
	OrderUC       *ordering.OrderUseCase
	StockUC       *stock.StockUseCase
	TransferUC    *stock.TransferUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RolePlantAdmin)
	plantOps := RequireRole(entity.RolePlantAdmin, entity.RoleASM)
	orderOps := RequireRole(entity.RolePlantAdmin, entity.RoleASM, entity.RoleExecutive, entity.RoleStoreAdmin)

	// Catalog
	skus := protected.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Post("/", adminOnly, skuHandler.Create)
	skus.Get("/", skuHandler.List)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", adminOnly, skuHandler.Update)

	// Price tiers
	tiers := protected.Group("/price-tiers")
	tierHandler := NewPriceTierHandler(deps.PriceTierUC)
	tiers.Post("/", adminOnly, tierHandler.Create)
	tiers.Get("/", tierHandler.List)
	tiers.Get("/:id", tierHandler.GetByID)
	tiers.Put("/:id/items", adminOnly, tierHandler.UpsertItem)
	tiers.Delete("/:id/items/:skuId", adminOnly, tierHandler.RemoveItem)

	// Distributors
	distributors := protected.Group("/distributors")
	distributorHandler := NewDistributorHandler(deps.DistributorUC)
	distributors.Post("/", plantOps, distributorHandler.Create)
	distributors.Get("/", distributorHandler.List)
	distributors.Get("/:id", distributorHandler.GetByID)
	distributors.Put("/:id", plantOps, distributorHandler.Update)

	// Stores
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)

	// Schemes
	schemes := protected.Group("/schemes")
	schemeHandler := NewSchemeHandler(deps.SchemeUC)
	schemes.Post("/", plantOps, schemeHandler.Create)
	schemes.Get("/", schemeHandler.List)
	schemes.Post("/:id/stop", plantOps, schemeHandler.Stop)

	// Orders (quote is read-only, placing mutates stock and wallets)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/quote", orderOps, orderHandler.Quote)
	orders.Post("/", orderOps, orderHandler.Place)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/items", orderHandler.ListItems)
	orders.Post("/:id/deliver", orderOps, orderHandler.Deliver)
	orders.Delete("/:id", orderOps, orderHandler.Cancel)

	// Plant to store transfers
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/quote", plantOps, transferHandler.Quote)
	transfers.Post("/", plantOps, transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/:id/deliver", plantOps, transferHandler.Deliver)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/production", adminOnly, stockHandler.RecordProduction)
	stockGroup.Get("/:locationId", stockHandler.ListByLocation)

	// Wallet
	wallet := protected.Group("/wallet")
	walletHandler := NewWalletHandler(deps.WalletUC)
	wallet.Post("/recharge", plantOps, walletHandler.Recharge)
	wallet.Get("/distributors/:id", walletHandler.ListByDistributor)
	wallet.Get("/stores/:id", walletHandler.ListByStore)
}
