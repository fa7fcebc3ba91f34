package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository over PostgreSQL (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a new order header.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, distributor_id, date, total_amount, status, placed_by_exec_id, delivered_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.DistributorID, o.Date, o.TotalAmount, o.Status, o.PlacedByExecID, o.DeliveredDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persists one order line.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, sku_id, quantity, unit_price, is_freebie)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.SKUID, item.Quantity, item.UnitPrice, item.IsFreebie,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID returns an order by id, or nil when it does not exist.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, distributor_id, date, total_amount, status, placed_by_exec_id, delivered_date
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.DistributorID, &o.Date, &o.TotalAmount, &o.Status, &o.PlacedByExecID, &o.DeliveredDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List returns all orders, most recent first.
func (r *OrderRepo) List() ([]entity.Order, error) {
	query := `
		SELECT id, distributor_id, date, total_amount, status, placed_by_exec_id, delivered_date
		FROM orders ORDER BY date DESC, id`
	return r.list(query)
}

// ListByDistributor returns the orders of one distributor, most recent first.
func (r *OrderRepo) ListByDistributor(distributorID string) ([]entity.Order, error) {
	query := `
		SELECT id, distributor_id, date, total_amount, status, placed_by_exec_id, delivered_date
		FROM orders WHERE distributor_id = $1 ORDER BY date DESC, id`
	return r.list(query, distributorID)
}

// ListItems returns the lines of one order, paid lines first.
func (r *OrderRepo) ListItems(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, sku_id, quantity, unit_price, is_freebie
		FROM order_items WHERE order_id = $1 ORDER BY is_freebie, sku_id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.SKUID, &item.Quantity, &item.UnitPrice, &item.IsFreebie); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update rewrites the status fields of an order.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET total_amount = $2, status = $3, delivered_date = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, o.ID, o.TotalAmount, o.Status, o.DeliveredDate)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete removes an order header (cancellation of pending orders).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteItems removes every line of an order.
func (r *OrderRepo) DeleteItems(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.DistributorID, &o.Date, &o.TotalAmount, &o.Status, &o.PlacedByExecID, &o.DeliveredDate,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
