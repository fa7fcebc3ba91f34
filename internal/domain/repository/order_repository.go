package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// OrderRepository persistence port for orders and their lines.
type OrderRepository interface {
	Create(o *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	List() ([]entity.Order, error)
	ListByDistributor(distributorID string) ([]entity.Order, error)
	ListItems(orderID string) ([]entity.OrderItem, error)
	Update(o *entity.Order) error
	Delete(id string) error
	DeleteItems(orderID string) error
}
