package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

// SalesRow es una fila del agregado de ventas: revenue y número de órdenes
// por libro, con el autor atribuido. Es una vista derivada, no una entidad.
type SalesRow struct {
	BookID         int64
	BookTitle      string
	BookPrice      decimal.Decimal
	TotalSales     decimal.Decimal
	TotalOrders    int64
	AuthorID       int64
	AuthorUsername string
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	// Create inserta la orden y sus líneas snapshot.
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByBuyer(buyerID int64) ([]*entity.Order, error)
	// AllSales agrega ventas por libro sobre todas las órdenes.
	AllSales() ([]*SalesRow, error)
	// AuthorSales agrega ventas por libro restringido a un autor.
	AuthorSales(authorID int64) ([]*SalesRow, error)
}
