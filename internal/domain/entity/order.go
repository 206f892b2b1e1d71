package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem es la línea de una orden: snapshot del libro al momento de la compra.
// UnitPrice se congela al crear la orden; cambios de precio posteriores no la afectan.
type OrderItem struct {
	BookID    int64
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order representa una compra. Total = Σ(UnitPrice × Quantity) de sus items.
type Order struct {
	ID        string // uuid
	BuyerID   int64
	Items     []OrderItem
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
