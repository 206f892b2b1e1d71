package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del pedido.
type OrderItemRequest struct {
	BookID   int64 `json:"book_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse línea de una orden con el precio congelado al comprar.
type OrderItemResponse struct {
	BookID    int64           `json:"book_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string              `json:"id"`
	BuyerID   int64               `json:"buyer_id"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// SalesRowResponse fila del reporte de ventas agregado por libro.
type SalesRowResponse struct {
	BookID         int64           `json:"book_id"`
	BookTitle      string          `json:"book_title"`
	BookPrice      decimal.Decimal `json:"book_price"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalOrders    int64           `json:"total_orders"`
	AuthorID       int64           `json:"author_id"`
	AuthorUsername string          `json:"author_username"`
}
