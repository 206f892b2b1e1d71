package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookRequest entrada para crear un libro. El estado inicial siempre es binding.
type CreateBookRequest struct {
	Title        string          `json:"title" validate:"required,min=1,max=200"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	EbookFileURL string          `json:"ebook_file_url" validate:"omitempty,url"`
}

// UpdateBookRequest entrada para editar un libro en binding (campos opcionales).
type UpdateBookRequest struct {
	Title        *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	EbookFileURL *string          `json:"ebook_file_url" validate:"omitempty,url"`
}

// UpdateBookStatusRequest entrada para la transición binding -> published|rejected.
type UpdateBookStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=published rejected"`
}

// BookResponse salida de un libro.
type BookResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	EbookFileURL string          `json:"ebook_file_url,omitempty"`
	AuthorID     int64           `json:"author_id"`
	PublishedBy  *int64          `json:"published_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
