package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un libro.
// binding -> published | rejected; published y rejected son terminales.
const (
	BookStatusBinding   = "binding"
	BookStatusPublished = "published"
	BookStatusRejected  = "rejected"
)

// Book representa un libro del catálogo.
// Mientras está en binding solo su autor puede editarlo; al pasar a
// published o rejected queda inmutable para el autor.
type Book struct {
	ID           int64
	Title        string
	Description  string
	Price        decimal.Decimal // precio de venta, siempre positivo
	Status       string          // binding, published, rejected
	EbookFileURL string
	AuthorID     int64
	PublishedBy  *int64 // usuario (publisher/admin) que aprobó o rechazó
	CreatedAt    time.Time
}
