package entity

import "time"

// Review es la reseña de un comprador sobre un libro publicado.
// Solo el comprador que la escribió puede mutarla (admin puede borrarla).
type Review struct {
	ID        int64
	Content   string
	Rating    int // la columna admite 0..5; la API solo acepta 1..5
	BookID    int64
	BuyerID   int64
	CreatedAt time.Time
}
