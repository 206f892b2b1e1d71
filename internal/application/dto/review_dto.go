package dto

import "time"

// CreateReviewRequest entrada para crear una reseña.
// Rating se valida 1..5 en la API aunque la columna tolere 0.
type CreateReviewRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	BookID  int64  `json:"book_id" validate:"required"`
}

// UpdateReviewRequest entrada para editar una reseña (campos opcionales).
type UpdateReviewRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	BookID    int64     `json:"book_id"`
	BuyerID   int64     `json:"buyer_id"`
	CreatedAt time.Time `json:"created_at"`
}
