package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una reseña nueva.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (content, rating, book_id, buyer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		review.Content, review.Rating, review.BookID, review.BuyerID,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ReviewRepo) GetByID(id int64) (*entity.Review, error) {
	query := `
		SELECT id, COALESCE(content, ''), rating, book_id, buyer_id, created_at
		FROM reviews WHERE id = $1`
	var rv entity.Review
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rv.ID, &rv.Content, &rv.Rating, &rv.BookID, &rv.BuyerID, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

// ListByBook lista las reseñas de un libro.
func (r *ReviewRepo) ListByBook(bookID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, COALESCE(content, ''), rating, book_id, buyer_id, created_at
		FROM reviews WHERE book_id = $1 ORDER BY created_at DESC`
	return r.queryReviews(query, bookID)
}

// List lista todas las reseñas.
func (r *ReviewRepo) List() ([]*entity.Review, error) {
	query := `
		SELECT id, COALESCE(content, ''), rating, book_id, buyer_id, created_at
		FROM reviews ORDER BY created_at DESC`
	return r.queryReviews(query)
}

func (r *ReviewRepo) queryReviews(query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.Content, &rv.Rating, &rv.BookID, &rv.BuyerID, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// Update actualiza contenido y rating de una reseña.
func (r *ReviewRepo) Update(review *entity.Review) error {
	query := `UPDATE reviews SET content = $2, rating = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, review.ID, review.Content, review.Rating)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete elimina una reseña por ID. Retorna false si no existía.
func (r *ReviewRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
