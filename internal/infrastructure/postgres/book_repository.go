package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación del puerto BookRepository sobre PostgreSQL.
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

// Create persiste un libro nuevo. El id y created_at los pone la DB.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (title, description, price, status, ebook_file_url, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		book.Title, book.Description, book.Price, book.Status, book.EbookFileURL, book.AuthorID,
	).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID en cualquier estado.
func (r *BookRepo) GetByID(id int64) (*entity.Book, error) {
	query := `
		SELECT id, title, description, price, status, ebook_file_url, author_id, published_by, created_at
		FROM books WHERE id = $1`
	var b entity.Book
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.Price, &b.Status,
		&b.EbookFileURL, &b.AuthorID, &b.PublishedBy, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

// ListByStatus lista libros por estado, más recientes primero.
func (r *BookRepo) ListByStatus(status string) ([]*entity.Book, error) {
	query := `
		SELECT id, title, description, price, status, ebook_file_url, author_id, published_by, created_at
		FROM books WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Price, &b.Status,
			&b.EbookFileURL, &b.AuthorID, &b.PublishedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza los campos de contenido de un libro.
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET title = $2, description = $3, price = $4, ebook_file_url = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		book.ID, book.Title, book.Description, book.Price, book.EbookFileURL,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// UpdateStatus aplica la transición de estado y registra quién la hizo.
func (r *BookRepo) UpdateStatus(id int64, status string, publishedBy int64) error {
	query := `UPDATE books SET status = $2, published_by = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, publishedBy)
	if err != nil {
		return fmt.Errorf("update book status: %w", err)
	}
	return nil
}

// Delete elimina un libro por ID (las reseñas caen en cascada por FK).
// Retorna false si no existía.
func (r *BookRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
