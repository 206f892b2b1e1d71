package repository

import "github.com/Asforaa/eBook-Store-API/internal/domain/entity"

// BookRepository define el puerto de persistencia para Book.
type BookRepository interface {
	Create(book *entity.Book) error
	GetByID(id int64) (*entity.Book, error)
	ListByStatus(status string) ([]*entity.Book, error)
	Update(book *entity.Book) error
	UpdateStatus(id int64, status string, publishedBy int64) error
	Delete(id int64) (bool, error)
}
