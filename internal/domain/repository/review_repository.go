package repository

import "github.com/Asforaa/eBook-Store-API/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id int64) (*entity.Review, error)
	ListByBook(bookID int64) ([]*entity.Review, error)
	List() ([]*entity.Review, error)
	Update(review *entity.Review) error
	Delete(id int64) (bool, error)
}
