package usecase

import (
	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// BookUseCase ciclo de vida del libro: binding -> published | rejected.
// published y rejected son terminales; desde ahí el autor ya no puede editar
// y no hay transición de vuelta.
type BookUseCase struct {
	repo repository.BookRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository) *BookUseCase {
	return &BookUseCase{repo: repo}
}

// Create crea un libro para el autor autenticado. El estado inicial se fuerza
// a binding sin importar lo que venga en el request.
func (uc *BookUseCase) Create(authorID int64, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Title == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	book := &entity.Book{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Status:       entity.BookStatusBinding,
		EbookFileURL: in.EbookFileURL,
		AuthorID:     authorID,
	}
	if err := uc.repo.Create(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// Update edita el contenido de un libro. Solo su autor y solo mientras el
// estado siga en binding.
func (uc *BookUseCase) Update(bookID, authorID int64, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	if book.AuthorID != authorID {
		return nil, domain.ErrForbidden
	}
	if book.Status != entity.BookStatusBinding {
		return nil, domain.ErrForbidden
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		book.Title = *in.Title
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		book.Price = *in.Price
	}
	if in.EbookFileURL != nil {
		book.EbookFileURL = *in.EbookFileURL
	}
	if err := uc.repo.Update(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// UpdateStatus aplica la transición binding -> published | rejected y registra
// quién la aprobó. Un libro que ya salió de binding no admite más transiciones.
func (uc *BookUseCase) UpdateStatus(bookID, reviewerID int64, status string) (*dto.BookResponse, error) {
	if status != entity.BookStatusPublished && status != entity.BookStatusRejected {
		return nil, domain.ErrInvalidInput
	}
	book, err := uc.repo.GetByID(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	if book.Status != entity.BookStatusBinding {
		return nil, domain.ErrForbidden
	}
	if err := uc.repo.UpdateStatus(bookID, status, reviewerID); err != nil {
		return nil, err
	}
	book.Status = status
	book.PublishedBy = &reviewerID
	return toBookResponse(book), nil
}

// ListPublished lista el catálogo público.
func (uc *BookUseCase) ListPublished() ([]*dto.BookResponse, error) {
	return uc.listByStatus(entity.BookStatusPublished)
}

// ListBinding lista la cola de revisión (solo publisher/admin por ruta).
func (uc *BookUseCase) ListBinding() ([]*dto.BookResponse, error) {
	return uc.listByStatus(entity.BookStatusBinding)
}

func (uc *BookUseCase) listByStatus(status string) ([]*dto.BookResponse, error) {
	books, err := uc.repo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out, nil
}

// GetPublishedByID obtiene un libro publicado. Los libros en binding o
// rejected no se exponen por esta vía.
func (uc *BookUseCase) GetPublishedByID(id int64) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, domain.ErrNotFound
	}
	return toBookResponse(book), nil
}

// Delete borra un libro definitivamente (las reseñas caen en cascada por FK).
func (uc *BookUseCase) Delete(id int64) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrNotFound
	}
	return &dto.MessageResponse{Message: "libro eliminado correctamente"}, nil
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	if b == nil {
		return nil
	}
	return &dto.BookResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		Price:        b.Price,
		Status:       b.Status,
		EbookFileURL: b.EbookFileURL,
		AuthorID:     b.AuthorID,
		PublishedBy:  b.PublishedBy,
		CreatedAt:    b.CreatedAt,
	}
}
