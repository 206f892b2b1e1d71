package usecase

import (
	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// ReviewUseCase reseñas de compradores sobre libros publicados.
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo, bookRepo: bookRepo}
}

// Create crea una reseña. El libro debe existir y estar published.
func (uc *ReviewUseCase) Create(buyerID int64, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	book, err := uc.bookRepo.GetByID(in.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, domain.ErrNotFound
	}

	// TODO: verificar que el comprador tenga una orden completed con este
	// libro antes de aceptar la reseña (consultar OrderRepository.ListByBuyer).
	review := &entity.Review{
		Content: in.Content,
		Rating:  in.Rating,
		BookID:  in.BookID,
		BuyerID: buyerID,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// Update edita una reseña. Solo su autor puede hacerlo.
func (uc *ReviewUseCase) Update(id, buyerID int64, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	if review.BuyerID != buyerID {
		return nil, domain.ErrForbidden
	}
	if in.Content != nil {
		review.Content = *in.Content
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		review.Rating = *in.Rating
	}
	if err := uc.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// Delete borra una reseña: su autor, o un admin/super_admin.
func (uc *ReviewUseCase) Delete(id, callerID int64, callerRole string) (*dto.MessageResponse, error) {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	isAdmin := callerRole == entity.RoleAdmin || callerRole == entity.RoleSuperAdmin
	if !isAdmin && review.BuyerID != callerID {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.reviewRepo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "reseña eliminada correctamente"}, nil
}

// ListByBook lista las reseñas de un libro (lectura pública).
func (uc *ReviewUseCase) ListByBook(bookID int64) ([]*dto.ReviewResponse, error) {
	reviews, err := uc.reviewRepo.ListByBook(bookID)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

// List lista todas las reseñas (lectura pública).
func (uc *ReviewUseCase) List() ([]*dto.ReviewResponse, error) {
	reviews, err := uc.reviewRepo.List()
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func toReviewResponses(reviews []*entity.Review) []*dto.ReviewResponse {
	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:        r.ID,
		Content:   r.Content,
		Rating:    r.Rating,
		BookID:    r.BookID,
		BuyerID:   r.BuyerID,
		CreatedAt: r.CreatedAt,
	}
}
