package usecase

import (
	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/rbac"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// UserUseCase administración de usuarios: listado, lectura, cambio de rol y borrado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios (sin password hash).
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID. Retorna ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateRole cambia el rol de un usuario aplicando el sub-policy de rbac:
// el rol del actor sale del token, el del target de la DB. El chequeo se hace
// contra el estado actual del target; cambios concurrentes quedan en
// last-write-wins (no hay lock optimista).
func (uc *UserUseCase) UpdateRole(actorRole string, targetID int64, newRole string) (*dto.UserResponse, error) {
	if !entity.ValidRole(newRole) {
		return nil, domain.ErrInvalidInput
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := rbac.CanAssignRole(actorRole, target.Role, newRole); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRole(targetID, newRole); err != nil {
		return nil, err
	}
	target.Role = newRole
	return toUserResponse(target), nil
}

// Delete elimina un usuario definitivamente.
func (uc *UserUseCase) Delete(id int64) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MessageResponse{Message: "usuario eliminado correctamente"}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
