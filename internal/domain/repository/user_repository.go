package repository

import "github.com/Asforaa/eBook-Store-API/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas normales no cargan PasswordHash; solo
// GetByUsernameWithPassword lo incluye (para login).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameWithPassword(username string) (*entity.User, error)
	// GetByUsernameOrEmail se usa en el pre-chequeo de unicidad del signup.
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	List() ([]*entity.User, error)
	UpdateRole(id int64, role string) error
	Delete(id int64) (bool, error)
}
