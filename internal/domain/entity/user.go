package entity

import "time"

// Roles válidos para User.
const (
	RoleAuthor     = "author"
	RoleBuyer      = "buyer"
	RolePublisher  = "publisher"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch s {
	case RoleAuthor, RoleBuyer, RolePublisher, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User representa un usuario del sistema. El rol determina sus capacidades.
type User struct {
	ID           int64
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca se serializa hacia afuera
	Role         string // author, buyer, publisher, admin, super_admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
