package dto

import "time"

// SignupRequest entrada para registro público. Role solo admite buyer o author;
// pedir un rol elevado se rechaza con 403.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer author"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateRoleRequest entrada para cambiar el rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=author buyer publisher admin super_admin"`
}
