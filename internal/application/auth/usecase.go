package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/rbac"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
	"github.com/Asforaa/eBook-Store-API/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Signup registra un usuario nuevo. El registro público solo admite buyer y
// author; pedir un rol elevado retorna ErrForbidden. La unicidad de
// username/email se pre-chequea para dar un mensaje preciso por campo; el
// repositorio además traduce la violación de constraint como respaldo
// (la ventana entre chequeo y escritura no está serializada).
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.MessageResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if rbac.Elevated(role) {
		return nil, domain.ErrForbidden
	}

	existing, err := uc.userRepo.GetByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == in.Username {
			return nil, domain.ErrUsernameTaken
		}
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// Nunca se devuelve la credencial, solo la confirmación.
	return &dto.MessageResponse{Message: "usuario registrado correctamente"}, nil
}

// Login verifica username/password y genera el JWT de sesión.
// Usuario inexistente y password incorrecto producen el mismo ErrUnauthorized
// para no permitir enumerar usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsernameWithPassword(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token}, nil
}
