// seed crea el primer usuario super_admin de la instalación.
//
// Uso: go run ./cmd/seed <username> <email> <password>
// La conexión a PostgreSQL se toma de la misma configuración que cmd/api
// (DATABASE_URL o DB_HOST/DB_PORT/...). Si el username o el email ya existen,
// el comando falla sin tocar la base.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/infrastructure/postgres"
	"github.com/Asforaa/eBook-Store-API/pkg/config"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "uso: seed <username> <email> <password>")
		os.Exit(1)
	}
	username, email, password := os.Args[1], os.Args[2], os.Args[3]
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "el password debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear super_admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("super_admin creado: id=%d username=%s\n", user.ID, user.Username)
}
