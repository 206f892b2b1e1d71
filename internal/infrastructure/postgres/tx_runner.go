package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Asforaa/eBook-Store-API/internal/application/usecase"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción, ejecuta fn con repos de libros y órdenes
// atados a la tx y hace Commit o Rollback. Así el snapshot de precios y la
// orden se persisten juntos: ninguna orden parcial sobrevive a un fallo.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	bookRepo repository.BookRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookRepo := NewBookRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(bookRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
