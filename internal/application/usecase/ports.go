package usecase

import (
	"context"

	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// OrderTxRunner ejecuta una función con repos de libros y órdenes atados a la
// misma transacción. Lo implementa postgres.TxRunner; la interfaz vive aquí
// para que el caso de uso no dependa de la infraestructura (DIP).
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
