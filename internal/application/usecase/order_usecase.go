package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// OrderUseCase creación de órdenes y consultas de ventas.
// El total se calcula con decimal (sin drift de punto flotante) sobre un
// snapshot de precios tomado dentro de la misma transacción que persiste la
// orden: o se guarda todo o no se guarda nada.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner OrderTxRunner, orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, userRepo: userRepo}
}

// Create arma la orden del comprador: cada libro debe existir y estar
// published; total = Σ(precio × cantidad). No hay pasarela de pago todavía,
// la orden se persiste directamente como completed.
func (uc *OrderUseCase) Create(ctx context.Context, buyerID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(bookRepo repository.BookRepository, orderRepo repository.OrderRepository) error {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			if it.Quantity < 1 {
				return domain.ErrInvalidInput
			}
			book, err := bookRepo.GetByID(it.BookID)
			if err != nil {
				return err
			}
			if book == nil {
				return domain.ErrNotFound
			}
			if book.Status != entity.BookStatusPublished {
				return domain.ErrBookNotAvailable
			}
			items = append(items, entity.OrderItem{
				BookID:    book.ID,
				Title:     book.Title,
				Quantity:  it.Quantity,
				UnitPrice: book.Price,
			})
			total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		order = &entity.Order{
			ID:      uuid.New().String(),
			BuyerID: buyerID,
			Items:   items,
			Total:   total,
			Status:  entity.OrderStatusCompleted,
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByUser devuelve solo las órdenes del comprador autenticado.
func (uc *OrderUseCase) GetByUser(buyerID int64) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByBuyer(buyerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// GetByID devuelve una orden visible para su dueño o para admin/super_admin.
func (uc *OrderUseCase) GetByID(orderID string, callerID int64, callerRole string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && callerRole != entity.RoleSuperAdmin && order.BuyerID != callerID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// AllSales agrega ventas por libro sobre todas las órdenes.
func (uc *OrderUseCase) AllSales() ([]*dto.SalesRowResponse, error) {
	rows, err := uc.orderRepo.AllSales()
	if err != nil {
		return nil, err
	}
	return toSalesResponse(rows), nil
}

// AuthorSales agrega ventas restringidas a los libros de un autor.
// Retorna ErrUserNotFound si el autor no existe.
func (uc *OrderUseCase) AuthorSales(authorID int64) ([]*dto.SalesRowResponse, error) {
	author, err := uc.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domain.ErrUserNotFound
	}
	rows, err := uc.orderRepo.AuthorSales(authorID)
	if err != nil {
		return nil, err
	}
	return toSalesResponse(rows), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			BookID:    it.BookID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		BuyerID:   o.BuyerID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toSalesResponse(rows []*repository.SalesRow) []*dto.SalesRowResponse {
	out := make([]*dto.SalesRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.SalesRowResponse{
			BookID:         r.BookID,
			BookTitle:      r.BookTitle,
			BookPrice:      r.BookPrice,
			TotalSales:     r.TotalSales,
			TotalOrders:    r.TotalOrders,
			AuthorID:       r.AuthorID,
			AuthorUsername: r.AuthorUsername,
		})
	}
	return out
}
