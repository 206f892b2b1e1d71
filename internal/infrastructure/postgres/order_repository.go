package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas viven en order_books con el precio congelado al comprar.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y las líneas snapshot. Para que sea atómico debe
// llamarse con un Querier transaccional (ver TxRunner.RunOrder).
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, buyer_id, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		order.ID, order.BuyerID, order.Total, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_books (order_id, book_id, title, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range order.Items {
		if _, err := r.q.Exec(ctx, itemQuery, order.ID, it.BookID, it.Title, it.Quantity, it.UnitPrice); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, buyer_id, total, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.BuyerID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// ListByBuyer lista las órdenes de un comprador con sus líneas.
func (r *OrderRepo) ListByBuyer(buyerID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, buyer_id, total, status, created_at, updated_at
		FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.loadItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// loadItems lee las líneas desde el snapshot: el título es el congelado en
// order_books, no el actual de books (que pudo cambiar o borrarse).
func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT book_id, title, quantity, unit_price
		FROM order_books
		WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.BookID, &it.Title, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// salesQuery agrega por libro el total de las órdenes que lo referencian y
// cuenta esas órdenes. Es la vista derivada del ledger, no una tabla.
const salesQuery = `
	SELECT b.id, b.title, b.price, SUM(o.total), COUNT(o.id), u.id, u.username
	FROM orders o
	JOIN order_books ob ON ob.order_id = o.id
	JOIN books b ON b.id = ob.book_id
	JOIN users u ON u.id = b.author_id
	%s
	GROUP BY b.id, b.title, b.price, u.id, u.username
	ORDER BY b.id`

// AllSales agrega ventas por libro sobre todas las órdenes.
func (r *OrderRepo) AllSales() ([]*repository.SalesRow, error) {
	return r.querySales(fmt.Sprintf(salesQuery, ""))
}

// AuthorSales agrega ventas por libro restringido a un autor.
func (r *OrderRepo) AuthorSales(authorID int64) ([]*repository.SalesRow, error) {
	return r.querySales(fmt.Sprintf(salesQuery, "WHERE b.author_id = $1"), authorID)
}

func (r *OrderRepo) querySales(query string, args ...any) ([]*repository.SalesRow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SalesRow
	for rows.Next() {
		var s repository.SalesRow
		if err := rows.Scan(&s.BookID, &s.BookTitle, &s.BookPrice,
			&s.TotalSales, &s.TotalOrders, &s.AuthorID, &s.AuthorUsername); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
