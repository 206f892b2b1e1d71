package postgres

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de captura: registra el SQL y los argumentos sin tocar la DB
// ──────────────────────────────────────────────────────────────────────────────

type capturedStmt struct {
	sql  string
	args []any
}

type captureQuerier struct {
	execs     []capturedStmt
	queryRows []capturedStmt
	queries   []capturedStmt
}

func (q *captureQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, capturedStmt{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (q *captureQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, capturedStmt{sql: sql, args: args})
	return emptyRows{}, nil
}

func (q *captureQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.queryRows = append(q.queryRows, capturedStmt{sql: sql, args: args})
	return noopRow{}
}

// noopRow satisface pgx.Row dejando los destinos en su valor cero.
type noopRow struct{}

func (noopRow) Scan(_ ...any) error { return nil }

// emptyRows satisface pgx.Rows sin filas.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(_ ...any) error                          { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// insertColumns extrae la lista de columnas de un INSERT INTO <tabla> (...).
func insertColumns(t *testing.T, sql string) []string {
	t.Helper()
	m := regexp.MustCompile(`INSERT INTO \w+ \(([^)]+)\)`).FindStringSubmatch(sql)
	require.NotNil(t, m, "el statement debe ser un INSERT con lista de columnas: %s", sql)
	parts := strings.Split(m[1], ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		cols = append(cols, strings.TrimSpace(p))
	}
	return cols
}

// schemaNotNullColumns parsea scripts/schema.sql y devuelve las columnas
// NOT NULL sin DEFAULT de una tabla (las que todo INSERT debe cubrir).
func schemaNotNullColumns(t *testing.T, table string) []string {
	t.Helper()
	raw, err := os.ReadFile("../../../scripts/schema.sql")
	require.NoError(t, err, "debe existir el DDL en scripts/schema.sql")

	m := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\n\);`).FindStringSubmatch(string(raw))
	require.NotNil(t, m, "la tabla %s debe estar declarada en el schema", table)

	var cols []string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if !strings.Contains(line, "NOT NULL") || strings.Contains(line, "DEFAULT") {
			continue
		}
		cols = append(cols, strings.Fields(line)[0])
	}
	return cols
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderRepo.Create — el snapshot debe cubrir el DDL de order_books
// ──────────────────────────────────────────────────────────────────────────────

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:      "7a6c0b3e-0000-0000-0000-000000000001",
		BuyerID: 42,
		Items: []entity.OrderItem{
			{BookID: 1, Title: "Novela", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
			{BookID: 2, Title: "Cuentos", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
		Total:  decimal.RequireFromString("24.98"),
		Status: entity.OrderStatusCompleted,
	}
}

func TestOrderCreate_InsertaLineasConTituloSnapshot(t *testing.T) {
	q := &captureQuerier{}
	repo := NewOrderRepository(q)

	require.NoError(t, repo.Create(sampleOrder()))

	require.Len(t, q.execs, 2, "una línea insertada por item")
	cols := insertColumns(t, q.execs[0].sql)
	assert.Contains(t, cols, "title", "el título congelado debe escribirse en order_books")

	// Los args deben llevar el título del snapshot, no un id de libro
	assert.Contains(t, q.execs[0].args, "Novela")
	assert.Contains(t, q.execs[1].args, "Cuentos")
}

func TestOrderCreate_CubreColumnasNotNullDelSchema(t *testing.T) {
	q := &captureQuerier{}
	repo := NewOrderRepository(q)

	require.NoError(t, repo.Create(sampleOrder()))
	require.NotEmpty(t, q.execs)

	cols := insertColumns(t, q.execs[0].sql)
	for _, required := range schemaNotNullColumns(t, "order_books") {
		assert.Contains(t, cols, required,
			"el INSERT de order_books debe cubrir la columna NOT NULL %q", required)
	}
}

func TestOrderLoadItems_LeeDelSnapshotSinJoin(t *testing.T) {
	q := &captureQuerier{}
	repo := NewOrderRepository(q)

	_, err := repo.GetByID("7a6c0b3e-0000-0000-0000-000000000001")
	require.NoError(t, err)

	require.Len(t, q.queries, 1)
	sql := q.queries[0].sql
	assert.Contains(t, sql, "FROM order_books")
	assert.Contains(t, sql, "title", "las líneas se leen con el título congelado")
	assert.NotContains(t, sql, "JOIN books",
		"el título viene del snapshot, no del catálogo vivo")
}
