package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// La columna content es nullable (reseñas heredadas solo con rating); las
// lecturas deben tolerar NULL escaneando hacia string.
func TestReviewReads_ToleranContentNulo(t *testing.T) {
	q := &captureQuerier{}
	repo := NewReviewRepository(q)

	_, err := repo.GetByID(1)
	require.NoError(t, err)
	_, err = repo.ListByBook(1)
	require.NoError(t, err)
	_, err = repo.List()
	require.NoError(t, err)

	require.Len(t, q.queryRows, 1)
	require.Len(t, q.queries, 2)

	assert.Contains(t, q.queryRows[0].sql, "COALESCE(content, '')")
	for _, stmt := range q.queries {
		assert.Contains(t, stmt.sql, "COALESCE(content, '')",
			"toda lectura de reviews debe defender el scan contra NULL")
	}
}
