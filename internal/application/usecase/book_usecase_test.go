package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/application/usecase"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBookCreate_SiempreEntraEnBinding(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	out, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "El Quijote anotado",
		Description: "Edición crítica",
		Price:       decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookStatusBinding, out.Status,
		"todo libro nuevo debe quedar en binding")
	assert.Equal(t, int64(7), out.AuthorID)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestBookCreate_PrecioNoPositivo_Rechazado(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())

	_, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "Gratis",
		Description: "d",
		Price:       decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBookUpdate_SoloElAutor(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	created, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "Original",
		Description: "d",
		Price:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	// Otro autor no puede editar
	_, err = uc.Update(created.ID, 99, dto.UpdateBookRequest{Title: strPtr("Hackeado")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El autor sí
	out, err := uc.Update(created.ID, 7, dto.UpdateBookRequest{
		Title: strPtr("Corregido"),
		Price: decPtr("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Corregido", out.Title)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestBookUpdate_FueraDeBinding_Bloqueado(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	created, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "Original",
		Description: "d",
		Price:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(created.ID, 2, entity.BookStatusPublished)
	require.NoError(t, err)

	// Publicado: el autor ya no puede editar
	_, err = uc.Update(created.ID, 7, dto.UpdateBookRequest{Title: strPtr("Tarde")})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un libro publicado no admite ediciones del autor")
}

func TestBookUpdateStatus_TransicionesYTerminales(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	created, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "Libro",
		Description: "d",
		Price:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	// Estado desconocido: rechazado
	_, err = uc.UpdateStatus(created.ID, 2, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// binding -> published registra quién aprobó
	out, err := uc.UpdateStatus(created.ID, 2, entity.BookStatusPublished)
	require.NoError(t, err)
	assert.Equal(t, entity.BookStatusPublished, out.Status)
	require.NotNil(t, out.PublishedBy)
	assert.Equal(t, int64(2), *out.PublishedBy)

	// published es terminal: ni re-publicar ni rechazar después
	_, err = uc.UpdateStatus(created.ID, 3, entity.BookStatusRejected)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un libro que salió de binding no admite más transiciones")
}

func TestBookGetPublishedByID_OcultaNoPublicados(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	created, err := uc.Create(7, dto.CreateBookRequest{
		Title:       "En revisión",
		Description: "d",
		Price:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	// En binding no se expone al catálogo
	_, err = uc.GetPublishedByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStatus(created.ID, 2, entity.BookStatusPublished)
	require.NoError(t, err)

	out, err := uc.GetPublishedByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
}

func TestBookListByStatus_SeparaBindingDePublicados(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	a, err := uc.Create(7, dto.CreateBookRequest{Title: "A", Description: "d", Price: decimal.RequireFromString("5.00")})
	require.NoError(t, err)
	_, err = uc.Create(7, dto.CreateBookRequest{Title: "B", Description: "d", Price: decimal.RequireFromString("6.00")})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(a.ID, 2, entity.BookStatusPublished)
	require.NoError(t, err)

	published, err := uc.ListPublished()
	require.NoError(t, err)
	binding, err := uc.ListBinding()
	require.NoError(t, err)

	assert.Len(t, published, 1)
	assert.Len(t, binding, 1)
	assert.Equal(t, "A", published[0].Title)
	assert.Equal(t, "B", binding[0].Title)
}

func TestBookDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())

	_, err := uc.Delete(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
