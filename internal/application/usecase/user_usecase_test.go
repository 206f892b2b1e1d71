package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asforaa/eBook-Store-API/internal/application/usecase"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, role string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Email: username + "@test.com", Role: role}
	require.NoError(t, repo.Create(u))
	return u
}

func TestUserUpdateRole_AdminPromueveBuyer(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "lector", entity.RoleBuyer)

	out, err := uc.UpdateRole(entity.RoleAdmin, target.ID, entity.RolePublisher)
	require.NoError(t, err)
	assert.Equal(t, entity.RolePublisher, out.Role)

	stored, _ := repo.GetByID(target.ID)
	assert.Equal(t, entity.RolePublisher, stored.Role, "el cambio debe persistirse")
}

func TestUserUpdateRole_AdminNoTocaOtroAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "colega", entity.RoleAdmin)

	// Un admin no puede degradar a otro admin
	_, err := uc.UpdateRole(entity.RoleAdmin, target.ID, entity.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID(target.ID)
	assert.Equal(t, entity.RoleAdmin, stored.Role, "el rol no debe cambiar")
}

func TestUserUpdateRole_AdminNoAsignaAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "lector", entity.RoleBuyer)

	// Asignar admin o super_admin queda reservado a super_admin
	_, err := uc.UpdateRole(entity.RoleAdmin, target.ID, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.UpdateRole(entity.RoleAdmin, target.ID, entity.RoleSuperAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdateRole_SuperAdminPuedeTodo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "colega", entity.RoleAdmin)

	out, err := uc.UpdateRole(entity.RoleSuperAdmin, target.ID, entity.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, out.Role)

	out, err = uc.UpdateRole(entity.RoleSuperAdmin, target.ID, entity.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, out.Role)
}

func TestUserUpdateRole_RolDesconocido_Invalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "lector", entity.RoleBuyer)

	_, err := uc.UpdateRole(entity.RoleSuperAdmin, target.ID, "wizard")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdateRole_TargetInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.UpdateRole(entity.RoleSuperAdmin, 999, entity.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	target := seedUser(t, repo, "borrable", entity.RoleBuyer)

	out, err := uc.Delete(target.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Message)

	_, err = uc.Delete(target.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "borrar dos veces debe fallar")
}
