package rbac_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
	"github.com/Asforaa/eBook-Store-API/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Allowed
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowed_SinRequisitosEsPublico(t *testing.T) {
	assert.True(t, rbac.Allowed(entity.RoleBuyer))
	assert.True(t, rbac.Allowed(""))
}

func TestAllowed_PorPertenencia(t *testing.T) {
	assert.True(t, rbac.Allowed(entity.RoleAuthor, entity.RoleAuthor))
	assert.True(t, rbac.Allowed(entity.RoleBuyer, entity.RoleBuyer, entity.RoleAdmin))
	assert.False(t, rbac.Allowed(entity.RoleBuyer, entity.RoleAuthor))
	assert.False(t, rbac.Allowed(entity.RolePublisher, entity.RoleAdmin))
}

func TestAllowed_SuperAdminSiemprePasa(t *testing.T) {
	assert.True(t, rbac.Allowed(entity.RoleSuperAdmin, entity.RoleBuyer))
	assert.True(t, rbac.Allowed(entity.RoleSuperAdmin, entity.RoleAuthor, entity.RolePublisher))
}

func TestElevated(t *testing.T) {
	assert.False(t, rbac.Elevated(entity.RoleBuyer))
	assert.False(t, rbac.Elevated(entity.RoleAuthor))
	assert.True(t, rbac.Elevated(entity.RolePublisher))
	assert.True(t, rbac.Elevated(entity.RoleAdmin))
	assert.True(t, rbac.Elevated(entity.RoleSuperAdmin))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAssignRole: matriz del sub-policy de cambio de rol
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAssignRole_Matriz(t *testing.T) {
	cases := []struct {
		name      string
		actor     string
		target    string
		newRole   string
		forbidden bool
	}{
		{"admin asigna author a buyer", entity.RoleAdmin, entity.RoleBuyer, entity.RoleAuthor, false},
		{"admin asigna publisher a author", entity.RoleAdmin, entity.RoleAuthor, entity.RolePublisher, false},
		{"admin asigna buyer a publisher", entity.RoleAdmin, entity.RolePublisher, entity.RoleBuyer, false},
		{"admin no puede asignar admin", entity.RoleAdmin, entity.RoleBuyer, entity.RoleAdmin, true},
		{"admin no puede asignar super_admin", entity.RoleAdmin, entity.RoleBuyer, entity.RoleSuperAdmin, true},
		// Un admin nunca toca a otro admin/super_admin, sin importar el rol pedido.
		{"admin sobre admin falla con rol permitido", entity.RoleAdmin, entity.RoleAdmin, entity.RoleBuyer, true},
		{"admin sobre super_admin falla", entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleAuthor, true},
		{"super_admin asigna admin", entity.RoleSuperAdmin, entity.RoleBuyer, entity.RoleAdmin, false},
		{"super_admin asigna super_admin", entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleSuperAdmin, false},
		{"super_admin no degrada super_admin", entity.RoleSuperAdmin, entity.RoleSuperAdmin, entity.RoleAdmin, true},
		{"super_admin reafirma super_admin", entity.RoleSuperAdmin, entity.RoleSuperAdmin, entity.RoleSuperAdmin, false},
		{"buyer no asigna nada", entity.RoleBuyer, entity.RoleBuyer, entity.RoleAuthor, true},
		{"publisher no asigna nada", entity.RolePublisher, entity.RoleBuyer, entity.RoleAuthor, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rbac.CanAssignRole(tc.actor, tc.target, tc.newRole)
			if tc.forbidden {
				assert.True(t, errors.Is(err, domain.ErrForbidden), "esperaba ErrForbidden, obtuve %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
