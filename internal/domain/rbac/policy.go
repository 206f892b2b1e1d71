// Package rbac concentra la política de roles en reglas declarativas y
// testeables, en lugar de condicionales repartidos por los handlers.
//
// Jerarquía: buyer/author < publisher/admin < super_admin.
// super_admin pasa cualquier verificación de acceso, pero la asignación de
// roles tiene reglas propias más estrictas (ver CanAssignRole).
package rbac

import (
	"fmt"

	"github.com/Asforaa/eBook-Store-API/internal/domain"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

// rank posiciona cada rol en la jerarquía. Solo se usa para razonar sobre
// elevación; las decisiones de acceso son por pertenencia al conjunto requerido.
var rank = map[string]int{
	entity.RoleBuyer:      1,
	entity.RoleAuthor:     1,
	entity.RolePublisher:  2,
	entity.RoleAdmin:      2,
	entity.RoleSuperAdmin: 3,
}

// adminAssignable es el conjunto de roles que un admin puede asignar.
var adminAssignable = map[string]bool{
	entity.RoleAuthor:    true,
	entity.RolePublisher: true,
	entity.RoleBuyer:     true,
}

// Elevated indica si el rol está por encima de los roles de registro público.
// El signup solo admite buyer y author.
func Elevated(role string) bool {
	return rank[role] > 1
}

// Allowed decide si un rol puede ejecutar una operación cuyo acceso está
// restringido a required. Sin requisitos la operación es pública.
// super_admin siempre pasa.
func Allowed(role string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	if role == entity.RoleSuperAdmin {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// CanAssignRole valida el sub-policy de cambio de rol:
//   - un admin solo puede asignar author, publisher o buyer;
//   - un admin nunca puede modificar a un target que ya es admin o super_admin;
//   - un super_admin puede asignar cualquier rol, pero no degradar a otro super_admin.
//
// Cualquier violación retorna domain.ErrForbidden envuelto con el motivo.
func CanAssignRole(actorRole, targetRole, newRole string) error {
	switch actorRole {
	case entity.RoleAdmin:
		if !adminAssignable[newRole] {
			return fmt.Errorf("%w: un admin solo puede asignar author, publisher o buyer", domain.ErrForbidden)
		}
		if targetRole == entity.RoleAdmin || targetRole == entity.RoleSuperAdmin {
			return fmt.Errorf("%w: un admin no puede modificar a otros admins o super admins", domain.ErrForbidden)
		}
	case entity.RoleSuperAdmin:
		if targetRole == entity.RoleSuperAdmin && newRole != entity.RoleSuperAdmin {
			return fmt.Errorf("%w: no se puede degradar a un super admin", domain.ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: rol sin permiso para asignar roles", domain.ErrForbidden)
	}
	return nil
}
