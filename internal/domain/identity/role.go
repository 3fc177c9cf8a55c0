package identity

import "github.com/glosas/backend/internal/domain/shared"

// Role is the closed set of roles an account can hold.
// Admin is a wildcard member of every allowed set.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleBillerIPS  Role = "FACTURADOR_IPS"
	RoleAuditorIPS Role = "AUDITOR_IPS"
	RoleManagerIPS Role = "GERENTE_IPS"
	RoleAuditorEPS Role = "AUDITOR_EPS"
	RoleUserEPS    Role = "USUARIO_EPS"
)

// AllRoles returns every valid role
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleBillerIPS,
		RoleAuditorIPS,
		RoleManagerIPS,
		RoleAuditorEPS,
		RoleUserEPS,
	}
}

// ParseRole validates a raw role string against the closed set
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+s)
}

// IsValid reports whether the role belongs to the closed set
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Authorize fails with a forbidden error unless role is in the allowed
// set. Admin passes every check.
func Authorize(role Role, allowed ...Role) error {
	if role == RoleAdmin {
		return nil
	}
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return shared.ErrForbidden
}
