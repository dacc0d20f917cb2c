package ports

import "context"

// RoleRepository reads the immutable role reference table.
type RoleRepository interface {
	// IDByName resolves a role name to its id. Absence is a normal outcome
	// reported as domain.ErrRoleNotFound; callers branch on it.
	IDByName(ctx context.Context, name string) (int, error)

	// IDByIdentity resolves the role assigned to an identity by unioning the
	// three kind tables joined to role. First row of the union wins; identity
	// uniqueness across kinds is assumed, not enforced, here.
	IDByIdentity(ctx context.Context, identity string) (int, error)
}
