package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// RoleRepository reads the role reference table. Roles are immutable data
// seeded outside this service.
type RoleRepository struct {
	pool *pgxpool.Pool
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) IDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`SELECT role_id FROM role WHERE role_name = $1`, name).Scan(&id)
	if err != nil {
		if noRows(err) {
			return 0, domain.ErrRoleNotFound
		}
		return 0, fmt.Errorf("role by name: %w", err)
	}
	return id, nil
}

// IDByIdentity unions role lookups across the three kind tables. Identity is
// unique per the account invariant, so the LIMIT 1 on an unordered union is
// only ever reached with a single candidate row.
func (r *RoleRepository) IDByIdentity(ctx context.Context, identity string) (int, error) {
	const q = `
		SELECT r.role_id FROM role r
		JOIN customer_account_data c ON c.role_id = r.role_id
		WHERE c.customer_id = $1
		UNION
		SELECT r.role_id FROM role r
		JOIN vendor_account_data v ON v.role_id = r.role_id
		WHERE v.vendor_id = $1
		UNION
		SELECT r.role_id FROM role r
		JOIN event_organizer_account_data e ON e.role_id = r.role_id
		WHERE e.organizer_id = $1
		LIMIT 1`
	var id int
	err := r.pool.QueryRow(ctx, q, identity).Scan(&id)
	if err != nil {
		if noRows(err) {
			return 0, domain.ErrRoleNotFound
		}
		return 0, fmt.Errorf("role by identity: %w", err)
	}
	return id, nil
}
