package ports

import "context"

// ClaimsStore mirrors role assignments into the external authenticator's
// custom-claim storage, keyed by identity. Best-effort collaborator: the
// relational store remains the source of truth for role_id.
type ClaimsStore interface {
	SetRoleClaim(ctx context.Context, identity string, roleID int) error
	RoleClaim(ctx context.Context, identity string) (int, bool, error)
}

// BookingCache is a read-side cache for the grouped bookings listing.
type BookingCache interface {
	Get(ctx context.Context) (map[string][]BookingView, bool)
	Set(ctx context.Context, grouped map[string][]BookingView)
	Invalidate(ctx context.Context)
}
