package ports

import (
	"context"

	"github.com/eventease/platform-api/internal/core/domain"
)

// AccountRepository persists the three account partitions. Implementations
// must report a storage-level email uniqueness violation as
// domain.ErrEmailTaken and an absent row as domain.ErrAccountNotFound.
type AccountRepository interface {
	// EmailInUse unions an existence check across all three kind tables.
	EmailInUse(ctx context.Context, email string) (bool, error)

	CreateCustomer(ctx context.Context, c *domain.Customer) error
	// CreateVendor and CreateOrganizer return the store-confirmed identity
	// (RETURNING clause), echoed back to the caller on success.
	CreateVendor(ctx context.Context, v *domain.Vendor) (string, error)
	CreateOrganizer(ctx context.Context, o *domain.Organizer) (string, error)

	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindVendorByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	FindOrganizerByEmail(ctx context.Context, email string) (*domain.Organizer, error)

	// Identity-or-email probes used by user-type resolution.
	FindCustomerByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Customer, error)
	FindVendorByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Vendor, error)
	FindOrganizerByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Organizer, error)

	// UpdateRole reassigns role_id on whichever kind table owns the identity.
	UpdateRole(ctx context.Context, identity string, roleID int) error
}
