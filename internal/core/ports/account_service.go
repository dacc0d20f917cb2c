package ports

import (
	"context"

	"github.com/eventease/platform-api/internal/core/domain"
)

// RegisterCustomerInput carries a customer signup request. FirebaseUID is the
// externally issued identity used as the primary key.
type RegisterCustomerInput struct {
	FirebaseUID  string
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PhoneNo      *string
	Preferences  *string
	CustomerType string
}

type RegisterVendorInput struct {
	VendorID     string
	BusinessName string
	Email        string
	Password     string
	Location     *string
	ReviewRating *float64
	Preferences  *string
	LogoURL      *string
	VendorType   string
	PhoneNo      *string
	Services     *string
}

type RegisterOrganizerInput struct {
	OrganizerID       string
	CompanyName       string
	Industry          *string
	Location          *string
	ReviewRating      *float64
	Password          string
	SystemPreferences *string
	LogoURL           *string
	Email             string
	OrganizerType     string
}

// SyncInput reconciles an externally authenticated identity with the store.
type SyncInput struct {
	FirebaseUID string
	Email       string
	UserType    string
	VendorType  string
}

// UserTypeResult is the kind-tagged answer to a user-type probe. VendorType
// is populated only when the account lives in the vendor partition.
type UserTypeResult struct {
	UserType   string
	VendorType string
}

// AccountService orchestrates registration, login, identity sync, and role
// resolution across the three account kinds.
type AccountService interface {
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) error
	RegisterVendor(ctx context.Context, in RegisterVendorInput) (string, error)
	RegisterOrganizer(ctx context.Context, in RegisterOrganizerInput) (string, error)

	// Login tries kinds in fixed order Customer → Vendor → Organizer; the
	// first email match wins. Returns a signed session token and the
	// kind-tagged profile, or domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)

	// Sync is idempotent: repeated calls for the same identity/email pair
	// create at most one account. Returns the identity owning the email and
	// whether this call created it.
	Sync(ctx context.Context, in SyncInput) (userID string, created bool, err error)

	UserType(ctx context.Context, identity, email string) (*UserTypeResult, error)

	RoleID(ctx context.Context, identity string) (int, error)
	AssignRole(ctx context.Context, identity string, roleID int) error
}
