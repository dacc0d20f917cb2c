package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// AccountRepository persists the three account partitions in their dedicated
// tables. The email uniqueness constraint spans all three via per-table
// unique indexes plus the EmailInUse union check at the service border; the
// per-table constraint is what actually arbitrates races.
type AccountRepository struct {
	pool *pgxpool.Pool
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) EmailInUse(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM customer_account_data WHERE customer_email = $1
		UNION ALL
		SELECT 1 FROM vendor_account_data WHERE vendor_email = $1
		UNION ALL
		SELECT 1 FROM event_organizer_account_data WHERE organizer_email = $1
	)`
	var inUse bool
	if err := r.pool.QueryRow(ctx, q, email).Scan(&inUse); err != nil {
		return false, fmt.Errorf("email in use: %w", err)
	}
	return inUse, nil
}

func (r *AccountRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	const q = `INSERT INTO customer_account_data
		(customer_id, customer_first_name, customer_last_name, customer_phone_no,
		 customer_password, customer_type, customer_email, preferences, customer_rating, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q,
		c.ID, c.FirstName, c.LastName, c.PhoneNo,
		nullable(c.PasswordHash), c.CustomerType, c.Email, c.Preferences, c.Rating, c.RoleID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *AccountRepository) CreateVendor(ctx context.Context, v *domain.Vendor) (string, error) {
	const q = `INSERT INTO vendor_account_data
		(vendor_id, vendor_business_name, vendor_email, vendor_password, vendor_location,
		 vendor_review_rating, preferences, vendor_logo_url, vendor_type, vendor_phone_no, services, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING vendor_id`
	var id string
	err := r.pool.QueryRow(ctx, q,
		v.ID, v.BusinessName, v.Email, nullable(v.PasswordHash), v.Location,
		v.ReviewRating, v.Preferences, v.LogoURL, v.VendorType, v.PhoneNo, v.Services, v.RoleID,
	).Scan(&id)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return "", mapped
		}
		return "", fmt.Errorf("insert vendor: %w", err)
	}
	return id, nil
}

func (r *AccountRepository) CreateOrganizer(ctx context.Context, o *domain.Organizer) (string, error) {
	const q = `INSERT INTO event_organizer_account_data
		(organizer_id, organizer_company_name, organizer_industry, organizer_location,
		 organizer_review_rating, organizer_password, organizer_system_preferences,
		 organizer_logo_url, organizer_email, organizer_type, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING organizer_id`
	var id string
	err := r.pool.QueryRow(ctx, q,
		o.ID, o.CompanyName, o.Industry, o.Location,
		o.ReviewRating, nullable(o.PasswordHash), o.SystemPreferences,
		o.LogoURL, o.Email, o.OrganizerType, o.RoleID,
	).Scan(&id)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return "", mapped
		}
		return "", fmt.Errorf("insert organizer: %w", err)
	}
	return id, nil
}

const customerColumns = `customer_id, customer_first_name, customer_last_name, customer_phone_no,
	COALESCE(customer_password, ''), customer_type, customer_email, preferences, customer_rating,
	COALESCE(role_id, 0)`

func (r *AccountRepository) scanCustomer(ctx context.Context, q string, args ...any) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneNo,
		&c.PasswordHash, &c.CustomerType, &c.Email, &c.Preferences, &c.Rating, &c.RoleID)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *AccountRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.scanCustomer(ctx,
		`SELECT `+customerColumns+` FROM customer_account_data WHERE customer_email = $1 LIMIT 1`, email)
}

func (r *AccountRepository) FindCustomerByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Customer, error) {
	return r.scanCustomer(ctx,
		`SELECT `+customerColumns+` FROM customer_account_data
		 WHERE customer_id = $1 OR customer_email = $2 LIMIT 1`, identity, email)
}

const vendorColumns = `vendor_id, vendor_business_name, vendor_email, COALESCE(vendor_password, ''),
	vendor_location, vendor_review_rating, preferences, vendor_logo_url, vendor_type,
	vendor_phone_no, services, COALESCE(role_id, 0)`

func (r *AccountRepository) scanVendor(ctx context.Context, q string, args ...any) (*domain.Vendor, error) {
	var v domain.Vendor
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&v.ID, &v.BusinessName, &v.Email, &v.PasswordHash,
		&v.Location, &v.ReviewRating, &v.Preferences, &v.LogoURL, &v.VendorType,
		&v.PhoneNo, &v.Services, &v.RoleID)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return &v, nil
}

func (r *AccountRepository) FindVendorByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	return r.scanVendor(ctx,
		`SELECT `+vendorColumns+` FROM vendor_account_data WHERE vendor_email = $1 LIMIT 1`, email)
}

func (r *AccountRepository) FindVendorByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Vendor, error) {
	return r.scanVendor(ctx,
		`SELECT `+vendorColumns+` FROM vendor_account_data
		 WHERE vendor_id = $1 OR vendor_email = $2 LIMIT 1`, identity, email)
}

const organizerColumns = `organizer_id, organizer_company_name, organizer_industry, organizer_location,
	organizer_review_rating, COALESCE(organizer_password, ''), organizer_system_preferences,
	organizer_logo_url, organizer_email, organizer_type, COALESCE(role_id, 0)`

func (r *AccountRepository) scanOrganizer(ctx context.Context, q string, args ...any) (*domain.Organizer, error) {
	var o domain.Organizer
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&o.ID, &o.CompanyName, &o.Industry, &o.Location,
		&o.ReviewRating, &o.PasswordHash, &o.SystemPreferences,
		&o.LogoURL, &o.Email, &o.OrganizerType, &o.RoleID)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find organizer: %w", err)
	}
	return &o, nil
}

func (r *AccountRepository) FindOrganizerByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	return r.scanOrganizer(ctx,
		`SELECT `+organizerColumns+` FROM event_organizer_account_data WHERE organizer_email = $1 LIMIT 1`, email)
}

func (r *AccountRepository) FindOrganizerByIdentityOrEmail(ctx context.Context, identity, email string) (*domain.Organizer, error) {
	return r.scanOrganizer(ctx,
		`SELECT `+organizerColumns+` FROM event_organizer_account_data
		 WHERE organizer_id = $1 OR organizer_email = $2 LIMIT 1`, identity, email)
}

// UpdateRole reassigns role_id on whichever kind table owns the identity.
// Identity is unique across partitions, so at most one statement matches.
func (r *AccountRepository) UpdateRole(ctx context.Context, identity string, roleID int) error {
	updates := []string{
		`UPDATE customer_account_data SET role_id = $1 WHERE customer_id = $2`,
		`UPDATE vendor_account_data SET role_id = $1 WHERE vendor_id = $2`,
		`UPDATE event_organizer_account_data SET role_id = $1 WHERE organizer_id = $2`,
	}
	for _, q := range updates {
		tag, err := r.pool.Exec(ctx, q, roleID, identity)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
	}
	return domain.ErrAccountNotFound
}
