package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
	"github.com/eventease/platform-api/internal/password"
)

// AccountService implements registration, login, identity sync, and role
// resolution over the three account partitions. It is the polymorphism point:
// kind dispatch happens here, not in storage.
type AccountService struct {
	accounts  ports.AccountRepository
	roles     ports.RoleRepository
	claims    ports.ClaimsStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

var _ ports.AccountService = (*AccountService)(nil)

func NewAccountService(accounts ports.AccountRepository, roles ports.RoleRepository, claims ports.ClaimsStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{
		accounts:  accounts,
		roles:     roles,
		claims:    claims,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// resolveRole looks up reference data for a role name. Absence here is a
// deployment problem, not a user error.
func (s *AccountService) resolveRole(ctx context.Context, name string) (int, error) {
	id, err := s.roles.IDByName(ctx, name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		s.logger.Error().Str("role", name).Msg("role reference data missing")
		return 0, domain.ErrRoleMissing
	}
	return id, err
}

func (s *AccountService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) error {
	if in.FirebaseUID == "" || in.FirstName == "" || in.LastName == "" ||
		in.Email == "" || in.Password == "" || in.CustomerType == "" {
		return domain.ErrInvalidInput
	}
	if !domain.ValidCustomerType(in.CustomerType) {
		return domain.ErrInvalidInput
	}

	roleID, err := s.resolveRole(ctx, domain.RoleCustomer)
	if err != nil {
		return err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return err
	}

	c := &domain.Customer{
		ID:           in.FirebaseUID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		PhoneNo:      in.PhoneNo,
		Preferences:  in.Preferences,
		CustomerType: in.CustomerType,
		RoleID:       roleID,
	}
	if err := s.accounts.CreateCustomer(ctx, c); err != nil {
		return err
	}

	s.logger.Info().Str("customer_id", c.ID).Str("customer_type", c.CustomerType).Msg("customer registered")
	return nil
}

func (s *AccountService) RegisterVendor(ctx context.Context, in ports.RegisterVendorInput) (string, error) {
	if in.VendorID == "" || in.BusinessName == "" || in.Email == "" ||
		in.Password == "" || in.VendorType == "" {
		return "", domain.ErrInvalidInput
	}

	roleID, err := s.resolveRole(ctx, domain.RoleVendor)
	if err != nil {
		return "", err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", err
	}

	v := &domain.Vendor{
		ID:           in.VendorID,
		BusinessName: in.BusinessName,
		Email:        in.Email,
		PasswordHash: hash,
		Location:     in.Location,
		ReviewRating: in.ReviewRating,
		Preferences:  in.Preferences,
		LogoURL:      in.LogoURL,
		VendorType:   in.VendorType,
		PhoneNo:      in.PhoneNo,
		Services:     in.Services,
		RoleID:       roleID,
	}
	id, err := s.accounts.CreateVendor(ctx, v)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("vendor_id", id).Str("vendor_type", v.VendorType).Msg("vendor registered")
	return id, nil
}

func (s *AccountService) RegisterOrganizer(ctx context.Context, in ports.RegisterOrganizerInput) (string, error) {
	if in.OrganizerID == "" || in.CompanyName == "" || in.Email == "" ||
		in.Password == "" || in.OrganizerType == "" {
		return "", domain.ErrInvalidInput
	}

	roleID, err := s.resolveRole(ctx, domain.RoleOrganizer)
	if err != nil {
		return "", err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", err
	}

	o := &domain.Organizer{
		ID:                in.OrganizerID,
		CompanyName:       in.CompanyName,
		Industry:          in.Industry,
		Location:          in.Location,
		ReviewRating:      in.ReviewRating,
		PasswordHash:      hash,
		SystemPreferences: in.SystemPreferences,
		LogoURL:           in.LogoURL,
		Email:             in.Email,
		OrganizerType:     in.OrganizerType,
		RoleID:            roleID,
	}
	id, err := s.accounts.CreateOrganizer(ctx, o)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("organizer_id", id).Msg("organizer registered")
	return id, nil
}

// Login tries kinds in fixed order Customer → Vendor → Organizer. The first
// email hit decides the outcome: a password mismatch on a matched account does
// not fall through to the next kind. Unknown email and wrong password both
// surface as the same ErrInvalidCredentials value.
func (s *AccountService) Login(ctx context.Context, email, pw string) (string, *domain.Profile, error) {
	if email == "" || pw == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if c, err := s.accounts.FindCustomerByEmail(ctx, email); err == nil {
		if !password.Verify(pw, c.PasswordHash) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return s.issue(domain.CustomerProfile(c))
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", nil, err
	}

	if v, err := s.accounts.FindVendorByEmail(ctx, email); err == nil {
		if !password.Verify(pw, v.PasswordHash) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return s.issue(domain.VendorProfile(v))
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", nil, err
	}

	if o, err := s.accounts.FindOrganizerByEmail(ctx, email); err == nil {
		if !password.Verify(pw, o.PasswordHash) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return s.issue(domain.OrganizerProfile(o))
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", nil, err
	}

	return "", nil, domain.ErrInvalidCredentials
}

func (s *AccountService) issue(p *domain.Profile) (string, *domain.Profile, error) {
	claims := jwt.MapClaims{
		"sub":       p.ID,
		"email":     p.Email,
		"kind":      string(p.Kind),
		"user_type": p.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

// Sync reconciles an externally authenticated identity with the store. Safe
// to invoke repeatedly for the same identity/email pair: an existing account
// of any kind short-circuits to success. A lost insert race surfaces the
// storage conflict; callers may retry by re-running the lookup.
func (s *AccountService) Sync(ctx context.Context, in ports.SyncInput) (string, bool, error) {
	if in.FirebaseUID == "" || in.Email == "" || in.UserType == "" {
		return "", false, domain.ErrInvalidInput
	}

	if id, found, err := s.lookupByEmail(ctx, in.Email); err != nil {
		return "", false, err
	} else if found {
		s.logger.Debug().Str("user_id", id).Str("email", in.Email).Msg("sync: account already present")
		return id, false, nil
	}

	switch in.UserType {
	case "individual":
		roleID, err := s.resolveRole(ctx, domain.RoleCustomer)
		if err != nil {
			return "", false, err
		}
		c := &domain.Customer{
			ID:           in.FirebaseUID,
			FirstName:    "New",
			LastName:     "User",
			Email:        in.Email,
			CustomerType: "individual",
			RoleID:       roleID,
		}
		if err := s.accounts.CreateCustomer(ctx, c); err != nil {
			return "", false, err
		}
	case "vendor":
		roleID, err := s.resolveRole(ctx, domain.RoleVendor)
		if err != nil {
			return "", false, err
		}
		vendorType := in.VendorType
		if vendorType == "" {
			vendorType = "general"
		}
		v := &domain.Vendor{
			ID:           in.FirebaseUID,
			BusinessName: "New Business",
			Email:        in.Email,
			VendorType:   vendorType,
			RoleID:       roleID,
		}
		if _, err := s.accounts.CreateVendor(ctx, v); err != nil {
			return "", false, err
		}
	case "organizer":
		roleID, err := s.resolveRole(ctx, domain.RoleOrganizer)
		if err != nil {
			return "", false, err
		}
		o := &domain.Organizer{
			ID:            in.FirebaseUID,
			CompanyName:   "New Company",
			Email:         in.Email,
			OrganizerType: "organizer",
			RoleID:        roleID,
		}
		if _, err := s.accounts.CreateOrganizer(ctx, o); err != nil {
			return "", false, err
		}
	default:
		return "", false, domain.ErrInvalidInput
	}

	s.logger.Info().Str("user_id", in.FirebaseUID).Str("user_type", in.UserType).Msg("sync: account created")
	return in.FirebaseUID, true, nil
}

// lookupByEmail unions the existence check across the three kinds, first hit
// wins in the same order login uses.
func (s *AccountService) lookupByEmail(ctx context.Context, email string) (string, bool, error) {
	if c, err := s.accounts.FindCustomerByEmail(ctx, email); err == nil {
		return c.ID, true, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", false, err
	}
	if v, err := s.accounts.FindVendorByEmail(ctx, email); err == nil {
		return v.ID, true, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", false, err
	}
	if o, err := s.accounts.FindOrganizerByEmail(ctx, email); err == nil {
		return o.ID, true, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", false, err
	}
	return "", false, nil
}

// UserType resolves which partition owns the identity or email and returns
// its kind-tagged type.
func (s *AccountService) UserType(ctx context.Context, identity, email string) (*ports.UserTypeResult, error) {
	if c, err := s.accounts.FindCustomerByIdentityOrEmail(ctx, identity, email); err == nil {
		return &ports.UserTypeResult{UserType: c.CustomerType}, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if v, err := s.accounts.FindVendorByIdentityOrEmail(ctx, identity, email); err == nil {
		return &ports.UserTypeResult{UserType: "vendor", VendorType: v.VendorType}, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if o, err := s.accounts.FindOrganizerByIdentityOrEmail(ctx, identity, email); err == nil {
		return &ports.UserTypeResult{UserType: o.OrganizerType}, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	return nil, domain.ErrAccountNotFound
}

func (s *AccountService) RoleID(ctx context.Context, identity string) (int, error) {
	if identity == "" {
		return 0, domain.ErrInvalidInput
	}
	return s.roles.IDByIdentity(ctx, identity)
}

// AssignRole reassigns role_id on the owning kind table, then mirrors the
// claim into the external authenticator's custom-claim storage. The mirror is
// best-effort: the relational store is the source of truth.
func (s *AccountService) AssignRole(ctx context.Context, identity string, roleID int) error {
	if identity == "" || roleID <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.accounts.UpdateRole(ctx, identity, roleID); err != nil {
		return err
	}
	if s.claims != nil {
		if err := s.claims.SetRoleClaim(ctx, identity, roleID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", identity).Msg("failed to mirror role claim")
		}
	}
	s.logger.Info().Str("user_id", identity).Int("role_id", roleID).Msg("role assigned")
	return nil
}
