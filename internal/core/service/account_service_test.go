package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
	"github.com/eventease/platform-api/internal/password"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	customers  map[string]*domain.Customer // keyed by email
	vendors    map[string]*domain.Vendor
	organizers map[string]*domain.Organizer

	createErr   error // if set, every Create returns this error
	updatedRole map[string]int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		customers:   make(map[string]*domain.Customer),
		vendors:     make(map[string]*domain.Vendor),
		organizers:  make(map[string]*domain.Organizer),
		updatedRole: make(map[string]int),
	}
}

func (r *stubAccountRepo) EmailInUse(_ context.Context, email string) (bool, error) {
	_, c := r.customers[email]
	_, v := r.vendors[email]
	_, o := r.organizers[email]
	return c || v || o, nil
}

func (r *stubAccountRepo) emailTaken(email string) bool {
	inUse, _ := r.EmailInUse(context.Background(), email)
	return inUse
}

func (r *stubAccountRepo) CreateCustomer(_ context.Context, c *domain.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.emailTaken(c.Email) {
		return domain.ErrEmailTaken
	}
	clone := *c
	r.customers[c.Email] = &clone
	return nil
}

func (r *stubAccountRepo) CreateVendor(_ context.Context, v *domain.Vendor) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	if r.emailTaken(v.Email) {
		return "", domain.ErrEmailTaken
	}
	clone := *v
	r.vendors[v.Email] = &clone
	return v.ID, nil
}

func (r *stubAccountRepo) CreateOrganizer(_ context.Context, o *domain.Organizer) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	if r.emailTaken(o.Email) {
		return "", domain.ErrEmailTaken
	}
	clone := *o
	r.organizers[o.Email] = &clone
	return o.ID, nil
}

func (r *stubAccountRepo) FindCustomerByEmail(_ context.Context, email string) (*domain.Customer, error) {
	if c, ok := r.customers[email]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindVendorByEmail(_ context.Context, email string) (*domain.Vendor, error) {
	if v, ok := r.vendors[email]; ok {
		clone := *v
		return &clone, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindOrganizerByEmail(_ context.Context, email string) (*domain.Organizer, error) {
	if o, ok := r.organizers[email]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindCustomerByIdentityOrEmail(_ context.Context, identity, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == identity || (email != "" && c.Email == email) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindVendorByIdentityOrEmail(_ context.Context, identity, email string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.ID == identity || (email != "" && v.Email == email) {
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindOrganizerByIdentityOrEmail(_ context.Context, identity, email string) (*domain.Organizer, error) {
	for _, o := range r.organizers {
		if o.ID == identity || (email != "" && o.Email == email) {
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) UpdateRole(_ context.Context, identity string, roleID int) error {
	for _, c := range r.customers {
		if c.ID == identity {
			c.RoleID = roleID
			r.updatedRole[identity] = roleID
			return nil
		}
	}
	for _, v := range r.vendors {
		if v.ID == identity {
			v.RoleID = roleID
			r.updatedRole[identity] = roleID
			return nil
		}
	}
	for _, o := range r.organizers {
		if o.ID == identity {
			o.RoleID = roleID
			r.updatedRole[identity] = roleID
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

type stubRoleRepo struct {
	byName     map[string]int
	byIdentity map[string]int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{
		byName:     map[string]int{domain.RoleCustomer: 1, domain.RoleVendor: 2, domain.RoleOrganizer: 3},
		byIdentity: make(map[string]int),
	}
}

func (r *stubRoleRepo) IDByName(_ context.Context, name string) (int, error) {
	if id, ok := r.byName[name]; ok {
		return id, nil
	}
	return 0, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) IDByIdentity(_ context.Context, identity string) (int, error) {
	if id, ok := r.byIdentity[identity]; ok {
		return id, nil
	}
	return 0, domain.ErrRoleNotFound
}

type stubClaimsStore struct {
	claims map[string]int
	setErr error
}

func newStubClaimsStore() *stubClaimsStore {
	return &stubClaimsStore{claims: make(map[string]int)}
}

func (s *stubClaimsStore) SetRoleClaim(_ context.Context, identity string, roleID int) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.claims[identity] = roleID
	return nil
}

func (s *stubClaimsStore) RoleClaim(_ context.Context, identity string) (int, bool, error) {
	id, ok := s.claims[identity]
	return id, ok, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testSecret = "test-secret"

func newTestAccountService(repo *stubAccountRepo, roles *stubRoleRepo, claims *stubClaimsStore) *AccountService {
	return NewAccountService(repo, roles, claims, testSecret, time.Hour, zerolog.Nop())
}

func registerCustomer(t *testing.T, svc *AccountService, email string) {
	t.Helper()
	err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		FirebaseUID:  "cust-" + email,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		Password:     "secret123",
		CustomerType: "enthusiast",
	})
	if err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func TestRegisterCustomer_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	registerCustomer(t, svc, "ada@example.com")

	c, ok := repo.customers["ada@example.com"]
	if !ok {
		t.Fatal("customer was not persisted")
	}
	if c.RoleID != 1 {
		t.Errorf("RoleID = %d, want 1", c.RoleID)
	}
	if c.PasswordHash == "secret123" || c.PasswordHash == "" {
		t.Errorf("password was not hashed: %q", c.PasswordHash)
	}
	if !password.Verify("secret123", c.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterCustomer_InvalidCustomerType(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		FirebaseUID:  "c1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Password:     "secret123",
		CustomerType: "wholesale",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterCustomer_MissingFields(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterCustomer_RoleMissing(t *testing.T) {
	roles := newStubRoleRepo()
	delete(roles.byName, domain.RoleCustomer)
	svc := newTestAccountService(newStubAccountRepo(), roles, newStubClaimsStore())

	err := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		FirebaseUID:  "c1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Password:     "secret123",
		CustomerType: "student",
	})
	if !errors.Is(err, domain.ErrRoleMissing) {
		t.Fatalf("err = %v, want ErrRoleMissing", err)
	}
}

func TestRegisterVendor_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	id, err := svc.RegisterVendor(context.Background(), ports.RegisterVendorInput{
		VendorID:     "v-1",
		BusinessName: "Cakes & Co",
		Email:        "cakes@example.com",
		Password:     "secret123",
		VendorType:   "catering",
	})
	if err != nil {
		t.Fatalf("RegisterVendor: %v", err)
	}
	if id != "v-1" {
		t.Errorf("id = %q, want %q", id, "v-1")
	}
	if v := repo.vendors["cakes@example.com"]; v == nil || v.RoleID != 2 {
		t.Errorf("vendor not persisted with role 2: %+v", v)
	}
}

func TestRegisterOrganizer_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	id, err := svc.RegisterOrganizer(context.Background(), ports.RegisterOrganizerInput{
		OrganizerID:   "o-1",
		CompanyName:   "Eventful Ltd",
		Email:         "events@example.com",
		Password:      "secret123",
		OrganizerType: "organizer",
	})
	if err != nil {
		t.Fatalf("RegisterOrganizer: %v", err)
	}
	if id != "o-1" {
		t.Errorf("id = %q, want %q", id, "o-1")
	}
}

func TestRegister_DuplicateEmailAcrossKinds(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	registerCustomer(t, svc, "shared@example.com")

	_, err := svc.RegisterVendor(context.Background(), ports.RegisterVendorInput{
		VendorID:     "v-1",
		BusinessName: "Cakes & Co",
		Email:        "shared@example.com",
		Password:     "secret123",
		VendorType:   "catering",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestLogin_CustomerSuccess(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())
	registerCustomer(t, svc, "ada@example.com")

	token, profile, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if profile.Kind != domain.KindCustomer {
		t.Errorf("Kind = %q, want %q", profile.Kind, domain.KindCustomer)
	}
	if profile.UserType != "enthusiast" {
		t.Errorf("UserType = %q, want %q", profile.UserType, "enthusiast")
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["kind"] != string(domain.KindCustomer) {
		t.Errorf("kind claim = %v, want %q", claims["kind"], domain.KindCustomer)
	}
	if claims["email"] != "ada@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}

func TestLogin_VendorCarriesVendorType(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	if _, err := svc.RegisterVendor(context.Background(), ports.RegisterVendorInput{
		VendorID:     "v-1",
		BusinessName: "Cakes & Co",
		Email:        "cakes@example.com",
		Password:     "secret123",
		VendorType:   "catering",
	}); err != nil {
		t.Fatalf("RegisterVendor: %v", err)
	}

	_, profile, err := svc.Login(context.Background(), "cakes@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if profile.Kind != domain.KindVendor || profile.UserType != "vendor" {
		t.Errorf("profile = %+v, want vendor kind", profile)
	}
	if profile.VendorType != "catering" {
		t.Errorf("VendorType = %q, want %q", profile.VendorType, "catering")
	}
}

func TestLogin_OrganizerSuccess(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	if _, err := svc.RegisterOrganizer(context.Background(), ports.RegisterOrganizerInput{
		OrganizerID:   "o-1",
		CompanyName:   "Eventful Ltd",
		Email:         "events@example.com",
		Password:      "secret123",
		OrganizerType: "organizer",
	}); err != nil {
		t.Fatalf("RegisterOrganizer: %v", err)
	}

	_, profile, err := svc.Login(context.Background(), "events@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if profile.Kind != domain.KindOrganizer {
		t.Errorf("Kind = %q, want %q", profile.Kind, domain.KindOrganizer)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_UndifferentiatedFailures(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())
	registerCustomer(t, svc, "ada@example.com")

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret123")
	_, _, errWrongPw := svc.Login(context.Background(), "ada@example.com", "not-the-password")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", errWrongPw)
	}
	if errUnknown != errWrongPw {
		t.Error("unknown-email and wrong-password failures must be the same error value")
	}
}

// A password mismatch on a matched customer must not fall through and match a
// vendor holding a different password.
func TestLogin_FirstEmailHitDecides(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	hash, _ := password.Hash("customer-pw")
	repo.customers["dup@example.com"] = &domain.Customer{
		ID: "c-1", Email: "dup@example.com", PasswordHash: hash, CustomerType: "customer",
	}
	vendorHash, _ := password.Hash("vendor-pw")
	repo.vendors["dup@example.com"] = &domain.Vendor{
		ID: "v-1", Email: "dup@example.com", PasswordHash: vendorHash, VendorType: "catering",
	}

	if _, _, err := svc.Login(context.Background(), "dup@example.com", "vendor-pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials (no fall-through)", err)
	}
	if _, p, err := svc.Login(context.Background(), "dup@example.com", "customer-pw"); err != nil || p.Kind != domain.KindCustomer {
		t.Fatalf("customer password must win: p=%+v err=%v", p, err)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email err = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password err = %v", err)
	}
}

// ---------------------------------------------------------------------------
// Sync
// ---------------------------------------------------------------------------

func TestSync_CreatesCustomerPlaceholder(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	id, created, err := svc.Sync(context.Background(), ports.SyncInput{
		FirebaseUID: "uid-1",
		Email:       "new@example.com",
		UserType:    "individual",
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !created || id != "uid-1" {
		t.Fatalf("created=%v id=%q, want created uid-1", created, id)
	}

	c := repo.customers["new@example.com"]
	if c == nil {
		t.Fatal("customer placeholder was not persisted")
	}
	if c.FirstName != "New" || c.LastName != "User" {
		t.Errorf("placeholder name = %q %q", c.FirstName, c.LastName)
	}
	if c.CustomerType != "individual" {
		t.Errorf("CustomerType = %q, want individual", c.CustomerType)
	}
	if c.PasswordHash != "" {
		t.Errorf("placeholder must not carry a password hash, got %q", c.PasswordHash)
	}
}

func TestSync_Idempotent(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	in := ports.SyncInput{FirebaseUID: "uid-1", Email: "new@example.com", UserType: "vendor"}

	id1, created1, err := svc.Sync(context.Background(), in)
	if err != nil || !created1 {
		t.Fatalf("first sync: id=%q created=%v err=%v", id1, created1, err)
	}
	id2, created2, err := svc.Sync(context.Background(), in)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if created2 {
		t.Error("second sync must not create")
	}
	if id2 != id1 {
		t.Errorf("second sync id = %q, want %q", id2, id1)
	}
	if len(repo.vendors) != 1 {
		t.Errorf("vendor count = %d, want 1", len(repo.vendors))
	}
}

func TestSync_ExistingEmailAnyKindShortCircuits(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())
	registerCustomer(t, svc, "ada@example.com")

	// Same email, different claimed identity and type: existing wins.
	id, created, err := svc.Sync(context.Background(), ports.SyncInput{
		FirebaseUID: "other-uid",
		Email:       "ada@example.com",
		UserType:    "organizer",
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if created {
		t.Error("sync against an occupied email must not create")
	}
	if id != "cust-ada@example.com" {
		t.Errorf("id = %q, want the existing owner", id)
	}
	if len(repo.organizers) != 0 {
		t.Error("no organizer row must appear")
	}
}

func TestSync_VendorTypeDefault(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	if _, _, err := svc.Sync(context.Background(), ports.SyncInput{
		FirebaseUID: "uid-1", Email: "v@example.com", UserType: "vendor",
	}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if v := repo.vendors["v@example.com"]; v == nil || v.VendorType != "general" {
		t.Errorf("vendor = %+v, want VendorType general", v)
	}
}

func TestSync_UnknownUserType(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	_, _, err := svc.Sync(context.Background(), ports.SyncInput{
		FirebaseUID: "uid-1", Email: "x@example.com", UserType: "admin",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

// ---------------------------------------------------------------------------
// UserType / roles
// ---------------------------------------------------------------------------

func TestUserType_VendorIncludesVendorType(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())

	if _, err := svc.RegisterVendor(context.Background(), ports.RegisterVendorInput{
		VendorID:     "v-1",
		BusinessName: "Cakes & Co",
		Email:        "cakes@example.com",
		Password:     "secret123",
		VendorType:   "catering",
	}); err != nil {
		t.Fatalf("RegisterVendor: %v", err)
	}

	res, err := svc.UserType(context.Background(), "v-1", "")
	if err != nil {
		t.Fatalf("UserType: %v", err)
	}
	if res.UserType != "vendor" || res.VendorType != "catering" {
		t.Errorf("result = %+v", res)
	}
}

func TestUserType_CustomerByEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAccountService(repo, newStubRoleRepo(), newStubClaimsStore())
	registerCustomer(t, svc, "ada@example.com")

	res, err := svc.UserType(context.Background(), "", "ada@example.com")
	if err != nil {
		t.Fatalf("UserType: %v", err)
	}
	if res.UserType != "enthusiast" || res.VendorType != "" {
		t.Errorf("result = %+v", res)
	}
}

func TestUserType_NotFound(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	if _, err := svc.UserType(context.Background(), "ghost", "ghost@example.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestRoleID(t *testing.T) {
	roles := newStubRoleRepo()
	roles.byIdentity["v-1"] = 2
	svc := newTestAccountService(newStubAccountRepo(), roles, newStubClaimsStore())

	id, err := svc.RoleID(context.Background(), "v-1")
	if err != nil || id != 2 {
		t.Fatalf("RoleID = %d, %v", id, err)
	}
	if _, err := svc.RoleID(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty identity err = %v", err)
	}
	if _, err := svc.RoleID(context.Background(), "ghost"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Errorf("unknown identity err = %v", err)
	}
}

func TestAssignRole_UpdatesStoreAndMirrorsClaim(t *testing.T) {
	repo := newStubAccountRepo()
	claims := newStubClaimsStore()
	svc := newTestAccountService(repo, newStubRoleRepo(), claims)
	registerCustomer(t, svc, "ada@example.com")

	if err := svc.AssignRole(context.Background(), "cust-ada@example.com", 3); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if repo.updatedRole["cust-ada@example.com"] != 3 {
		t.Error("role_id was not updated in the store")
	}
	if claims.claims["cust-ada@example.com"] != 3 {
		t.Error("role claim was not mirrored")
	}
}

// A failing claim mirror must not fail the assignment.
func TestAssignRole_ClaimMirrorBestEffort(t *testing.T) {
	repo := newStubAccountRepo()
	claims := newStubClaimsStore()
	claims.setErr = errors.New("claims backend down")
	svc := newTestAccountService(repo, newStubRoleRepo(), claims)
	registerCustomer(t, svc, "ada@example.com")

	if err := svc.AssignRole(context.Background(), "cust-ada@example.com", 3); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if repo.updatedRole["cust-ada@example.com"] != 3 {
		t.Error("store update must still happen")
	}
}

func TestAssignRole_UnknownIdentity(t *testing.T) {
	svc := newTestAccountService(newStubAccountRepo(), newStubRoleRepo(), newStubClaimsStore())

	if err := svc.AssignRole(context.Background(), "ghost", 2); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
	if err := svc.AssignRole(context.Background(), "", 2); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty identity err = %v", err)
	}
}
