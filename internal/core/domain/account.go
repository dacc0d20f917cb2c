package domain

// Kind identifies which of the three account partitions a record belongs to.
// The three kind tables together form one identity space: an email may exist
// in at most one of them.
type Kind string

const (
	KindCustomer  Kind = "customer"
	KindVendor    Kind = "vendor"
	KindOrganizer Kind = "organizer"
)

// Role names present in the role reference table. Roles are looked up by
// name at registration time, never created by this service.
const (
	RoleCustomer  = "customer"
	RoleVendor    = "vendor"
	RoleOrganizer = "organizer"
)

// CustomerTypes is the allowed set for the customer sub-type enum.
var CustomerTypes = []string{"enthusiast", "student", "church", "customer", "individual"}

// ValidCustomerType reports whether t belongs to the allowed customer sub-types.
func ValidCustomerType(t string) bool {
	for _, v := range CustomerTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Customer is an account in the customer partition. ID is the externally
// issued identity (never generated here).
type Customer struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	PhoneNo      *string  `json:"phoneNo,omitempty"`
	Preferences  *string  `json:"preferences,omitempty"`
	CustomerType string   `json:"customerType"`
	Rating       *float64 `json:"rating,omitempty"`
	RoleID       int      `json:"roleId"`
}

// Vendor is an account in the vendor partition.
type Vendor struct {
	ID           string   `json:"id"`
	BusinessName string   `json:"businessName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Location     *string  `json:"location,omitempty"`
	ReviewRating *float64 `json:"reviewRating,omitempty"`
	Preferences  *string  `json:"preferences,omitempty"`
	LogoURL      *string  `json:"logoUrl,omitempty"`
	VendorType   string   `json:"vendorType"`
	PhoneNo      *string  `json:"phoneNo,omitempty"`
	Services     *string  `json:"services,omitempty"`
	RoleID       int      `json:"roleId"`
}

// Organizer is an account in the event-organizer partition.
type Organizer struct {
	ID                string   `json:"id"`
	CompanyName       string   `json:"companyName"`
	Industry          *string  `json:"industry,omitempty"`
	Location          *string  `json:"location,omitempty"`
	ReviewRating      *float64 `json:"reviewRating,omitempty"`
	PasswordHash      string   `json:"-"`
	SystemPreferences *string  `json:"systemPreferences,omitempty"`
	LogoURL           *string  `json:"logoUrl,omitempty"`
	Email             string   `json:"email"`
	OrganizerType     string   `json:"organizerType"`
	RoleID            int      `json:"roleId"`
}

// Profile is the kind-tagged view of an account returned by login.
// UserType carries the customer sub-type for customers, the literal "vendor"
// for vendors, and the organizer type for organizers; the remaining fields
// are populated per kind.
type Profile struct {
	Kind         Kind     `json:"-"`
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	UserType     string   `json:"userType"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	VendorType   string   `json:"vendorType,omitempty"`
	BusinessName string   `json:"businessName,omitempty"`
	CompanyName  string   `json:"companyName,omitempty"`
	Industry     *string  `json:"industry,omitempty"`
	Location     *string  `json:"location,omitempty"`
	LogoURL      *string  `json:"logoUrl,omitempty"`
	ReviewRating *float64 `json:"reviewRating,omitempty"`
}

// CustomerProfile builds the login view for a customer account.
func CustomerProfile(c *Customer) *Profile {
	return &Profile{
		Kind:      KindCustomer,
		ID:        c.ID,
		Email:     c.Email,
		UserType:  c.CustomerType,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// VendorProfile builds the login view for a vendor account.
func VendorProfile(v *Vendor) *Profile {
	return &Profile{
		Kind:         KindVendor,
		ID:           v.ID,
		Email:        v.Email,
		UserType:     "vendor",
		VendorType:   v.VendorType,
		BusinessName: v.BusinessName,
		Location:     v.Location,
		ReviewRating: v.ReviewRating,
		LogoURL:      v.LogoURL,
	}
}

// OrganizerProfile builds the login view for an organizer account.
func OrganizerProfile(o *Organizer) *Profile {
	return &Profile{
		Kind:         KindOrganizer,
		ID:           o.ID,
		Email:        o.Email,
		UserType:     o.OrganizerType,
		CompanyName:  o.CompanyName,
		Location:     o.Location,
		Industry:     o.Industry,
		LogoURL:      o.LogoURL,
		ReviewRating: o.ReviewRating,
	}
}
