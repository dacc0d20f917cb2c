package handler

// --- Request types ---

type registerCustomerRequest struct {
	FirebaseUID  string   `json:"firebaseUid"  validate:"required"`
	FirstName    string   `json:"firstName"    validate:"required"`
	LastName     string   `json:"lastName"     validate:"required"`
	Email        string   `json:"email"        validate:"required,email"`
	Password     string   `json:"password"     validate:"required"`
	PhoneNo      *string  `json:"phoneNo"`
	Preferences  *string  `json:"preferences"`
	CustomerType string   `json:"customerType" validate:"required,oneof=enthusiast student church customer"`
}

type registerVendorRequest struct {
	VendorID     string   `json:"vendorId"           validate:"required"`
	BusinessName string   `json:"vendorBusinessName" validate:"required"`
	Email        string   `json:"vendorEmail"        validate:"required,email"`
	Password     string   `json:"vendorPassword"     validate:"required"`
	Location     *string  `json:"vendorLocation"`
	ReviewRating *float64 `json:"vendorReviewRating"`
	Preferences  *string  `json:"preferences"`
	LogoURL      *string  `json:"vendorLogoUrl"`
	VendorType   string   `json:"vendorType"         validate:"required"`
	PhoneNo      *string  `json:"vendorPhoneNo"`
	Services     *string  `json:"services"`
}

type registerOrganizerRequest struct {
	OrganizerID       string   `json:"organizerId"                validate:"required"`
	CompanyName       string   `json:"organizerCompanyName"       validate:"required"`
	Industry          *string  `json:"organizerIndustry"`
	Location          *string  `json:"organizerLocation"`
	ReviewRating      *float64 `json:"organizerReviewRating"`
	Password          string   `json:"organizerPassword"          validate:"required"`
	SystemPreferences *string  `json:"organizerSystemPreferences"`
	LogoURL           *string  `json:"organizerLogoUrl"`
	Email             string   `json:"organizerEmail"             validate:"required,email"`
	OrganizerType     string   `json:"organizerType"              validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type syncUserRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	UserType    string `json:"userType"    validate:"required"`
	VendorType  string `json:"vendorType"`
}

// userTypeRequest probes by identity or email; at least one must be present,
// checked in the handler since either alone is sufficient.
type userTypeRequest struct {
	FirebaseUID string `json:"firebaseUid"`
	Email       string `json:"email"`
}

type roleLookupRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"required"`
}

type assignRoleRequest struct {
	UID    string `json:"uid"     validate:"required"`
	RoleID int    `json:"role_id" validate:"required,gt=0"`
}

// --- Response types ---

type successResponse struct {
	Success bool `json:"success"`
}

type registerVendorResponse struct {
	Success  bool   `json:"success"`
	VendorID string `json:"vendorId"`
}

type registerOrganizerResponse struct {
	Success     bool   `json:"success"`
	OrganizerID string `json:"organizerId"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    any    `json:"user"`
}

type syncUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type userTypeResponse struct {
	UserType   string `json:"userType"`
	VendorType string `json:"vendorType,omitempty"`
}

type roleLookupResponse struct {
	RoleID int `json:"roleId"`
}

type assignRoleResponse struct {
	Success bool `json:"success"`
	RoleID  int  `json:"role_id"`
}
