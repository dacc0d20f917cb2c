package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventease/platform-api/internal/api/metrics"
	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// AuthHandler exposes registration, login, identity sync, and role
// resolution. Domain errors propagate to the central error handler; the
// handler's own job is binding, schema validation, and metrics.
type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// registrationOutcome classifies an error for the registrations counter.
func registrationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrEmailTaken):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrRoleMissing):
		return "invalid"
	default:
		return "error"
	}
}

// RegisterCustomer creates a customer account.
//
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer registration details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/register/customer [post]
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("customer", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.accounts.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		FirebaseUID:  req.FirebaseUID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNo:      req.PhoneNo,
		Preferences:  req.Preferences,
		CustomerType: req.CustomerType,
	})
	metrics.RegistrationsTotal.WithLabelValues("customer", registrationOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// RegisterVendor creates a vendor account and returns its identity.
//
// @Summary      Register a vendor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerVendorRequest  true  "Vendor registration details"
// @Success      201   {object}  registerVendorResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/register/vendor [post]
func (h *AuthHandler) RegisterVendor(c echo.Context) error {
	var req registerVendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("vendor", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.accounts.RegisterVendor(c.Request().Context(), ports.RegisterVendorInput{
		VendorID:     req.VendorID,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     req.Password,
		Location:     req.Location,
		ReviewRating: req.ReviewRating,
		Preferences:  req.Preferences,
		LogoURL:      req.LogoURL,
		VendorType:   req.VendorType,
		PhoneNo:      req.PhoneNo,
		Services:     req.Services,
	})
	metrics.RegistrationsTotal.WithLabelValues("vendor", registrationOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerVendorResponse{Success: true, VendorID: id})
}

// RegisterOrganizer creates an organizer account and returns its identity.
//
// @Summary      Register an organizer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerOrganizerRequest  true  "Organizer registration details"
// @Success      201   {object}  registerOrganizerResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/register/organizer [post]
func (h *AuthHandler) RegisterOrganizer(c echo.Context) error {
	var req registerOrganizerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("organizer", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.accounts.RegisterOrganizer(c.Request().Context(), ports.RegisterOrganizerInput{
		OrganizerID:       req.OrganizerID,
		CompanyName:       req.CompanyName,
		Industry:          req.Industry,
		Location:          req.Location,
		ReviewRating:      req.ReviewRating,
		Password:          req.Password,
		SystemPreferences: req.SystemPreferences,
		LogoURL:           req.LogoURL,
		Email:             req.Email,
		OrganizerType:     req.OrganizerType,
	})
	metrics.RegistrationsTotal.WithLabelValues("organizer", registrationOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerOrganizerResponse{Success: true, OrganizerID: id})
}

// Login authenticates any account kind by email and returns a kind-tagged
// profile with a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Same response as a failed credential check: the login surface does
		// not reveal which part of the input was wrong.
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrInvalidCredentials
	}

	token, profile, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, User: profile})
}

// SyncUser reconciles an externally authenticated identity with the account
// store. Idempotent: repeated calls for the same identity/email succeed.
//
// @Summary      Sync an externally authenticated user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      syncUserRequest  true  "Identity to reconcile"
// @Success      200   {object}  syncUserResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/sync [post]
func (h *AuthHandler) SyncUser(c echo.Context) error {
	var req syncUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SyncTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, created, err := h.accounts.Sync(c.Request().Context(), ports.SyncInput{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		UserType:    req.UserType,
		VendorType:  req.VendorType,
	})
	switch {
	case err == nil && created:
		metrics.SyncTotal.WithLabelValues("created").Inc()
	case err == nil:
		metrics.SyncTotal.WithLabelValues("existing").Inc()
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.SyncTotal.WithLabelValues("conflict").Inc()
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.SyncTotal.WithLabelValues("invalid").Inc()
	default:
		metrics.SyncTotal.WithLabelValues("error").Inc()
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncUserResponse{
		Success: true,
		Message: "User data synced successfully",
		UserID:  id,
	})
}

// UserType resolves which partition owns an identity or email.
//
// @Summary      Resolve a user's type
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      userTypeRequest  true  "Identity or email"
// @Success      200   {object}  userTypeResponse
// @Failure      404   {object}  map[string]any
// @Router       /api/users/type [post]
func (h *AuthHandler) UserType(c echo.Context) error {
	var req userTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirebaseUID == "" && req.Email == "" {
		return domain.ErrInvalidInput
	}

	res, err := h.accounts.UserType(c.Request().Context(), req.FirebaseUID, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userTypeResponse{UserType: res.UserType, VendorType: res.VendorType})
}

// GetRole returns the role id assigned to an identity.
//
// @Summary      Look up a user's role id
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleLookupRequest  true  "Identity"
// @Success      200   {object}  roleLookupResponse
// @Failure      404   {object}  map[string]any
// @Router       /api/roles/lookup [post]
func (h *AuthHandler) GetRole(c echo.Context) error {
	var req roleLookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roleID, err := h.accounts.RoleID(c.Request().Context(), req.FirebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleLookupResponse{RoleID: roleID})
}

// AssignRole reassigns a user's role. Protected route: organizer kind only.
//
// @Summary      Assign a role to a user
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      assignRoleRequest  true  "Identity and role id"
// @Success      200   {object}  assignRoleResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/roles/assign [post]
func (h *AuthHandler) AssignRole(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accounts.AssignRole(c.Request().Context(), req.UID, req.RoleID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignRoleResponse{Success: true, RoleID: req.RoleID})
}
