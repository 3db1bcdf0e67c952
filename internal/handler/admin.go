package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/config"
	"github.com/iliyamo/case-record-tracker/internal/filter"
	"github.com/iliyamo/case-record-tracker/internal/model"
	"github.com/iliyamo/case-record-tracker/internal/repository"
	"github.com/iliyamo/case-record-tracker/internal/utils"
)

// AdminHandler implements the administrator surface: multi-field case
// filtering, dashboard stats, and user administration (listing, role
// reassignment, account provisioning). Case CRUD for admins reuses the
// CaseHandler routes.
type AdminHandler struct {
	Cfg      config.Config
	Cases    *repository.CaseRepo
	Users    *repository.UserRepo
	Profiles *repository.ProfileRepo
}

func NewAdminHandler(cfg config.Config, cases *repository.CaseRepo, users *repository.UserRepo, profiles *repository.ProfileRepo) *AdminHandler {
	if cases == nil || users == nil || profiles == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Cases: cases, Users: users, Profiles: profiles}
}

// FilterCases handles GET /v1/admin/cases. The whole collection is fetched
// and the filter predicates run in memory, AND-combined; every empty
// parameter passes through, so no parameters returns the full list.
// Query parameters: q, date_from, date_to (2006-01-02), clerk,
// aadhar_or_case, pin_code.
func (h *AdminHandler) FilterCases(c echo.Context) error {
	cases, err := h.Cases.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load cases"})
	}
	f := filter.Filter{
		SearchTerm:   c.QueryParam("q"),
		DateFrom:     c.QueryParam("date_from"),
		DateTo:       c.QueryParam("date_to"),
		Clerk:        c.QueryParam("clerk"),
		AadharOrCase: c.QueryParam("aadhar_or_case"),
		PinCode:      c.QueryParam("pin_code"),
	}
	filtered := filter.Apply(cases, f, time.Local)
	return c.JSON(http.StatusOK, echo.Map{"items": filtered, "count": len(filtered), "total": len(cases)})
}

// Stats handles GET /v1/admin/stats: the dashboard counters over the full
// case and user lists.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	cases, err := h.Cases.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load cases"})
	}
	users, err := h.Profiles.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load users"})
	}
	return c.JSON(http.StatusOK, filter.Count(cases, users))
}

// ClerkOptions handles GET /v1/admin/clerks: the deduplicated, sorted
// display names of clerk-role accounts, offered as the filter's choice
// list. Derived from user accounts, not from the officer names appearing
// on cases.
func (h *AdminHandler) ClerkOptions(c echo.Context) error {
	names, err := h.Profiles.ClerkNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load users"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": names})
}

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.Profiles.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load users"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": users, "count": len(users)})
}

// UpdateRole handles PATCH /v1/admin/users/:id/role, the only mutating
// path for an existing account. Idempotent: reassigning the current role
// succeeds and changes nothing. The updated user is returned so the
// client can update its local list without a re-fetch.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	role, ok := model.ParseRole(strings.TrimSpace(body.Role))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	u, err := h.Profiles.GetByUserID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
	}
	return c.JSON(http.StatusOK, u)
}

// validateNewUser runs the local provisioning checks. A non-empty return
// is the problem to report; no store call may happen when it fires.
func validateNewUser(email, password, fullName string) string {
	if email == "" || password == "" || fullName == "" {
		return "please fill all fields"
	}
	if len(password) < utils.MinPasswordLen {
		return "password must be at least 6 characters"
	}
	return ""
}

// createUserReq is the provisioning payload.
type createUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// CreateUser handles POST /v1/admin/users: two-step provisioning. Local
// validation runs first and reports violations without touching the
// store. Step (a) creates the credential; a duplicate email aborts here,
// guaranteeing no orphaned profile. Step (b) writes the profile keyed by
// the new credential id; if (b) fails after (a) succeeded the result is a
// credential without profile, which the identity resolver recovers by
// forcing sign-out.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if problem := validateNewUser(req.Email, req.Password, req.FullName); problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	role, ok := model.ParseRole(strings.TrimSpace(req.Role))
	if !ok {
		role = model.RolePolice // the provisioning form's default choice
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	// Username defaults to the email, matching the profile shape the
	// dashboards expect.
	if err := h.Profiles.Create(ctx, uid, req.Email, req.FullName, role); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create profile failed"})
	}

	u, err := h.Profiles.GetByUserID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
	}
	return c.JSON(http.StatusCreated, u)
}
