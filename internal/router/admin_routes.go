package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/handler"
	"github.com/iliyamo/case-record-tracker/internal/middleware"
	"github.com/iliyamo/case-record-tracker/internal/model"
	"github.com/iliyamo/case-record-tracker/internal/repository"
)

// RegisterAdmin registers administrator-only endpoints under /v1/admin:
// multi-field case filtering, dashboard stats, the clerk filter choices,
// and user administration. Admin case CRUD is not duplicated here because
// the /v1/cases group already admits the admin role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, profiles *repository.ProfileRepo, tokens *repository.TokenRepo, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.Identity(profiles, tokens),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Cases ----
	g.GET("/cases", h.FilterCases)
	g.GET("/stats", h.Stats)
	g.GET("/clerks", h.ClerkOptions)

	// ---- Users ----
	g.GET("/users", h.ListUsers)
	g.POST("/users", h.CreateUser)
	g.PATCH("/users/:id/role", h.UpdateRole)
	// Accounts are never deleted; role reassignment is the only mutation.
}
