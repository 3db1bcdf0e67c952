package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/handler"    // case CRUD handlers
	"github.com/iliyamo/case-record-tracker/internal/middleware" // JWT + identity + role middleware
	"github.com/iliyamo/case-record-tracker/internal/model"      // role constants
	"github.com/iliyamo/case-record-tracker/internal/repository"
)

// RegisterCases registers the data-entry endpoints under /v1/cases. All
// routes require a valid JWT, a resolvable profile, and the clerk or
// admin role: clerks own data entry, admins keep full case access. Police
// tokens are rejected here with 403; read access for investigators lives
// on its own router.
func RegisterCases(e *echo.Echo, h *handler.CaseHandler, profiles *repository.ProfileRepo, tokens *repository.TokenRepo, jwtSecret string) {
	g := e.Group(
		"/v1/cases",
		middleware.JWTAuth(jwtSecret),
		middleware.Identity(profiles, tokens),
		middleware.RequireRole(model.RoleClerk, model.RoleAdmin),
	)

	g.GET("", h.ListCases)
	g.GET("/stream", h.StreamCases) // SSE full-collection snapshots
	g.GET("/:id", h.GetCase)
	g.POST("", h.CreateCase)
	g.PUT("/:id", h.UpdateCase)
	g.PATCH("/:id", h.UpdateCase) // partial/semantic updates via PATCH as well
	g.POST("/photos", h.UploadPhoto)

	// No DELETE is registered anywhere: case records are never deleted.
}
