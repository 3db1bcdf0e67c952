package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/handler"
	"github.com/iliyamo/case-record-tracker/internal/middleware"
	"github.com/iliyamo/case-record-tracker/internal/model"
	"github.com/iliyamo/case-record-tracker/internal/repository"
)

// RegisterPolice registers the investigator endpoints under /v1/police.
// All routes require a valid JWT and the police role, and the surface is
// strictly read-only. The optional extra middleware is where main attaches
// the Redis response cache for these read-mostly routes.
func RegisterPolice(e *echo.Echo, h *handler.PoliceHandler, profiles *repository.ProfileRepo, tokens *repository.TokenRepo, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.Identity(profiles, tokens),
		middleware.RequireRole(model.RolePolice),
	}
	mw = append(mw, extra...)
	g := e.Group("/v1/police", mw...)

	g.GET("/cases", h.SearchCases)
	g.GET("/cases/:id", h.GetCase)
}
