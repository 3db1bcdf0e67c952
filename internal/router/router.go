package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/case-record-tracker/internal/handler"    // handlers that implement business logic
	"github.com/iliyamo/case-record-tracker/internal/middleware" // JWT, identity and role middleware
	"github.com/iliyamo/case-record-tracker/internal/repository" // repositories needed by the identity resolver
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints. Login/refresh/logout live
// under /v1/auth and carry no JWT; /v1/me requires a valid access token
// and a resolvable profile. The rate-limit middleware, when available, is
// applied by the caller to the /v1/auth group it passes in.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, profiles *repository.ProfileRepo, tokens *repository.TokenRepo, jwtSecret string, authMW ...echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", authMW...)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	// Protected identity echo. JWTAuth validates the token, Identity
	// resolves the profile (and forces sign-out on a credential without
	// one); every role may call it.
	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.Identity(profiles, tokens),
	)
	auth.GET("/me", a.Me)
}
