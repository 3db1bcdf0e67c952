package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/case-record-tracker/internal/model" // model defines the closed role set
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified roles. Role gating happens
// here at the route layer, not in the storage layer: every mutating route
// group is wrapped in RequireRole so a police-role token cannot reach a
// clerk-role write even with direct API access. It assumes a previous
// middleware (Identity, or JWTAuth alone) has placed the role in the
// context under the key "role".
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    // Build a set of allowed roles for constant-time lookups.
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The role may be a string (straight from JWT claims) or a
            // model.Role (set by the identity resolver).
            var role model.Role
            switch v := c.Get("role").(type) {
            case model.Role:
                role = v
            case string:
                role = model.Role(v)
            }
            if !role.Valid() || !allowed[role] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
