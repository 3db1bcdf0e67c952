package middleware

// identity.go turns the raw JWT claims left by JWTAuth into a fully
// resolved user. On every request it looks up the profile row keyed by the
// token's subject. A credential that has no matching profile is an
// inconsistent account: the middleware revokes the user's refresh tokens
// (forcing sign-out everywhere) and answers 401 so the client returns to
// the login view. That is a recovery action, not a fatal error. The role
// stored in the context is the profile's current role, so a reassignment
// takes effect on the user's next request without re-login.

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/case-record-tracker/internal/model"
    "github.com/iliyamo/case-record-tracker/internal/repository"
)

// identityKey is the context key holding the resolved model.User.
const identityKey = "identity"

// Identity returns the resolver middleware. It must run after JWTAuth.
func Identity(profiles *repository.ProfileRepo, tokens *repository.TokenRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            uid, err := subjectID(c)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }

            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()

            u, err := profiles.GetByUserID(ctx, uid)
            switch {
            case err == nil:
                c.Set(identityKey, u)
                c.Set("role", u.Role)
                return next(c)
            case errors.Is(err, repository.ErrProfileNotFound):
                // Credential without profile: force the session out and
                // send the user back to login.
                log.Printf("identity: user %d has no profile, forcing sign-out", uid)
                _ = tokens.RevokeAllForUser(ctx, uid)
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account not provisioned"})
            case errors.Is(err, repository.ErrUserNotFound):
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            default:
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "identity lookup failed"})
            }
        }
    }
}

// CurrentUser returns the resolved identity placed in the context by
// Identity. The boolean is false when the middleware did not run.
func CurrentUser(c echo.Context) (model.User, bool) {
    u, ok := c.Get(identityKey).(model.User)
    return u, ok
}

// subjectID extracts the JWT subject set by JWTAuth and converts it to a
// uint64 user id. Numeric claims decode as float64; some clients send the
// subject as a string.
func subjectID(c echo.Context) (uint64, error) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
