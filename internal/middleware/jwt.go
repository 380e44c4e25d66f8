package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"   // sentinel error matching for store lookups
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/user-admin-panel/internal/repository" // user store for resolving the token subject
    "github.com/iliyamo/user-admin-panel/internal/utils"      // token verification helper
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and resolves the authenticated user.  After the signature and expiry
// check, the subject id is looked up in the store so that the role in
// effect is the one currently persisted, not whatever the token carried
// when it was issued; a token for a deleted account is rejected the same
// way as a bad token.  On success the middleware injects "user_id" and
// "role" into the request context for downstream handlers and the role
// check.  Every failure answers 401 with the same body so the client
// cannot tell a missing token from an expired or tampered one.
func JWTAuth(secret string, users repository.UserStore) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header starts with
            // "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
            }

            // Resolve the subject against the store.  One read per
            // authenticated request; resolved identities are never cached.
            // A vanished user is an authentication failure; anything else
            // is an infrastructure fault and must not masquerade as one.
            u, err := users.GetByID(c.Request().Context(), claims.UserID)
            if err != nil {
                if errors.Is(err, repository.ErrNotFound) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
            }

            c.Set("user_id", u.ID)
            c.Set("role", u.Role)
            return next(c)
        }
    }
}
