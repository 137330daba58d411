package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// ContextKeyIdentity is the echo context key holding the caller's Identity.
const ContextKeyIdentity = "identity"

// RequireAuth middleware verifies the session token and stores the
// resulting Identity in the context. A missing or invalid token is
// always answered with 401; verification failures never propagate.
func RequireAuth(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or expired token",
				})
			}

			c.Set(ContextKeyIdentity, identity)
			return next(c)
		}
	}
}

// OptionalAuth middleware attempts to resolve an identity but lets the
// request through either way. Handlers that tolerate anonymous callers
// use this.
func OptionalAuth(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := TokenFromRequest(c); token != "" {
				if identity, err := tokens.Verify(token); err == nil {
					c.Set(ContextKeyIdentity, identity)
				}
			}
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// IdentityFromContext retrieves the authenticated identity, or nil for
// an anonymous caller.
func IdentityFromContext(c echo.Context) *Identity {
	identity, ok := c.Get(ContextKeyIdentity).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
