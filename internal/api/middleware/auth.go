package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// TokenCookie carries the access token for browser clients.
const TokenCookie = "access_token"

const claimsKey = "auth_claims"

// TokenVerifier turns a raw token into claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (ports.TokenClaims, error)
}

// Auth rejects requests without a valid token with 401 and stores the claims
// for later handlers.
func Auth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c)
			if err != nil {
				return err
			}
			if raw == "" {
				return unauthorized("missing authorization header")
			}

			claims, err := v.Verify(c.Request().Context(), raw)
			if err != nil {
				return unauthorized("invalid token")
			}
			SetClaims(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets everyone else through as anonymous.
func OptionalAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c)
			if err != nil || raw == "" {
				return next(c)
			}
			if claims, err := v.Verify(c.Request().Context(), raw); err == nil {
				SetClaims(c, claims)
			}
			return next(c)
		}
	}
}

// SetClaims records the verified caller on the request context.
func SetClaims(c echo.Context, claims ports.TokenClaims) {
	c.Set(claimsKey, claims)
}

// Claims returns what Auth or OptionalAuth stored, if anything.
func Claims(c echo.Context) (ports.TokenClaims, bool) {
	claims, ok := c.Get(claimsKey).(ports.TokenClaims)
	return claims, ok
}

// Identity returns the caller, or the anonymous identity.
func Identity(c echo.Context) domain.Identity {
	if claims, ok := Claims(c); ok {
		return claims.Identity
	}
	return domain.Anonymous()
}

// extractToken prefers the Authorization header and falls back to the cookie.
func extractToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", unauthorized("invalid authorization header")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value, nil
	}
	return "", nil
}

func unauthorized(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, msg).SetInternal(domain.ErrUnauthenticated)
}
