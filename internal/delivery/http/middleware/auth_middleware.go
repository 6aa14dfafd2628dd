package middleware

import (
	"log/slog"
	"strings"
	"time"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and guards routes by authentication and role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		logger:   logger,
		now:      time.Now,
	}
}

// Authenticate verifies the bearer token when one is sent. A request without
// an Authorization header continues unauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.Verify(token, m.now().UTC())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireAuth rejects requests that Authenticate did not attach claims to.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetClaims(c); !ok {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			if entity.RoleOrDefault(entity.Role(claims.Role)) != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}
