package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/delivery/http/response"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/service"
	"messenger/internal/errors"
	mockSvc "messenger/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mounts a handler echoing the caller's user id behind mw.
func newTestEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		claims, ok := deliverycontext.GetClaims(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}

		return c.String(http.StatusOK, claims.Subject)
	}, mw...)

	return e
}

func serve(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokens, discardLogger())
	e := newTestEcho(m.Authenticate)

	claims := &service.Claims{UserID: 7, RegisteredClaims: jwt.RegisteredClaims{Subject: "7"}}
	tokens.EXPECT().Verify("good", mock.Anything).Return(claims, nil)
	tokens.EXPECT().Verify("bad", mock.Anything).Return(nil, jwt.ErrTokenExpired)

	t.Run("no header continues", func(t *testing.T) {
		rec := serve(e, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		rec := serve(e, "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", rec.Body.String())
	})

	for name, header := range map[string]string{
		"rejected token": "Bearer bad",
		"wrong scheme":   "Basic Zm9vOmJhcg==",
		"empty bearer":   "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "TOKEN_INVALID", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), discardLogger())
	e := newTestEcho(m.Authenticate, m.RequireAuth)

	rec := serve(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokens, discardLogger())
	e := newTestEcho(m.Authenticate, m.RequireRole(entity.RoleAdmin))

	tokens.EXPECT().Verify("admin", mock.Anything).Return(&service.Claims{
		UserID:           1,
		Role:             entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}, nil)
	tokens.EXPECT().Verify("user", mock.Anything).Return(&service.Claims{
		UserID:           2,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "2"},
	}, nil)

	assert.Equal(t, http.StatusOK, serve(e, "Bearer admin").Code)

	rec := serve(e, "Bearer user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Empty(t, body.Error.Details)

	assert.Equal(t, http.StatusUnauthorized, serve(e, "").Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:        "app error details on 4xx",
			err:         domainerrors.ErrValidationFailed.WithDetails("name is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "name is required",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(discardLogger()).Process)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), rec.Body.String())
}
