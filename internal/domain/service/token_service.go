package service

import (
	"time"

	"messenger/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by an access token.
type Claims struct {
	// UserID duplicates the subject as a number for clients that look it up by name.
	UserID int64  `json:"UserId,string"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token carries the Admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == entity.RoleAdmin.String()
}

// TokenService mints and validates signed access tokens.
type TokenService interface {
	// Issue signs an access token for user, issued at now and valid for one hour.
	Issue(user *entity.User, now time.Time) (string, error)

	// Verify checks signature, algorithm, expiry, issuer and audience at time now.
	Verify(token string, now time.Time) (*Claims, error)
}
