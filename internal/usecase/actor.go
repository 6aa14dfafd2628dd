// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "messenger/internal/domain/entity"

// Actor is the authenticated caller of a use case, taken from verified token claims.
type Actor struct {
	UserID int64
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the Admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanActFor reports whether the caller may act on the account userID.
func (a Actor) CanActFor(userID int64) bool {
	return a.IsAdmin() || a.UserID == userID
}
