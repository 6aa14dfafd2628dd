// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"time"
)

// User is an account that can log in, send messages and join conversations.
type User struct {
	ID           int64     // Stable numeric identifier, used as the token subject.
	Name         string    // Unique display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // Argon2id verifier (base64 of salt‖hash). Never the plaintext.
	Role         Role      // Persisted authorization role.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Subject returns the decimal form of the user id carried in the token "sub" claim.
func (u *User) Subject() string {
	return strconv.FormatInt(u.ID, 10)
}

// IsAdmin reports whether the persisted role grants administrative rights.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
