package entity

// Role represents the authorization role persisted on a user.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "User"
	// RoleAdmin grants access to every user and conversation.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleOrDefault maps an empty value to RoleUser.
func RoleOrDefault(r Role) Role {
	if r == "" {
		return RoleUser
	}

	return r
}
