package domain

import "time"

// Role is the access level carried by a user account and its tokens.
type Role string

const (
	RoleAdministrator Role = "administrador"
	RoleDirector      Role = "director"
	RoleDoctor        Role = "doctor"
	RoleUser          Role = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdministrator, RoleDirector, RoleDoctor, RoleUser:
		return true
	}
	return false
}

// UserStatus is the account state. Inactive accounts can never log in.
// The literal values are fixed by the credential store.
type UserStatus string

const (
	StatusActive   UserStatus = "Activo"
	StatusInactive UserStatus = "Inactivo"
)

// User models a provisioned account in the credential store.
type User struct {
	ID           string     `json:"user_id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Principal is the authenticated identity derived from a verified token.
// It is immutable after construction and attached to the request context.
type Principal struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
