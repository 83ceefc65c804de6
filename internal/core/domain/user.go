package domain

import "time"

const (
	RoleUser       = "user"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	// RoleTeacher is a legacy alias for instructor still present in old rows.
	RoleTeacher = "teacher"
)

// ValidRoles are the roles assignable to an account. The legacy teacher role
// is accepted at the gates but never assigned to new accounts.
var ValidRoles = []string{RoleUser, RoleInstructor, RoleAdmin}

// IsAssignableRole reports whether role may be written to a user record.
func IsAssignableRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User models a registered member of the association.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the fields safe to serialize in API responses.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// PublicUser is the response-facing view of a user. The password digest has
// no representation here at all.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role   string
	Limit  int
	Offset int
}

// UserUpdate is a typed partial update. Nil fields are left untouched; the
// repository translates set fields into a parameterized statement, so column
// names never come from request input.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil && u.Role == nil
}
