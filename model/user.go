package model

import "time"

// User represents a dashboard account. The password hash never leaves the
// server: the field is excluded from JSON serialization entirely.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser carries the fields accepted when creating an account. Password is
// plaintext here and exists only until the store hashes it.
type NewUser struct {
	Username  string
	Email     string
	Password  string
	Role      Role
	FirstName *string
	LastName  *string
}

// UserUpdate is a partial update: nil fields are left untouched. Password,
// when set, is plaintext and gets re-hashed by the store.
type UserUpdate struct {
	Username  *string
	Email     *string
	Password  *string
	Role      *Role
	FirstName *string
	LastName  *string
}
