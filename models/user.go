package models

import "time"

// User represents a registered journal owner.
// PasswordHash is a bcrypt digest and is never exposed via JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FullName is the display name entered at registration.
	FullName string `json:"fullName"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the one-way hash of the user's password.
	// The plaintext password is never persisted.
	PasswordHash string `json:"-"`

	// CreatedOn is the timestamp when the account was created.
	CreatedOn time.Time `json:"createdOn"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the reduced user view returned together with a fresh token
// on registration and login.
type UserSummary struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Summary returns the client-facing summary of u.
func (u User) Summary() UserSummary {
	return UserSummary{FullName: u.FullName, Email: u.Email}
}
