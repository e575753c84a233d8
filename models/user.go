package models

import "time"

// User is an account record owned by the user store.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Username is the unique login name. It is also the token subject.
	Username string `json:"username"`

	// PasswordHash is the stored bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
