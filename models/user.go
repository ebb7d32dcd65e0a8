package models

import "time"

// User represents a registered account. It is the persistence-layer and
// response-layer shape at the same time: the credential field is excluded
// from JSON so the same struct can be returned from handlers safely.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identity of the account.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	// Never serialized in any response.
	HashedPassword string `json:"-"`

	// CreatedAt is set once by the database when the account is created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
