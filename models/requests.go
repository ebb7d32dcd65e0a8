package models

// Credentials is the request payload for both registration and login.
type Credentials struct {
	// Email is the login identity. Must look like an email address.
	Email string `json:"email"`

	// Password is the plaintext password. At least 6 characters at
	// registration time. Never stored or logged as-is.
	Password string `json:"password"`
}

// ItemCreate is the request payload for creating a new item.
type ItemCreate struct {
	// Name of the item, 1-100 characters.
	Name string `json:"name"`

	// Description is optional, up to 1000 characters.
	Description *string `json:"description"`
}
