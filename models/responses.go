package models

// TokenResponse is the login response body: the issued bearer token plus the
// authenticated user's public representation.
type TokenResponse struct {
	// AccessToken is the compact JWS string to be echoed back in the
	// Authorization header of subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// User is the authenticated account, without credential fields.
	User User `json:"user"`
}

// RootResponse is the body of the unauthenticated GET / endpoint.
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Redoc   string `json:"redoc"`
}

// APIError is the uniform error body returned by every failing endpoint.
// No other error shape ever reaches a client.
type APIError struct {
	// Detail is a human-readable description of the failure. For 500
	// responses it is always the generic "Internal server error".
	Detail string `json:"detail"`

	// StatusCode duplicates the HTTP status code in the body.
	StatusCode int `json:"status_code"`
}
