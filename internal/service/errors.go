package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// so that login failures never reveal whether the account exists.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
