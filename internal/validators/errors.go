package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("value is not a valid email address")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")

	ErrEmptyItemName      = errors.New("item name must not be empty")
	ErrItemNameTooLong    = errors.New("item name must be at most 100 characters long")
	ErrDescriptionTooLong = errors.New("item description must be at most 1000 characters long")
)
