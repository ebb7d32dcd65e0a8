package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/items-api/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"

	minPasswordLength    = 6
	maxItemNameLength    = 100
	maxDescriptionLength = 1000
)

// emailPattern is intentionally permissive: one non-space local part, one "@",
// a domain with at least one dot. Deliverability is not our problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RequestValidator implements the Validator interface for the inbound request
// payloads: Credentials and ItemCreate.
//
// It supports both value and pointer receivers for every payload type and
// allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ItemCreate:
		return v.validateItemCreate(ctx, value, fields...)
	case *models.ItemCreate:
		return v.validateItemCreate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(credentials.Password) < minPasswordLength {
				return ErrPasswordTooWeak
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateItemCreate(_ context.Context, item models.ItemCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if item.Name == "" {
				return ErrEmptyItemName
			}
			if utf8.RuneCountInString(item.Name) > maxItemNameLength {
				return ErrItemNameTooLong
			}
		case FieldDescription:
			if item.Description != nil && utf8.RuneCountInString(*item.Description) > maxDescriptionLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
