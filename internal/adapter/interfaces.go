// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the items-api HTTP surface.
//
// The primary abstraction is [APIClient], which decouples callers (such as the
// smoke-test CLI in cmd/client) from the wire details. The package ships an
// HTTP/REST implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/items-api/models"
)

// APIClient defines typed access to the items-api endpoints. Implementations
// are responsible for serialisation, bearer-token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from the given credentials and returns
	// the persisted user. Returns ErrConflict (wrapped) when the email is
	// already registered.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates the credentials and stores the issued bearer token
	// via SetToken. Returns the full token response including the user.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// ListItems returns every item of the authenticated account.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem creates a new item for the authenticated account. Returns
	// ErrConflict (wrapped) when the account already has an item with the
	// same name.
	CreateItem(ctx context.Context, request models.ItemCreate) (models.Item, error)

	// GetItem returns the item with the given id. Returns ErrNotFound
	// (wrapped) when no such item belongs to the authenticated account.
	GetItem(ctx context.Context, id int64) (models.Item, error)
}
