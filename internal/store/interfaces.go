package store

import (
	"context"

	"github.com/MKhiriev/items-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository is the data-access contract for the "users" table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// ID and CreatedAt. Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository is the data-access contract for the "items" table.
// Every query is owner-scoped: rows belonging to other users are never
// visible through this interface.
type ItemRepository interface {
	// CreateItem persists a new item and returns it with server-assigned
	// ID and CreatedAt. Returns ErrItemNameAlreadyExists when the owner
	// already has an item with the same name.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// FindItemsByOwner returns all items of the given owner in insertion
	// order. The returned slice is never nil; zero items yield an empty slice.
	FindItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)

	// FindItemByIDAndOwner returns the item with the given id belonging to
	// ownerID, or ErrItemNotFound.
	FindItemByIDAndOwner(ctx context.Context, id, ownerID int64) (models.Item, error)

	// FindItemByNameAndOwner returns the item with the given name belonging
	// to ownerID, or ErrItemNotFound.
	FindItemByNameAndOwner(ctx context.Context, name string, ownerID int64) (models.Item, error)
}
