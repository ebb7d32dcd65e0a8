package models

import "time"

// Item is a named record owned by exactly one user. Item names are unique
// per owner, not globally; visibility is always owner-scoped.
type Item struct {
	// ID is the server-assigned unique identifier of the item.
	ID int64 `json:"id"`

	// Name is the item name, 1-100 characters, unique per owner.
	Name string `json:"name"`

	// Description is an optional free-form text up to 1000 characters.
	// Nil is serialized as JSON null.
	Description *string `json:"description"`

	// OwnerID references the user that owns this item.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt is set once by the database when the item is created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
