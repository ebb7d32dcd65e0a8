package store

import (
	"github.com/MKhiriev/items-api/internal/logger"
)

// Storages bundles all repositories sharing one database connection.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages constructs every repository over the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
