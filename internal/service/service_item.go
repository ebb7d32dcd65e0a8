package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/models"
)

// itemService is the concrete implementation of ItemService. All operations
// are scoped to the owner passed in by the caller; cross-owner access is
// impossible through this service.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService backed by the given ItemRepository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem creates a new item owned by ownerID.
//
// A lookup by (name, owner) runs first so the common duplicate case gets a
// clean store.ErrItemNameAlreadyExists without touching the unique index. The
// index remains the authoritative guard: a concurrent insert that slips past
// the pre-check surfaces as the same error from the repository.
func (s *itemService) CreateItem(ctx context.Context, ownerID int64, request models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	_, err := s.itemRepository.FindItemByNameAndOwner(ctx, request.Name, ownerID)
	if err == nil {
		return models.Item{}, store.ErrItemNameAlreadyExists
	}
	if !errors.Is(err, store.ErrItemNotFound) {
		log.Err(err).Str("func", "*itemService.CreateItem").Msg("duplicate name pre-check failed")
		return models.Item{}, fmt.Errorf("duplicate name pre-check failed: %w", err)
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, models.Item{
		Name:        request.Name,
		Description: request.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		if errors.Is(err, store.ErrItemNameAlreadyExists) {
			return models.Item{}, err
		}

		log.Err(err).Str("func", "*itemService.CreateItem").Int64("owner_id", ownerID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// ListItems returns every item owned by ownerID in insertion order. The
// returned slice is never nil.
func (s *itemService) ListItems(ctx context.Context, ownerID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.itemRepository.FindItemsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*itemService.ListItems").Int64("owner_id", ownerID).Msg("listing items ended with error")
		return nil, fmt.Errorf("listing items ended with error: %w", err)
	}

	return items, nil
}

// GetItem returns the item with the given id if it belongs to ownerID.
// An existing id owned by someone else yields store.ErrItemNotFound, exactly
// like a missing id.
func (s *itemService) GetItem(ctx context.Context, id, ownerID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.FindItemByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.Item{}, err
		}

		log.Err(err).Str("func", "*itemService.GetItem").Int64("id", id).Int64("owner_id", ownerID).Msg("item lookup ended with error")
		return models.Item{}, fmt.Errorf("item lookup ended with error: %w", err)
	}

	return item, nil
}
