package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// Every query it issues is owner-scoped so items are never visible outside
// their owner's authenticated context.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns the fully populated
// [models.Item] with server-assigned fields (ID, CreatedAt).
//
// The INSERT runs inside a transaction with a deferred rollback. The unique
// constraint on (owner_id, name) is the authoritative duplicate guard: a
// violation is returned as [ErrItemNameAlreadyExists] even when the advisory
// pre-check in the service layer did not catch it.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: building insert query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: beginning transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.Item
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.Description, &created.OwnerID, &created.CreatedAt); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return models.Item{}, ErrItemNameAlreadyExists
		}

		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("owner_id", item.OwnerID).Msg("error: inserting item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: committing transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindItemsByOwner retrieves every item owned by the given user in insertion
// order. Returns an empty (non-nil) slice when the owner has no items.
func (r *itemRepository) FindItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectItemsByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemsByOwner").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.FindItemsByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)

	for rows.Next() {
		var item models.Item

		scanErr := rows.Scan(&item.ID, &item.Name, &item.Description, &item.OwnerID, &item.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*itemRepository.FindItemsByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*itemRepository.FindItemsByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// FindItemByIDAndOwner retrieves a single item by id, restricted to the
// given owner. An id that exists but belongs to another user yields
// [ErrItemNotFound], indistinguishable from a missing id.
func (r *itemRepository) FindItemByIDAndOwner(ctx context.Context, id, ownerID int64) (models.Item, error) {
	query, args, err := r.db.buildSelectItemByIDAndOwnerQuery(id, ownerID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOneItem(ctx, query, args)
}

// FindItemByNameAndOwner retrieves a single item by name, restricted to the
// given owner. Used as the advisory duplicate pre-check before creation.
func (r *itemRepository) FindItemByNameAndOwner(ctx context.Context, name string, ownerID int64) (models.Item, error) {
	query, args, err := r.db.buildSelectItemByNameAndOwnerQuery(name, ownerID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOneItem(ctx, query, args)
}

func (r *itemRepository) findOneItem(ctx context.Context, query string, args []any) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.OwnerID, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.findOneItem").Msg("error: scanning item row")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}
