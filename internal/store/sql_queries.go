package store

import (
	"github.com/MKhiriev/items-api/models"
	"github.com/Masterminds/squirrel"
)

// Column lists shared by the query builders and the row scanners. The order
// here must match the Scan order in the repositories.
var (
	userColumns = []string{"id", "email", "hashed_password", "created_at"}
	itemColumns = []string{"id", "name", "description", "owner_id", "created_at"}
)

// buildInsertUserQuery produces the INSERT for a new account. The RETURNING
// clause hands back the server-assigned id and created_at so the caller
// receives the canonical database representation in one round trip.
func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.sb.
		Insert(user.TableName()).
		Columns("email", "hashed_password").
		Values(user.Email, user.HashedPassword).
		Suffix("RETURNING id, email, hashed_password, created_at").
		ToSql()
}

// buildSelectUserByEmailQuery produces the lookup used by login and by the
// authentication middleware.
func (db *DB) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return db.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

// buildInsertItemQuery produces the INSERT for a new item, RETURNING the
// full row.
func (db *DB) buildInsertItemQuery(item models.Item) (string, []any, error) {
	return db.sb.
		Insert(item.TableName()).
		Columns("name", "description", "owner_id").
		Values(item.Name, item.Description, item.OwnerID).
		Suffix("RETURNING id, name, description, owner_id, created_at").
		ToSql()
}

// buildSelectItemsByOwnerQuery produces the owner-scoped listing query.
// Ordering by id yields insertion order.
func (db *DB) buildSelectItemsByOwnerQuery(ownerID int64) (string, []any, error) {
	return db.sb.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
}

// buildSelectItemByIDAndOwnerQuery produces the owner-scoped single-item
// lookup. Both predicates are required: an item id belonging to another
// user must behave exactly like a missing id.
func (db *DB) buildSelectItemByIDAndOwnerQuery(id, ownerID int64) (string, []any, error) {
	return db.sb.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// buildSelectItemByNameAndOwnerQuery produces the duplicate-name pre-check
// lookup used before item creation.
func (db *DB) buildSelectItemByNameAndOwnerQuery(name string, ownerID int64) (string, []any, error) {
	return db.sb.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(squirrel.Eq{"name": name, "owner_id": ownerID}).
		ToSql()
}
