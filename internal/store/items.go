package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkovacic/najdeno/internal/model"
)

// ItemFilters narrows public item listings. Zero values mean no filter.
type ItemFilters struct {
	Status   string
	Category string
	Search   string
}

// ItemUpdate carries a partial item update. Nil fields keep their prior
// values (COALESCE in SQL).
type ItemUpdate struct {
	Title         *string
	Description   *string
	Category      *string
	Status        *string
	LocationFound *string
	LocationLost  *string
	RewardAmount  *float64
}

// joinedItemColumns selects item fields plus the owner's public contact
// fields. Only unresolved public reads and single-item reads use the join.
const joinedItemColumns = `
	i.id, i.user_id, i.title, i.description, i.category, i.item_status,
	i.location_found, i.location_lost, i.date_lost, i.date_found,
	i.reward_amount, i.image_mime, i.is_resolved, i.resolved_date,
	i.created_at, i.updated_at,
	u.first_name, u.last_name, u.email, u.phone`

// CreateItem persists a new item report scoped to item.UserID.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (
		    user_id, title, description, category, item_status,
		    location_found, location_lost, date_lost, date_found, reward_amount
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.UserID, item.Title, item.Description, item.Category, item.Status,
		nullString(item.LocationFound), nullString(item.LocationLost),
		item.DateLost, item.DateFound, item.RewardAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, joined with the owner's contact fields.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+joinedItemColumns+`
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE i.id = ?`, id,
	)
	item, err := scanJoinedItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns unresolved items, newest first, capped at
// model.ListLimit. Filters are combined with AND; the search filter is a
// case-insensitive substring match over title and description.
func ListItems(ctx context.Context, db *sql.DB, f ItemFilters) ([]model.Item, error) {
	query := `SELECT ` + joinedItemColumns + `
	 FROM items i JOIN users u ON u.id = i.user_id
	 WHERE i.is_resolved = 0`
	var args []any

	if f.Status != "" {
		query += ` AND i.item_status = ?`
		args = append(args, f.Status)
	}
	if f.Category != "" {
		query += ` AND i.category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		query += ` AND (i.title LIKE ? OR i.description LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY i.created_at DESC, i.id DESC LIMIT ?`
	args = append(args, model.ListLimit)

	return queryJoinedItems(ctx, db, query, args...)
}

// SearchItems returns unresolved items matching the query as a substring of
// title, description or either location field, newest first, capped at
// model.ListLimit.
func SearchItems(ctx context.Context, db *sql.DB, search string) ([]model.Item, error) {
	pattern := "%" + search + "%"
	return queryJoinedItems(ctx, db,
		`SELECT `+joinedItemColumns+`
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE (i.title LIKE ? OR i.description LIKE ?
		        OR i.location_found LIKE ? OR i.location_lost LIKE ?)
		   AND i.is_resolved = 0
		 ORDER BY i.created_at DESC, i.id DESC LIMIT ?`,
		pattern, pattern, pattern, pattern, model.ListLimit,
	)
}

// ListUserItems returns all of a user's own items, resolved and unresolved,
// with unresolved first and newest first within each group.
func ListUserItems(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, title, description, category, item_status,
		        location_found, location_lost, date_lost, date_found,
		        reward_amount, image_mime, is_resolved, resolved_date,
		        created_at, updated_at
		 FROM items WHERE user_id = ?
		 ORDER BY is_resolved ASC, created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing user items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := scanItemFields(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListItemsByCategory returns unresolved items in a category, newest first,
// capped at model.CategoryLimit.
func ListItemsByCategory(ctx context.Context, db *sql.DB, category string) ([]model.Item, error) {
	return queryJoinedItems(ctx, db,
		`SELECT `+joinedItemColumns+`
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE i.category = ? AND i.is_resolved = 0
		 ORDER BY i.created_at DESC, i.id DESC LIMIT ?`,
		category, model.CategoryLimit,
	)
}

// UpdateItem applies a partial update; nil fields keep their prior values.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, u ItemUpdate) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET
		    title          = COALESCE(?, title),
		    description    = COALESCE(?, description),
		    category       = COALESCE(?, category),
		    item_status    = COALESCE(?, item_status),
		    location_found = COALESCE(?, location_found),
		    location_lost  = COALESCE(?, location_lost),
		    reward_amount  = COALESCE(?, reward_amount),
		    updated_at     = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		u.Title, u.Description, u.Category, u.Status,
		u.LocationFound, u.LocationLost, u.RewardAmount, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// ResolveItem sets the resolved flag and records when it happened.
func ResolveItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET is_resolved = 1, resolved_date = CURRENT_TIMESTAMP
		 WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("resolving item: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Its responses go with it via ON DELETE CASCADE.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// SetItemImage stores an item's processed image data.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's image data and MIME type. Returns nil data
// if the item has no image or does not exist.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItemFields(s scanner, item *model.Item) error {
	var locationFound, locationLost, imageMime sql.NullString
	var dateLost, dateFound, resolvedDate sql.NullTime
	var reward sql.NullFloat64

	err := s.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Description, &item.Category,
		&item.Status, &locationFound, &locationLost, &dateLost, &dateFound,
		&reward, &imageMime, &item.IsResolved, &resolvedDate,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.LocationFound = locationFound.String
	item.LocationLost = locationLost.String
	item.ImageMime = imageMime.String
	if dateLost.Valid {
		item.DateLost = &dateLost.Time
	}
	if dateFound.Valid {
		item.DateFound = &dateFound.Time
	}
	if resolvedDate.Valid {
		item.ResolvedDate = &resolvedDate.Time
	}
	if reward.Valid {
		item.RewardAmount = &reward.Float64
	}
	return nil
}

func scanJoinedItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var locationFound, locationLost, imageMime, ownerPhone sql.NullString
	var dateLost, dateFound, resolvedDate sql.NullTime
	var reward sql.NullFloat64

	err := s.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Description, &item.Category,
		&item.Status, &locationFound, &locationLost, &dateLost, &dateFound,
		&reward, &imageMime, &item.IsResolved, &resolvedDate,
		&item.CreatedAt, &item.UpdatedAt,
		&item.OwnerFirstName, &item.OwnerLastName, &item.OwnerEmail, &ownerPhone,
	)
	if err != nil {
		return nil, err
	}

	item.LocationFound = locationFound.String
	item.LocationLost = locationLost.String
	item.ImageMime = imageMime.String
	item.OwnerPhone = ownerPhone.String
	if dateLost.Valid {
		item.DateLost = &dateLost.Time
	}
	if dateFound.Valid {
		item.DateFound = &dateFound.Time
	}
	if resolvedDate.Valid {
		item.ResolvedDate = &resolvedDate.Time
	}
	if reward.Valid {
		item.RewardAmount = &reward.Float64
	}
	return item, nil
}

func queryJoinedItems(ctx context.Context, db *sql.DB, query string, args ...any) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanJoinedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
