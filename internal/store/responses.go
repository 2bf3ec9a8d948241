package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkovacic/najdeno/internal/model"
)

// CreateResponse inserts a response to an item. Responses are immutable
// after creation.
func CreateResponse(ctx context.Context, db *sql.DB, itemID, responderID int64, message, contactPhone, contactEmail string) (*model.Response, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO item_responses (item_id, responder_id, message, contact_phone, contact_email)
		 VALUES (?, ?, ?, ?, ?)`,
		itemID, responderID, message, nullString(contactPhone), nullString(contactEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("creating response: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting response id: %w", err)
	}

	return GetResponse(ctx, db, id)
}

// GetResponse returns a response by ID.
func GetResponse(ctx context.Context, db *sql.DB, id int64) (*model.Response, error) {
	resp := &model.Response{}
	var phone, email sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_id, responder_id, message, contact_phone, contact_email, response_date
		 FROM item_responses WHERE id = ?`, id,
	).Scan(&resp.ID, &resp.ItemID, &resp.ResponderID, &resp.Message, &phone, &email, &resp.ResponseDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting response: %w", err)
	}
	resp.ContactPhone = phone.String
	resp.ContactEmail = email.String
	return resp, nil
}

// ListResponses returns all responses for an item, newest first, with the
// responder's name and email joined.
func ListResponses(ctx context.Context, db *sql.DB, itemID int64) ([]model.Response, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT r.id, r.item_id, r.responder_id, r.message, r.contact_phone,
		        r.contact_email, r.response_date,
		        u.first_name, u.last_name, u.email
		 FROM item_responses r
		 JOIN users u ON u.id = r.responder_id
		 WHERE r.item_id = ?
		 ORDER BY r.response_date DESC, r.id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}
	defer rows.Close()

	var responses []model.Response
	for rows.Next() {
		var resp model.Response
		var phone, email sql.NullString
		if err := rows.Scan(
			&resp.ID, &resp.ItemID, &resp.ResponderID, &resp.Message, &phone,
			&email, &resp.ResponseDate,
			&resp.ResponderFirstName, &resp.ResponderLastName, &resp.ResponderEmail,
		); err != nil {
			return nil, fmt.Errorf("scanning response: %w", err)
		}
		resp.ContactPhone = phone.String
		resp.ContactEmail = email.String
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
