package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mkovacic/najdeno/internal/model"
)

// IsUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, used to map duplicate registrations to a conflict response.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateUser creates a new user. Returns a unique-violation error if the
// email is already registered.
func CreateUser(ctx context.Context, db *sql.DB, firstName, lastName, email, phone, passwordHash string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, email, phone, password_hash)
		 VALUES (?, ?, ?, ?, ?)`,
		firstName, lastName, email, nullString(phone), passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	var phone sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, phone, password_hash, created_at, updated_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.Phone = phone.String
	return u, nil
}

// GetUserByEmail returns a user by email address.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	var phone sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, phone, password_hash, created_at, updated_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	u.Phone = phone.String
	return u, nil
}

// UpdateUserProfile overwrites a user's mutable profile fields.
func UpdateUserProfile(ctx context.Context, db *sql.DB, id int64, firstName, lastName, phone string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET first_name = ?, last_name = ?, phone = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		firstName, lastName, nullString(phone), id,
	)
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}

// nullString maps "" to NULL so that optional columns stay NULL in the DB.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
