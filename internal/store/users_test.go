package store

import (
	"context"
	"testing"

	"github.com/mkovacic/najdeno/internal/db"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "Ana", "Novak", "ana@example.com", "", "hash123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("expected email 'ana@example.com', got %q", user.Email)
	}
	if user.Phone != "" {
		t.Errorf("expected empty phone, got %q", user.Phone)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.FirstName != "Ana" || got.LastName != "Novak" {
		t.Errorf("expected Ana Novak, got %q %q", got.FirstName, got.LastName)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "Ana", "Novak", "ana@example.com", "123456", "hash")

	got, err := GetUserByEmail(ctx, database, "ana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Phone != "123456" {
		t.Errorf("expected phone '123456', got %q", got.Phone)
	}

	missing, err := GetUserByEmail(ctx, database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "Ana", "Novak", "ana@example.com", "", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, "Bojan", "Kovac", "ana@example.com", "", "hash2")
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "Ana", "Novak", "ana@example.com", "", "hash")

	if err := UpdateUserProfile(ctx, database, user.ID, "Anja", "Novak", "987654"); err != nil {
		t.Fatalf("UpdateUserProfile: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.FirstName != "Anja" {
		t.Errorf("expected first name 'Anja', got %q", got.FirstName)
	}
	if got.Phone != "987654" {
		t.Errorf("expected phone '987654', got %q", got.Phone)
	}
	if got.Email != "ana@example.com" {
		t.Errorf("email should be immutable, got %q", got.Email)
	}
}
