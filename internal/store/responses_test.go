package store

import (
	"context"
	"testing"

	"github.com/mkovacic/najdeno/internal/db"
	"github.com/mkovacic/najdeno/internal/model"
)

func TestCreateAndListResponses(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := testUser(t, database, "owner@example.com")
	responder := testUser(t, database, "finder@example.com")
	item := testItem(t, database, owner.ID, "Lost keys", model.StatusLost)

	resp, err := CreateResponse(ctx, database, item.ID, responder.ID, "Saw them at the library", "555-0101", "")
	if err != nil {
		t.Fatalf("CreateResponse: %v", err)
	}
	if resp.Message != "Saw them at the library" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.ContactPhone != "555-0101" {
		t.Errorf("expected contact phone, got %q", resp.ContactPhone)
	}
	if resp.ContactEmail != "" {
		t.Errorf("expected empty contact email, got %q", resp.ContactEmail)
	}

	CreateResponse(ctx, database, item.ID, responder.ID, "Second message", "", "finder@example.com")

	responses, err := ListResponses(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("ListResponses: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	// Newest first.
	if responses[0].Message != "Second message" {
		t.Errorf("expected newest first, got %q", responses[0].Message)
	}
	if responses[0].ResponderFirstName == "" || responses[0].ResponderEmail == "" {
		t.Error("expected responder fields joined")
	}
}

func TestCreateResponseMissingItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	responder := testUser(t, database, "finder@example.com")

	// Foreign key enforcement rejects responses to nonexistent items.
	_, err := CreateResponse(ctx, database, 999, responder.ID, "hello", "", "")
	if err == nil {
		t.Error("expected error for response to missing item")
	}
}
