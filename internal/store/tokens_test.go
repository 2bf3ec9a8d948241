package store

import (
	"context"
	"testing"
	"time"

	"github.com/mkovacic/najdeno/internal/db"
)

func TestRevokeAndCheckToken(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("expected token not revoked initially")
	}

	if err := RevokeToken(ctx, database, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err = IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected token revoked")
	}

	// Revoking the same JTI again is a no-op.
	if err := RevokeToken(ctx, database, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken (again): %v", err)
	}
}

func TestRevokedTokenCleanup(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Already-expired revocation gets cleaned up by the next revoke.
	RevokeToken(ctx, database, "expired-jti", time.Now().Add(-time.Hour))
	RevokeToken(ctx, database, "fresh-jti", time.Now().Add(time.Hour))

	revoked, _ := IsTokenRevoked(ctx, database, "expired-jti")
	if revoked {
		t.Error("expected expired revocation cleaned up")
	}
}
