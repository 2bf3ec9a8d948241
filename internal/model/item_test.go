package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusLost, StatusFound} {
		if !ValidStatus(s) {
			t.Errorf("expected %q valid", s)
		}
	}
	for _, s := range []string{"", "stolen", "Lost", "resolved"} {
		if ValidStatus(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}

func TestIsOwner(t *testing.T) {
	if !IsOwner(7, 7) {
		t.Error("owner should pass the check")
	}
	if IsOwner(7, 8) {
		t.Error("non-owner should fail the check")
	}
	if IsOwner(7, 0) {
		t.Error("unauthenticated caller should fail the check")
	}
}
