package model

import "time"

// Item represents a lost or found object report owned by a user.
type Item struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Status        string     `json:"itemStatus"`
	LocationFound string     `json:"locationFound,omitempty"`
	LocationLost  string     `json:"locationLost,omitempty"`
	DateLost      *time.Time `json:"dateLost,omitempty"`
	DateFound     *time.Time `json:"dateFound,omitempty"`
	RewardAmount  *float64   `json:"rewardAmount,omitempty"`
	ImageMime     string     `json:"imageMime,omitempty"`
	IsResolved    bool       `json:"isResolved"`
	ResolvedDate  *time.Time `json:"resolvedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Owner contact fields, populated on joined reads.
	OwnerFirstName string `json:"firstName,omitempty"`
	OwnerLastName  string `json:"lastName,omitempty"`
	OwnerEmail     string `json:"email,omitempty"`
	OwnerPhone     string `json:"phone,omitempty"`
}

// Item statuses. Exactly one of the two; the resolved flag is independent.
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// ValidStatus reports whether s is one of the two item statuses.
func ValidStatus(s string) bool {
	return s == StatusLost || s == StatusFound
}

// List caps, matching the public API contract.
const (
	ListLimit     = 100
	CategoryLimit = 50
)

// MinSearchLength is the minimum trimmed length of a search query.
const MinSearchLength = 2
