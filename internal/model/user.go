package model

import "time"

// User represents a registered account.
type User struct {
	ID           int64     `json:"userId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

// IsOwner reports whether callerID may mutate a resource owned by ownerID.
// All ownership checks go through this single helper so that update, resolve
// and delete cannot drift apart.
func IsOwner(ownerID, callerID int64) bool {
	return ownerID == callerID
}
