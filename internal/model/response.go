package model

import "time"

// Response is a message from one user to an item's owner, optionally
// carrying contact info. Immutable after creation; removed only when the
// parent item is deleted.
type Response struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"itemId"`
	ResponderID  int64     `json:"responderId"`
	Message      string    `json:"message"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	ResponseDate time.Time `json:"responseDate"`

	// Responder fields, populated on joined reads.
	ResponderFirstName string `json:"firstName,omitempty"`
	ResponderLastName  string `json:"lastName,omitempty"`
	ResponderEmail     string `json:"email,omitempty"`
}
