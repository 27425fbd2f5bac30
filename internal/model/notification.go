package model

import (
	"time"

	"github.com/google/uuid"
)

// TypeDelayedClient marks a notification about a client whose next action is overdue.
const TypeDelayedClient = "delayed_client"

// Notification is an in-app alert addressed to one user.
type Notification struct {
	ID        uuid.UUID     `json:"id"`         // unique identifier for the notification
	UserID    uuid.UUID     `json:"user_id"`    // recipient
	Title     string        `json:"title"`      // short localized heading
	Message   string        `json:"message"`    // localized body
	Type      string        `json:"type"`       // e.g. "delayed_client"
	ClientID  uuid.NullUUID `json:"client_id"`  // back-reference, not ownership
	IsRead    bool          `json:"is_read"`    // set by the recipient
	CreatedAt time.Time     `json:"created_at"` // timestamp when the notification was created
}
