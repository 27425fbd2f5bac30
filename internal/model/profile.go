package model

import "github.com/google/uuid"

// Profile is a dashboard user as seen by the CRM.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Telegram string    `json:"telegram"` // chat id for forwarded notifications
}

// DisplayName falls back to the email when no name was set.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}

	return p.Email
}

// Favorite is a client starred by a user.
type Favorite struct {
	UserID   uuid.UUID `json:"user_id"`
	ClientID uuid.UUID `json:"client_id"`
}
