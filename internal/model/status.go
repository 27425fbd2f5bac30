package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned for a status outside the fixed client status set.
var ErrInvalidStatus = errors.New("invalid client status")

// Status is the sales stage of a client.
type Status string

const (
	StatusNew             Status = "new"
	StatusPotential       Status = "potential"
	StatusInterested      Status = "interested"
	StatusResponded       Status = "responded"
	StatusNoResponse      Status = "noResponse"
	StatusScheduled       Status = "scheduled"
	StatusPostMeeting     Status = "postMeeting"
	StatusWhatsappContact Status = "whatsappContact"
	StatusFacebookContact Status = "facebookContact"
	StatusBooked          Status = "booked"
	StatusCancelled       Status = "cancelled"
	StatusSold            Status = "sold"
	StatusPostponed       Status = "postponed"
	StatusResale          Status = "resale"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{
	StatusNew,
	StatusPotential,
	StatusInterested,
	StatusResponded,
	StatusNoResponse,
	StatusScheduled,
	StatusPostMeeting,
	StatusWhatsappContact,
	StatusFacebookContact,
	StatusBooked,
	StatusCancelled,
	StatusSold,
	StatusPostponed,
	StatusResale,
}

// Valid reports whether s belongs to the status set.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}

	return false
}

// ParseStatus resolves a raw value to a status, ignoring case and surrounding space.
// Unknown values are rejected, never coerced.
func ParseStatus(raw string) (Status, error) {
	v := strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}
