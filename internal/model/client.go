package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName  = errors.New("client name is required")
	ErrMissingPhone = errors.New("client phone is required")
)

// Client is a lead or customer record.
type Client struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email,omitempty"`
	City           string        `json:"city,omitempty"`
	Project        string        `json:"project,omitempty"`
	Budget         string        `json:"budget,omitempty"`
	SalesPerson    string        `json:"sales_person,omitempty"`
	ContactMethod  string        `json:"contact_method,omitempty"`
	Facebook       string        `json:"facebook,omitempty"`
	Campaign       string        `json:"campaign,omitempty"`
	Status         Status        `json:"status"`
	Rating         int           `json:"rating"`
	NextActionDate *time.Time    `json:"next_action_date,omitempty"`
	NextActionType string        `json:"next_action_type,omitempty"`
	AssignedTo     uuid.NullUUID `json:"assigned_to"`
	UserID         uuid.UUID     `json:"user_id"` // creator
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Validate checks the fields every stored client must carry.
func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}

	if strings.TrimSpace(c.Phone) == "" {
		return ErrMissingPhone
	}

	if !c.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}

	return nil
}

// Overdue reports whether the client has a scheduled next action that is already past.
func (c Client) Overdue(now time.Time) bool {
	return c.NextActionType != "" && c.NextActionDate != nil && c.NextActionDate.Before(now)
}

// Recipient is the user who should hear about this client: the assignee, else the creator.
func (c Client) Recipient() uuid.UUID {
	if c.AssignedTo.Valid {
		return c.AssignedTo.UUID
	}

	return c.UserID
}

// BelongsTo reports whether userID created the client or has it assigned.
func (c Client) BelongsTo(userID uuid.UUID) bool {
	return c.UserID == userID || (c.AssignedTo.Valid && c.AssignedTo.UUID == userID)
}

// SearchValues returns the string form of every field, in declaration order.
func (c Client) SearchValues() []string {
	values := []string{
		c.ID.String(),
		c.Name,
		c.Phone,
		c.Email,
		c.City,
		c.Project,
		c.Budget,
		c.SalesPerson,
		c.ContactMethod,
		c.Facebook,
		c.Campaign,
		string(c.Status),
		strconv.Itoa(c.Rating),
		c.NextActionType,
		c.UserID.String(),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	}

	if c.NextActionDate != nil {
		values = append(values, c.NextActionDate.Format(time.RFC3339))
	}

	if c.AssignedTo.Valid {
		values = append(values, c.AssignedTo.UUID.String())
	}

	return values
}
