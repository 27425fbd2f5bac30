package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
)

// ClientRequest is the body of client create and update calls.
type ClientRequest struct {
	Name           string     `json:"name" validate:"required"`
	Phone          string     `json:"phone" validate:"required"`
	Email          string     `json:"email" validate:"omitempty,email"`
	City           string     `json:"city"`
	Project        string     `json:"project"`
	Budget         string     `json:"budget"`
	SalesPerson    string     `json:"sales_person"`
	ContactMethod  string     `json:"contact_method"`
	Facebook       string     `json:"facebook"`
	Campaign       string     `json:"campaign"`
	Status         string     `json:"status"`
	Rating         int        `json:"rating" validate:"min=0,max=5"`
	NextActionDate *time.Time `json:"next_action_date"`
	NextActionType string     `json:"next_action_type" validate:"required_with=NextActionDate"`
	AssignedTo     *uuid.UUID `json:"assigned_to"`
}

// Client converts the request. A status given as a label or in another case is
// resolved to its canonical key; anything else is left for model validation to reject.
func (r ClientRequest) Client() model.Client {
	c := model.Client{
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		City:           r.City,
		Project:        r.Project,
		Budget:         r.Budget,
		SalesPerson:    r.SalesPerson,
		ContactMethod:  r.ContactMethod,
		Facebook:       r.Facebook,
		Campaign:       r.Campaign,
		Status:         status(r.Status),
		Rating:         r.Rating,
		NextActionDate: r.NextActionDate,
		NextActionType: r.NextActionType,
	}

	if r.AssignedTo != nil {
		c.AssignedTo = uuid.NullUUID{UUID: *r.AssignedTo, Valid: true}
	}

	return c
}

func status(raw string) model.Status {
	if s, err := locale.StatusFromLabel(raw); err == nil {
		return s
	}

	return model.Status(raw)
}

// BulkDeleteRequest lists the clients to delete.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// ImportPreview is returned after a workbook upload, before the mapping is chosen.
type ImportPreview struct {
	Headers   []string          `json:"headers"`
	Rows      [][]string        `json:"rows"`
	TotalRows int               `json:"total_rows"`
	Suggested map[string]string `json:"suggested_mapping"`
}

// ImportRowError points at a rejected spreadsheet row.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}
