package card

import (
	"errors"
	"math"
	"time"
)

// Domain errors
var (
	ErrCardNotFound  = errors.New("card not found")
	ErrInvalidDueDay = errors.New("due date must be a day of month between 1 and 31")
)

// Card is a credit card. DueDate is the day of month invoices fall due;
// months shorter than the configured day clamp it to their last day.
type Card struct {
	ID        string    `json:"id" firestore:"-"`
	CardName  string    `json:"cardName" firestore:"cardName"`
	Limit     float64   `json:"limit" firestore:"limit"`
	DueDate   int       `json:"dueDate" firestore:"dueDate"`
	Last4     string    `json:"last4" firestore:"last4"`
	Color     string    `json:"color,omitempty" firestore:"color"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type CreateParams struct {
	CardName string
	Limit    float64
	DueDate  int
	Last4    string
	Color    string
}

func (p *CreateParams) Validate() error {
	if p.CardName == "" {
		return errors.New("cardName is required")
	}
	if len(p.CardName) > 128 {
		return errors.New("cardName must be 128 characters or less")
	}
	if math.IsNaN(p.Limit) || math.IsInf(p.Limit, 0) || p.Limit <= 0 {
		return errors.New("limit must be a positive number")
	}
	if p.DueDate < 1 || p.DueDate > 31 {
		return ErrInvalidDueDay
	}
	if !isLast4(p.Last4) {
		return errors.New("last4 must be exactly 4 digits")
	}
	return nil
}

type UpdateParams struct {
	CardName *string
	Limit    *float64
	DueDate  *int
	Last4    *string
	Color    *string
}

func (p *UpdateParams) Validate() error {
	if p.CardName != nil && *p.CardName == "" {
		return errors.New("cardName cannot be empty")
	}
	if p.Limit != nil && (math.IsNaN(*p.Limit) || math.IsInf(*p.Limit, 0) || *p.Limit <= 0) {
		return errors.New("limit must be a positive number")
	}
	if p.DueDate != nil && (*p.DueDate < 1 || *p.DueDate > 31) {
		return ErrInvalidDueDay
	}
	if p.Last4 != nil && !isLast4(*p.Last4) {
		return errors.New("last4 must be exactly 4 digits")
	}
	return nil
}

func isLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
