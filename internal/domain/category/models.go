package category

import (
	"errors"
	"time"
)

// Category types: whether the category applies to income, expenses or both.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
	TypeAll     = "all"
)

// Domain errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidType      = errors.New("category type must be income, expense or all")
)

// Category labels transactions. Deleting a category does not cascade:
// transactions pointing at a deleted category degrade to an
// "Uncategorized" display at aggregation time.
type Category struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Type      string    `json:"type" firestore:"type"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type CreateParams struct {
	Name string
	Type string
}

func (p *CreateParams) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 128 {
		return errors.New("name must be 128 characters or less")
	}
	if !isValidType(p.Type) {
		return ErrInvalidType
	}
	return nil
}

type UpdateParams struct {
	Name *string
	Type *string
}

func (p *UpdateParams) Validate() error {
	if p.Name != nil {
		if *p.Name == "" {
			return errors.New("name cannot be empty")
		}
		if len(*p.Name) > 128 {
			return errors.New("name must be 128 characters or less")
		}
	}
	if p.Type != nil && !isValidType(*p.Type) {
		return ErrInvalidType
	}
	return nil
}

func isValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense || t == TypeAll
}
