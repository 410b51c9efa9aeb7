package tag

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrTagNotFound = errors.New("tag not found")
)

// Tag is a free-form label attached to transactions. A transaction may
// reference tags that no longer exist; such references are filtered out
// silently at display time.
type Tag struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type CreateParams struct {
	Name string
}

func (p *CreateParams) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 64 {
		return errors.New("name must be 64 characters or less")
	}
	return nil
}

type UpdateParams struct {
	Name *string
}

func (p *UpdateParams) Validate() error {
	if p.Name != nil {
		if *p.Name == "" {
			return errors.New("name cannot be empty")
		}
		if len(*p.Name) > 64 {
			return errors.New("name must be 64 characters or less")
		}
	}
	return nil
}
