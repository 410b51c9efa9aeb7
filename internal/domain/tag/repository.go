package tag

import "context"

// Repository defines the interface for tag data access, scoped to a
// single user's collection.
type Repository interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Tag, error)
	GetByID(ctx context.Context, userID, id string) (*Tag, error)
	List(ctx context.Context, userID string) ([]*Tag, error)
	Update(ctx context.Context, userID, id string, params UpdateParams) (*Tag, error)
	Delete(ctx context.Context, userID, id string) error
}
