package category

import "context"

// Repository defines the interface for category data access, scoped to a
// single user's collection.
type Repository interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Category, error)
	GetByID(ctx context.Context, userID, id string) (*Category, error)
	List(ctx context.Context, userID string) ([]*Category, error)
	Update(ctx context.Context, userID, id string, params UpdateParams) (*Category, error)
	// Delete removes the category only. Transactions referencing it are
	// left alone and resolve to "Uncategorized" from then on.
	Delete(ctx context.Context, userID, id string) error
}
