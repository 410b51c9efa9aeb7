package card

import "context"

// Repository defines the interface for card data access, scoped to a
// single user's collection.
type Repository interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Card, error)
	GetByID(ctx context.Context, userID, id string) (*Card, error)
	List(ctx context.Context, userID string) ([]*Card, error)
	Update(ctx context.Context, userID, id string, params UpdateParams) (*Card, error)
	// Delete removes the card only. Transactions billed to it keep their
	// cardId and show up under a placeholder name from then on.
	Delete(ctx context.Context, userID, id string) error
}
