package transaction

import (
	"context"

	"centavo/internal/domain/period"
)

// Repository defines the interface for transaction data access. All
// operations are scoped to a single user's collection. Query methods are
// one-per-shape on purpose: a date-range list, a field-equality list and
// an ordered-limit list, rather than a generic query builder.
type Repository interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Transaction, error)
	// CreateBatch persists all records atomically: either every record
	// becomes visible or none does. Used for installment groups, where a
	// partial write would leave siblings referencing missing records.
	CreateBatch(ctx context.Context, userID string, params []CreateParams) ([]*Transaction, error)
	GetByID(ctx context.Context, userID, id string) (*Transaction, error)
	// ListByMonth returns all records whose date falls within the given
	// calendar month, newest first.
	ListByMonth(ctx context.Context, userID string, month period.Month) ([]*Transaction, error)
	// ListByCard returns all records charged to the given card.
	ListByCard(ctx context.Context, userID, cardID string) ([]*Transaction, error)
	// ListRecent returns the newest records up to limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]*Transaction, error)
	Update(ctx context.Context, userID, id string, params UpdateParams) (*Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	// DeleteGroup removes every record sharing the given groupId and
	// returns how many were deleted.
	DeleteGroup(ctx context.Context, userID, groupID string) (int, error)
}
