package transaction

import (
	"context"
	"errors"

	"centavo/internal/domain/period"
)

// Service contains the business logic for transaction operations.
type Service struct {
	repo Repository
}

// NewService creates a new transaction service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the draft, expands card-funded purchases with more
// than one installment, and persists the result. Installment groups are
// written as a single atomic batch.
func (s *Service) Create(ctx context.Context, userID string, params CreateParams, installments int) ([]*Transaction, error) {
	records, err := ExpandInstallments(params, installments)
	if err != nil {
		return nil, err
	}

	if len(records) == 1 {
		created, err := s.repo.Create(ctx, userID, records[0])
		if err != nil {
			return nil, err
		}
		return []*Transaction{created}, nil
	}

	return s.repo.CreateBatch(ctx, userID, records)
}

// Get retrieves a single transaction.
func (s *Service) Get(ctx context.Context, userID, id string) (*Transaction, error) {
	if id == "" {
		return nil, errors.New("transaction id is required")
	}
	return s.repo.GetByID(ctx, userID, id)
}

// ListMonth returns the user's transactions for a calendar month.
func (s *Service) ListMonth(ctx context.Context, userID string, month period.Month) ([]*Transaction, error) {
	return s.repo.ListByMonth(ctx, userID, month)
}

// ListRecent returns the user's newest transactions up to limit.
func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

// Update applies a single-record edit. Installment siblings are left
// untouched.
func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) (*Transaction, error) {
	if id == "" {
		return nil, errors.New("transaction id is required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, userID, id, params)
}

// Delete removes a single transaction.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return errors.New("transaction id is required")
	}
	return s.repo.Delete(ctx, userID, id)
}

// DeleteGroup removes every record of an installment group.
func (s *Service) DeleteGroup(ctx context.Context, userID, groupID string) (int, error) {
	if groupID == "" {
		return 0, errors.New("group id is required")
	}
	deleted, err := s.repo.DeleteGroup(ctx, userID, groupID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrGroupNotFound
	}
	return deleted, nil
}
