package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centavo/internal/domain/period"
	"centavo/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) collection(userID string) *firestore.CollectionRef {
	return r.db.user(userID).Collection(transactionsCollection)
}

func (r *TransactionRepository) Create(ctx context.Context, userID string, params transaction.CreateParams) (*transaction.Transaction, error) {
	ref := r.collection(userID).NewDoc()
	record := fromCreateParams(ref.ID, params)

	if _, err := ref.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return record, nil
}

// CreateBatch writes all records inside one Firestore transaction, so the
// installment group becomes visible all at once or not at all.
func (r *TransactionRepository) CreateBatch(ctx context.Context, userID string, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
	col := r.collection(userID)

	records := make([]*transaction.Transaction, len(params))
	refs := make([]*firestore.DocumentRef, len(params))
	for i, p := range params {
		refs[i] = col.NewDoc()
		records[i] = fromCreateParams(refs[i].ID, p)
	}

	err := r.db.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for i := range records {
			if err := tx.Create(refs[i], records[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction batch: %w", err)
	}

	return records, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id string) (*transaction.Transaction, error) {
	doc, err := r.collection(userID).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, transaction.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return decodeTransaction(doc)
}

func (r *TransactionRepository) ListByMonth(ctx context.Context, userID string, month period.Month) ([]*transaction.Transaction, error) {
	first, last := month.Bounds()

	iter := r.collection(userID).
		Where("date", ">=", first.String()).
		Where("date", "<=", last.String()).
		OrderBy("date", firestore.Desc).
		Documents(ctx)

	return r.collect(iter, "failed to list transactions by month")
}

func (r *TransactionRepository) ListByCard(ctx context.Context, userID, cardID string) ([]*transaction.Transaction, error) {
	iter := r.collection(userID).
		Where("cardId", "==", cardID).
		Documents(ctx)

	return r.collect(iter, "failed to list transactions by card")
}

func (r *TransactionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	iter := r.collection(userID).
		OrderBy("date", firestore.Desc).
		Limit(limit).
		Documents(ctx)

	return r.collect(iter, "failed to list recent transactions")
}

func (r *TransactionRepository) Update(ctx context.Context, userID, id string, params transaction.UpdateParams) (*transaction.Transaction, error) {
	ref := r.collection(userID).Doc(id)

	updates := []firestore.Update{{Path: "updatedAt", Value: now()}}
	if params.Type != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: *params.Type})
	}
	if params.Amount != nil {
		updates = append(updates, firestore.Update{Path: "amount", Value: *params.Amount})
	}
	if params.Deduction != nil {
		updates = append(updates, firestore.Update{Path: "deduction", Value: *params.Deduction})
	}
	if params.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *params.Description})
	}
	if params.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *params.Category})
	}
	if params.Tags != nil {
		updates = append(updates, firestore.Update{Path: "tags", Value: *params.Tags})
	}
	if params.Date != nil {
		updates = append(updates, firestore.Update{Path: "date", Value: *params.Date})
	}
	if params.CardID != nil {
		updates = append(updates, firestore.Update{Path: "cardId", Value: *params.CardID})
	}
	if params.InvoiceMonth != nil {
		updates = append(updates, firestore.Update{Path: "invoiceMonth", Value: *params.InvoiceMonth})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return r.GetByID(ctx, userID, id)
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id string) error {
	ref := r.collection(userID).Doc(id)

	// Delete() succeeds on missing documents, so check existence first to
	// report not-found to the caller.
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return transaction.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction for delete: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// DeleteGroup removes every record sharing groupId inside one Firestore
// transaction, mirroring the atomicity of the batch create.
func (r *TransactionRepository) DeleteGroup(ctx context.Context, userID, groupID string) (int, error) {
	iter := r.collection(userID).
		Where("groupId", "==", groupID).
		Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to query installment group: %w", err)
		}
		refs = append(refs, doc.Ref)
	}

	if len(refs) == 0 {
		return 0, nil
	}

	err := r.db.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, ref := range refs {
			if err := tx.Delete(ref); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete installment group: %w", err)
	}

	return len(refs), nil
}

func (r *TransactionRepository) collect(iter *firestore.DocumentIterator, errMsg string) ([]*transaction.Transaction, error) {
	defer iter.Stop()

	var out []*transaction.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errMsg, err)
		}
		t, err := decodeTransaction(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func fromCreateParams(id string, p transaction.CreateParams) *transaction.Transaction {
	ts := now()
	return &transaction.Transaction{
		ID:                 id,
		Type:               p.Type,
		Amount:             p.Amount,
		Deduction:          p.Deduction,
		Description:        p.Description,
		Category:           p.Category,
		Tags:               p.Tags,
		Date:               p.Date,
		CardID:             p.CardID,
		InvoiceMonth:       p.InvoiceMonth,
		Installments:       p.Installments,
		CurrentInstallment: p.CurrentInstallment,
		GroupID:            p.GroupID,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
}

func decodeTransaction(doc *firestore.DocumentSnapshot) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode transaction %s: %w", doc.Ref.ID, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}
