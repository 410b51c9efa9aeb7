package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centavo/internal/domain/card"
)

type CardRepository struct {
	db *DB
}

func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) collection(userID string) *firestore.CollectionRef {
	return r.db.user(userID).Collection(cardsCollection)
}

func (r *CardRepository) Create(ctx context.Context, userID string, params card.CreateParams) (*card.Card, error) {
	ref := r.collection(userID).NewDoc()
	ts := now()
	record := &card.Card{
		ID:        ref.ID,
		CardName:  params.CardName,
		Limit:     params.Limit,
		DueDate:   params.DueDate,
		Last4:     params.Last4,
		Color:     params.Color,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := ref.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return record, nil
}

func (r *CardRepository) GetByID(ctx context.Context, userID, id string) (*card.Card, error) {
	doc, err := r.collection(userID).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return decodeCard(doc)
}

func (r *CardRepository) List(ctx context.Context, userID string) ([]*card.Card, error) {
	iter := r.collection(userID).OrderBy("cardName", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*card.Card
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list cards: %w", err)
		}
		c, err := decodeCard(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CardRepository) Update(ctx context.Context, userID, id string, params card.UpdateParams) (*card.Card, error) {
	updates := []firestore.Update{{Path: "updatedAt", Value: now()}}
	if params.CardName != nil {
		updates = append(updates, firestore.Update{Path: "cardName", Value: *params.CardName})
	}
	if params.Limit != nil {
		updates = append(updates, firestore.Update{Path: "limit", Value: *params.Limit})
	}
	if params.DueDate != nil {
		updates = append(updates, firestore.Update{Path: "dueDate", Value: *params.DueDate})
	}
	if params.Last4 != nil {
		updates = append(updates, firestore.Update{Path: "last4", Value: *params.Last4})
	}
	if params.Color != nil {
		updates = append(updates, firestore.Update{Path: "color", Value: *params.Color})
	}

	if _, err := r.collection(userID).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, card.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return r.GetByID(ctx, userID, id)
}

func (r *CardRepository) Delete(ctx context.Context, userID, id string) error {
	ref := r.collection(userID).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return card.ErrCardNotFound
		}
		return fmt.Errorf("failed to get card for delete: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func decodeCard(doc *firestore.DocumentSnapshot) (*card.Card, error) {
	var c card.Card
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode card %s: %w", doc.Ref.ID, err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}
