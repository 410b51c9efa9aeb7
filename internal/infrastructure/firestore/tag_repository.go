package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centavo/internal/domain/tag"
)

type TagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) collection(userID string) *firestore.CollectionRef {
	return r.db.user(userID).Collection(tagsCollection)
}

func (r *TagRepository) Create(ctx context.Context, userID string, params tag.CreateParams) (*tag.Tag, error) {
	ref := r.collection(userID).NewDoc()
	ts := now()
	record := &tag.Tag{
		ID:        ref.ID,
		Name:      params.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := ref.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return record, nil
}

func (r *TagRepository) GetByID(ctx context.Context, userID, id string) (*tag.Tag, error) {
	doc, err := r.collection(userID).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, tag.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return decodeTag(doc)
}

func (r *TagRepository) List(ctx context.Context, userID string) ([]*tag.Tag, error) {
	iter := r.collection(userID).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*tag.Tag
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		t, err := decodeTag(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TagRepository) Update(ctx context.Context, userID, id string, params tag.UpdateParams) (*tag.Tag, error) {
	updates := []firestore.Update{{Path: "updatedAt", Value: now()}}
	if params.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *params.Name})
	}

	if _, err := r.collection(userID).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return r.GetByID(ctx, userID, id)
}

func (r *TagRepository) Delete(ctx context.Context, userID, id string) error {
	ref := r.collection(userID).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return tag.ErrTagNotFound
		}
		return fmt.Errorf("failed to get tag for delete: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func decodeTag(doc *firestore.DocumentSnapshot) (*tag.Tag, error) {
	var t tag.Tag
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode tag %s: %w", doc.Ref.ID, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}
