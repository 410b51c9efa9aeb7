package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centavo/internal/domain/category"
)

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) collection(userID string) *firestore.CollectionRef {
	return r.db.user(userID).Collection(categoriesCollection)
}

func (r *CategoryRepository) Create(ctx context.Context, userID string, params category.CreateParams) (*category.Category, error) {
	ref := r.collection(userID).NewDoc()
	ts := now()
	record := &category.Category{
		ID:        ref.ID,
		Name:      params.Name,
		Type:      params.Type,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := ref.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return record, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, id string) (*category.Category, error) {
	doc, err := r.collection(userID).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return decodeCategory(doc)
}

func (r *CategoryRepository) List(ctx context.Context, userID string) ([]*category.Category, error) {
	iter := r.collection(userID).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*category.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		c, err := decodeCategory(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CategoryRepository) Update(ctx context.Context, userID, id string, params category.UpdateParams) (*category.Category, error) {
	updates := []firestore.Update{{Path: "updatedAt", Value: now()}}
	if params.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *params.Name})
	}
	if params.Type != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: *params.Type})
	}

	if _, err := r.collection(userID).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return r.GetByID(ctx, userID, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, id string) error {
	ref := r.collection(userID).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return category.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category for delete: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func decodeCategory(doc *firestore.DocumentSnapshot) (*category.Category, error) {
	var c category.Category
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode category %s: %w", doc.Ref.ID, err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}
