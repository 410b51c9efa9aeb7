// Package firestore implements the domain repositories on Cloud
// Firestore. Data lives in per-user sub-collections under users/{uid}:
// transactions, categories, tags and cards, with the user document itself
// holding profile fields. Document ids are the entity ids.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
	categoriesCollection   = "categories"
	tagsCollection         = "tags"
	cardsCollection        = "cards"
)

// DB wraps the Firestore client shared by all repositories.
type DB struct {
	client *firestore.Client
}

// New connects to Firestore. credentialsFile may be empty, in which case
// application-default credentials are used (the normal setup on GCP).
func New(ctx context.Context, projectID, credentialsFile string) (*DB, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &DB{client: client}, nil
}

// Close releases the underlying client.
func (db *DB) Close() error {
	return db.client.Close()
}

// user returns the document holding one user's data.
func (db *DB) user(userID string) *firestore.DocumentRef {
	return db.client.Collection(usersCollection).Doc(userID)
}

// now is the timestamp written to createdAt/updatedAt fields.
func now() time.Time {
	return time.Now().UTC()
}
