package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"centavo/internal/domain/profile"
)

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the stored profile, or defaults when the user document has
// never been written.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	doc, err := r.db.user(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return &profile.Profile{UserID: userID, Locale: profile.LocaleEN}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	p, err := decodeProfile(doc)
	if err != nil {
		return nil, err
	}
	if p.Locale == "" {
		p.Locale = profile.LocaleEN
	}
	return p, nil
}

func (r *ProfileRepository) SetLocale(ctx context.Context, userID, locale string) error {
	// Set with MergeAll so the first write creates the document without
	// clobbering tokens registered concurrently.
	_, err := r.db.user(userID).Set(ctx, map[string]interface{}{
		"locale": locale,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set locale: %w", err)
	}
	return nil
}

func (r *ProfileRepository) AddDeviceToken(ctx context.Context, userID, token string) error {
	_, err := r.db.user(userID).Set(ctx, map[string]interface{}{
		"fcmTokens": firestore.ArrayUnion(token),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	return nil
}

// RemoveDeviceToken drops a token the push service reported as
// unregistered, wherever it is registered. Not part of the domain
// interface; wired directly into the messaging client's invalid-token
// callback, which only knows the token.
func (r *ProfileRepository) RemoveDeviceToken(ctx context.Context, token string) error {
	iter := r.db.client.Collection(usersCollection).
		Where("fcmTokens", "array-contains", token).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to find device token: %w", err)
		}
		_, err = doc.Ref.Set(ctx, map[string]interface{}{
			"fcmTokens": firestore.ArrayRemove(token),
		}, firestore.MergeAll)
		if err != nil {
			return fmt.Errorf("failed to remove device token: %w", err)
		}
	}
	return nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	iter := r.db.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var out []*profile.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}
		p, err := decodeProfile(doc)
		if err != nil {
			return nil, err
		}
		if p.Locale == "" {
			p.Locale = profile.LocaleEN
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeProfile(doc *firestore.DocumentSnapshot) (*profile.Profile, error) {
	var p profile.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", doc.Ref.ID, err)
	}
	p.UserID = doc.Ref.ID
	return &p, nil
}
