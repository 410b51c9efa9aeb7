package profile

import (
	"context"
	"errors"
)

// Supported locales. The app ships English and Brazilian Portuguese, like
// the rest of the product surface.
const (
	LocaleEN   = "en"
	LocalePtBR = "pt-BR"
)

var ErrInvalidLocale = errors.New("locale must be en or pt-BR")

// Profile is the per-user settings document: display locale and the FCM
// device tokens registered for push notifications. A user with no profile
// document gets the zero-value defaults.
type Profile struct {
	UserID    string   `json:"userId" firestore:"-"`
	Locale    string   `json:"locale" firestore:"locale"`
	FCMTokens []string `json:"-" firestore:"fcmTokens"`
}

// ValidLocale reports whether l is a supported locale.
func ValidLocale(l string) bool {
	return l == LocaleEN || l == LocalePtBR
}

// Repository defines the interface for profile data access.
type Repository interface {
	// Get returns the user's profile, or a default profile if none has
	// been written yet.
	Get(ctx context.Context, userID string) (*Profile, error)
	SetLocale(ctx context.Context, userID, locale string) error
	// AddDeviceToken registers an FCM token, deduplicating repeats.
	AddDeviceToken(ctx context.Context, userID, token string) error
	// ListAll returns every user profile. Used by the reminder job.
	ListAll(ctx context.Context) ([]*Profile, error)
}
