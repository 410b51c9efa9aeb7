// Package auth defines the token verification contract the HTTP layer
// authenticates with. The production implementation is the Firebase
// client in the infrastructure layer.
package auth

import "context"

// Verifier validates a bearer token and returns the user id it belongs to.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}
