// Package metadata stores small key/value items in the client's local
// profile database. The session token lives here so it survives a client
// restart without being shared outside the profile directory.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every stored key. Used on logout.
	Clear(ctx context.Context) error
}
