// Package storage abstracts where uploaded media blobs live. The local
// backend writes into the upload directory; the S3 backend targets an
// S3-compatible object store.
package storage

import (
	"context"
	"io"
)

// Store is the blob storage contract for uploaded media. Filenames are
// server-assigned and unique, so Save never needs to handle collisions.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	Remove(ctx context.Context, filename string) error
}
