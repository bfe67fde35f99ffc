// Package blob provides the binary file storage the tracking database image
// is persisted to.
package blob

import "context"

// Store reads and writes whole binary files addressed by a slash-separated
// path relative to the store root.
type Store interface {
	Exists(ctx context.Context, path string) (bool, error)
	ReadBinary(ctx context.Context, path string) ([]byte, error)
	WriteBinary(ctx context.Context, path string, data []byte) error
}
