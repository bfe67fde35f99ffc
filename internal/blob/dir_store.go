package blob

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vault-tracker/internal/errors"
)

// DirStore stores blobs as files below a root directory, typically the vault.
type DirStore struct {
	root string
}

// NewDirStore returns a store rooted at dir. The directory is created on the
// first write if it does not exist yet.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

func (s *DirStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if path == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.NewInvalidInputError("path", path, "must be relative to the vault directory")
	}
	return filepath.Join(s.root, clean), nil
}

// Exists reports whether a regular file exists at path.
func (s *DirStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("stat", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// ReadBinary returns the full contents of the file at path.
func (s *DirStore) ReadBinary(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, errors.NewStorageError("read", path, err)
	}
	return data, nil
}

// WriteBinary replaces the file at path with data, creating parent
// directories as needed.
func (s *DirStore) WriteBinary(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.NewStorageError("mkdir", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errors.NewStorageError("write", path, err)
	}
	return nil
}
