// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/amirasaad/expensetracker/pkg/storage"
)

// LocalFileStore writes files into a single flat directory and serves them
// under urlPrefix.
type LocalFileStore struct {
	dir       string
	urlPrefix string
	logger    *slog.Logger
}

var _ storage.FileStore = (*LocalFileStore)(nil)

// NewLocalFileStore creates dir if needed.
func NewLocalFileStore(dir, urlPrefix string, logger *slog.Logger) (*LocalFileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	if urlPrefix == "" {
		urlPrefix = "/"
	}
	logger.Debug("LocalFileStore initialized", "dir", dir, "urlPrefix", urlPrefix)
	return &LocalFileStore{dir: dir, urlPrefix: urlPrefix, logger: logger}, nil
}

// Dir returns the directory files are written to.
func (s *LocalFileStore) Dir() string { return s.dir }

// Save writes r to name atomically through a temp file and rename.
func (s *LocalFileStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	p, err := s.pathFor(name)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, p); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename temp file: %w", err)
	}
	return s.URL(name), nil
}

// Delete removes name. A missing file is not an error.
func (s *LocalFileStore) Delete(_ context.Context, name string) error {
	p, err := s.pathFor(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// URL returns the public URL of name.
func (s *LocalFileStore) URL(name string) string {
	return path.Join("/", s.urlPrefix, name)
}

// pathFor accepts only plain file names so nothing can be written outside dir.
func (s *LocalFileStore) pathFor(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") ||
		filepath.Base(name) != name {
		return "", storage.ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}
