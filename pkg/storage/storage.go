// Package storage defines where uploaded user files such as avatars are kept.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/amirasaad/expensetracker/pkg/domain"
)

var (
	// ErrNotImage is returned when an avatar upload is not an image.
	ErrNotImage = fmt.Errorf("file is not an image: %w", domain.ErrValidation)
	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = fmt.Errorf("file too large: %w", domain.ErrValidation)
	// ErrInvalidName is returned for names that would escape the store root.
	ErrInvalidName = fmt.Errorf("invalid file name: %w", domain.ErrValidation)
)

// FileStore persists files and returns the public URL they are served from.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, name string) error
}
