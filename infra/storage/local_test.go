package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *LocalFileStore {
	t.Helper()
	s, err := NewLocalFileStore(filepath.Join(t.TempDir(), "uploads"), "/uploads", slog.Default())
	require.NoError(t, err)
	return s
}

func TestLocalFileStore_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	url, err := s.Save(ctx, "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatar.png", url)

	data, err := os.ReadFile(filepath.Join(s.Dir(), "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, s.Delete(ctx, "avatar.png"))
	_, err = os.Stat(filepath.Join(s.Dir(), "avatar.png"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Delete(ctx, "avatar.png"))
}

func TestLocalFileStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.Save(ctx, "a.gif", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = s.Save(ctx, "a.gif", strings.NewReader("two"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(s.Dir(), "a.gif"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestLocalFileStore_RejectsEscapingNames(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for _, name := range []string{"", ".", "..", "../evil.png", "sub/dir.png", `..\evil.png`, "/etc/passwd", ".hidden"} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Save(ctx, name, strings.NewReader("x"))
			assert.ErrorIs(t, err, storage.ErrInvalidName)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, s.Delete(ctx, name), storage.ErrInvalidName)
		})
	}
	_, err := os.Stat(filepath.Join(filepath.Dir(s.Dir()), "evil.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStore_CancelledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Save(ctx, "late.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalFileStore_RequiresDir(t *testing.T) {
	_, err := NewLocalFileStore("", "/uploads", slog.Default())
	assert.Error(t, err)
}
