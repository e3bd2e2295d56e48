// Package user provides the profile operations of the signed-in user.
package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/user"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/amirasaad/expensetracker/pkg/service/stats"
	"github.com/amirasaad/expensetracker/pkg/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	MaxNicknameLength  = 50
	MaxAvatarURLLength = 512
	// DefaultMaxAvatarBytes applies when no upload limit is configured.
	DefaultMaxAvatarBytes int64 = 5 << 20
)

var (
	ErrInvalidNickname  = fmt.Errorf("nickname must be 1-%d characters: %w", MaxNicknameLength, domain.ErrValidation)
	ErrInvalidAvatarURL = fmt.Errorf("avatar url must be an http(s) url or a site path of at most %d characters: %w",
		MaxAvatarURLLength, domain.ErrValidation)
	ErrEmptyUpload      = fmt.Errorf("empty file: %w", domain.ErrValidation)
)

// avatarTypes are the raster formats accepted as avatars. Anything that can
// carry script, such as SVG, is refused because uploads are served from the
// API's own origin.
var avatarTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Profile is the /users/me view: the user, month-to-date figures and assets.
type Profile struct {
	User   *dto.UserRead    `json:"user"`
	Stats  *stats.Summary   `json:"stats"`
	Assets []*dto.AssetRead `json:"assets"`
}

// Service provides profile reads and updates.
type Service struct {
	uow            repository.UnitOfWork
	stats          *stats.Service
	avatars        storage.FileStore
	maxAvatarBytes int64
	logger         *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	maxBytes := DefaultMaxAvatarBytes
	if deps.Config != nil && deps.Config.Upload != nil && deps.Config.Upload.MaxBytes > 0 {
		maxBytes = deps.Config.Upload.MaxBytes
	}
	return New(deps.Uow, stats.NewService(deps), deps.Avatars, maxBytes, deps.Logger)
}

// New creates a new Service.
func New(
	uow repository.UnitOfWork,
	statsSvc *stats.Service,
	avatars storage.FileStore,
	maxAvatarBytes int64,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:            uow,
		stats:          statsSvc,
		avatars:        avatars,
		maxAvatarBytes: maxAvatarBytes,
		logger:         logger,
	}
}

// GetUser returns the user with the given ID.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = getUser(ctx, repo, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetProfile loads the user together with the current month's summary and
// every asset the user owns.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p := &Profile{}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		assets, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		if p.User, err = getUser(ctx, users, userID); err != nil {
			return err
		}
		p.Assets, err = assets.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("GetProfile failed", "userID", userID, "error", err)
		return nil, err
	}
	if p.Stats, err = s.stats.CurrentSummary(ctx, userID); err != nil {
		return nil, err
	}
	if p.Assets == nil {
		p.Assets = []*dto.AssetRead{}
	}
	return p, nil
}

// UpdateProfile applies the nickname and avatar URL fields of update.
// Nil fields are left untouched.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update dto.UserUpdate,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "UpdateProfile", "userID", userID)
	if update.Nickname != nil {
		nick := strings.TrimSpace(*update.Nickname)
		if n := utf8.RuneCountInString(nick); n == 0 || n > MaxNicknameLength {
			return nil, ErrInvalidNickname
		}
		update.Nickname = &nick
	}
	if update.AvatarURL != nil && !validAvatarURL(*update.AvatarURL) {
		return nil, ErrInvalidAvatarURL
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if _, err := getUser(ctx, repo, userID); err != nil {
			return err
		}
		if update.Nickname != nil || update.AvatarURL != nil {
			if err := repo.Update(ctx, userID, &update); err != nil {
				return err
			}
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		log.Error("UpdateProfile failed", "error", err)
		return nil, err
	}
	log.Info("Profile updated")
	return u, nil
}

// SetAvatar stores an uploaded image and points the user's avatar URL at it.
// The content type is sniffed from the bytes; the client-supplied name and
// header are not trusted.
func (s *Service) SetAvatar(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error) {
	log := s.logger.With("context", "SetAvatar", "userID", userID)
	data, err := io.ReadAll(io.LimitReader(r, s.maxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if int64(len(data)) > s.maxAvatarBytes {
		return "", storage.ErrTooLarge
	}
	mt := mimetype.Detect(data)
	if !slices.ContainsFunc(avatarTypes, mt.Is) {
		log.Warn("Rejected avatar upload", "mime", mt.String())
		return "", storage.ErrNotImage
	}

	name := fmt.Sprintf("%s-%s%s", userID, uuid.New(), mt.Extension())
	avatarURL, err := s.avatars.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		log.Error("Saving avatar failed", "error", err)
		return "", err
	}

	var previous string
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := getUser(ctx, repo, userID)
		if err != nil {
			return err
		}
		previous = u.AvatarURL
		return repo.Update(ctx, userID, &dto.UserUpdate{AvatarURL: &avatarURL})
	})
	if err != nil {
		if delErr := s.avatars.Delete(ctx, name); delErr != nil {
			log.Warn("Removing orphaned avatar failed", "name", name, "error", delErr)
		}
		log.Error("SetAvatar failed", "error", err)
		return "", err
	}
	if old, ok := uploadedName(userID, previous); ok && old != name {
		if err := s.avatars.Delete(ctx, old); err != nil {
			log.Warn("Removing previous avatar failed", "name", old, "error", err)
		}
	}
	log.Info("Avatar updated", "url", avatarURL, "mime", mt.String())
	return avatarURL, nil
}

// uploadedName returns the stored file name behind an avatar URL when the
// URL points at a file SetAvatar wrote for userID.
func uploadedName(userID uuid.UUID, avatarURL string) (string, bool) {
	if avatarURL == "" || !strings.HasPrefix(avatarURL, "/") || strings.HasPrefix(avatarURL, "//") {
		return "", false
	}
	name := path.Base(avatarURL)
	if !strings.HasPrefix(name, userID.String()+"-") {
		return "", false
	}
	return name, true
}

// validAvatarURL accepts an empty string (clears the avatar), an absolute
// http(s) URL or a path on this site.
func validAvatarURL(s string) bool {
	if s == "" {
		return true
	}
	if len(s) > MaxAvatarURLLength {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "":
		return u.Host == "" && strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(s, "//")
	}
	return false
}

func getUser(ctx context.Context, repo repository.UserRepository, id uuid.UUID) (*dto.UserRead, error) {
	u, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
