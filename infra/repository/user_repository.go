package repository

import (
	"context"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/dto"
	userrepo "github.com/amirasaad/expensetracker/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to db.
func NewUserRepository(db *gorm.DB) userrepo.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:       create.ID,
		Email:    create.Email,
		Password: create.Password,
		Nickname: create.Nickname,
	}
	return WrapError(func() error {
		return withContext(r.db, ctx).Create(u).Error
	})
}

func (r *userRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]any)
	if uu.Nickname != nil {
		updates["nickname"] = *uu.Nickname
	}
	if uu.AvatarURL != nil {
		updates["avatar_url"] = *uu.AvatarURL
	}
	if len(updates) == 0 {
		return nil
	}

	res := withContext(r.db, ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var u User
	if err := withContext(r.db, ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var u User
	if err := withContext(r.db, ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := withContext(r.db, ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func mapUserToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Email:          u.Email,
		HashedPassword: u.Password,
		Nickname:       u.Nickname,
		AvatarURL:      u.AvatarURL,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ userrepo.Repository = (*userRepository)(nil)
