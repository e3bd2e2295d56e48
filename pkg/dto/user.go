package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password,omitempty" validate:"required"`
	Nickname string    `json:"nickname,omitempty"`
}

// UserUpdate lists the only user fields a profile update may change.
type UserUpdate struct {
	Nickname  *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,max=512"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Nickname       string    `json:"nickname"`
	AvatarURL      string    `json:"avatarUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
