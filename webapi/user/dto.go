package user

import "github.com/amirasaad/expensetracker/pkg/dto"

// UpdateProfileInput is the request body of PUT /users/me. Only these two
// fields can change; anything else in the body is ignored.
type UpdateProfileInput struct {
	Nickname  *string `json:"nickname" validate:"omitempty,min=1,max=50"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,max=512"`
}

func (in UpdateProfileInput) toUpdate() dto.UserUpdate {
	return dto.UserUpdate{Nickname: in.Nickname, AvatarURL: in.AvatarURL}
}
