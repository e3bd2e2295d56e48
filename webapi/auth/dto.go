package auth

// RegisterInput represents the request body for creating an account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Nickname string `json:"nickname" validate:"max=50"`
}

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token issued at login.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
