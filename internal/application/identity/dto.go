package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/stylesphere/storefront/internal/domain/identity"
)

// RegisterInput contains input for user registration
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"max=200"`
}

// LoginInput contains input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput contains profile fields that can be changed
type UpdateProfileInput struct {
	FullName *string `json:"full_name" binding:"omitempty,max=200"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a user aggregate to its response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
