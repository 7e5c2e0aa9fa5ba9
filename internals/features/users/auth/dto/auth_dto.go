package dto

import (
	"time"

	"alumnihub_backend/internals/features/users/auth/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserBio       string    `json:"user_bio"`
	UserAvatarURL string    `json:"user_avatar_url"`
	UserLocation  string    `json:"user_location"`
	UserInterests []string  `json:"user_interests"`
	UserSkills    []string  `json:"user_skills"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserBio:       m.UserBio,
		UserAvatarURL: m.UserAvatarURL,
		UserLocation:  m.UserLocation,
		UserInterests: m.UserInterests,
		UserSkills:    m.UserSkills,
		UserCreatedAt: m.UserCreatedAt,
	}
}
