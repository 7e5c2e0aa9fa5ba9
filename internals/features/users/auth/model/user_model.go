package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:ux_users_email" json:"user_email"`

	// bcrypt hash, never serialized.
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	// Global role: owner or user. Per-school roles live on school_members.
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`

	UserBio       string `gorm:"column:user_bio;type:text" json:"user_bio"`
	UserAvatarURL string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url"`
	UserLocation  string `gorm:"column:user_location;type:varchar(255)" json:"user_location"`

	UserInterests pq.StringArray `gorm:"column:user_interests;type:text[]" json:"user_interests"`
	UserSkills    pq.StringArray `gorm:"column:user_skills;type:text[]" json:"user_skills"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
