package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Revoked access tokens, kept until past expiry plus a grace window; the
// cleanup scheduler prunes old rows.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:ux_token_blacklist_token" json:"-"`
	TokenBlacklistExpiredAt time.Time      `gorm:"column:token_blacklist_expired_at;type:timestamptz;not null" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;type:timestamptz;autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;type:timestamptz;index" json:"-"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
