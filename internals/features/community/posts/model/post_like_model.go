package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (post, user); like is a flip of post_like_is_liked done
// atomically with ON CONFLICT.
type PostLikeModel struct {
	PostLikeID       uuid.UUID `gorm:"column:post_like_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_like_id"`
	PostLikePostID   uuid.UUID `gorm:"column:post_like_post_id;type:uuid;not null;uniqueIndex:ux_post_likes_post_user" json:"post_like_post_id"`
	PostLikeUserID   uuid.UUID `gorm:"column:post_like_user_id;type:uuid;not null;uniqueIndex:ux_post_likes_post_user" json:"post_like_user_id"`
	PostLikeSchoolID uuid.UUID `gorm:"column:post_like_school_id;type:uuid;not null" json:"post_like_school_id"`

	PostLikeIsLiked bool `gorm:"column:post_like_is_liked;not null;default:true" json:"post_like_is_liked"`

	PostLikeUpdatedAt time.Time `gorm:"column:post_like_updated_at;type:timestamptz;autoUpdateTime" json:"post_like_updated_at"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}
