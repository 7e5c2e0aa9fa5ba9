package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostCommentModel struct {
	PostCommentID       uuid.UUID `gorm:"column:post_comment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_comment_id"`
	PostCommentPostID   uuid.UUID `gorm:"column:post_comment_post_id;type:uuid;not null;index:idx_post_comments_post_id" json:"post_comment_post_id"`
	PostCommentUserID   uuid.UUID `gorm:"column:post_comment_user_id;type:uuid;not null" json:"post_comment_user_id"`
	PostCommentSchoolID uuid.UUID `gorm:"column:post_comment_school_id;type:uuid;not null" json:"post_comment_school_id"`

	PostCommentContent string `gorm:"column:post_comment_content;type:text;not null" json:"post_comment_content"`

	PostCommentCreatedAt time.Time      `gorm:"column:post_comment_created_at;type:timestamptz;autoCreateTime" json:"post_comment_created_at"`
	PostCommentDeletedAt gorm.DeletedAt `gorm:"column:post_comment_deleted_at;type:timestamptz;index" json:"post_comment_deleted_at,omitempty"`
}

func (PostCommentModel) TableName() string {
	return "post_comments"
}
