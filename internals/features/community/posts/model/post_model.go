package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post types. Posts tagged event/opportunity are mirrored read-only into
// the community listings next to the structured tables.
const (
	PostTypeGeneral     = "general"
	PostTypeEvent       = "event"
	PostTypeOpportunity = "opportunity"
)

type PostModel struct {
	PostID       uuid.UUID `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostSchoolID uuid.UUID `gorm:"column:post_school_id;type:uuid;not null;index:idx_posts_school_id" json:"post_school_id"`
	PostAuthorID uuid.UUID `gorm:"column:post_author_id;type:uuid;not null" json:"post_author_id"`

	PostTitle   string `gorm:"column:post_title;type:varchar(255);not null" json:"post_title"`
	PostContent string `gorm:"column:post_content;type:text" json:"post_content"`
	PostType    string `gorm:"column:post_type;type:varchar(20);not null;default:'general';index:idx_posts_type" json:"post_type"`

	// Only meaningful for post_type=event; free-form otherwise.
	PostEventDate *time.Time `gorm:"column:post_event_date;type:timestamptz" json:"post_event_date"`

	PostCreatedAt time.Time      `gorm:"column:post_created_at;type:timestamptz;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt time.Time      `gorm:"column:post_updated_at;type:timestamptz;autoUpdateTime" json:"post_updated_at"`
	PostDeletedAt gorm.DeletedAt `gorm:"column:post_deleted_at;type:timestamptz;index" json:"post_deleted_at,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}
