package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID          uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName        string    `gorm:"column:school_name;type:varchar(255);not null" json:"school_name"`
	SchoolSlug        string    `gorm:"column:school_slug;type:varchar(120);not null;uniqueIndex:ux_schools_slug" json:"school_slug"`
	SchoolDescription string    `gorm:"column:school_description;type:text" json:"school_description"`
	SchoolLocation    string    `gorm:"column:school_location;type:varchar(255)" json:"school_location"`
	SchoolWebsite     string    `gorm:"column:school_website;type:varchar(255)" json:"school_website"`
	SchoolLogoURL     string    `gorm:"column:school_logo_url;type:text" json:"school_logo_url"`

	SchoolOwnerID uuid.UUID `gorm:"column:school_owner_id;type:uuid;not null" json:"school_owner_id"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;type:timestamptz;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
