package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event statuses
const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
)

type EventModel struct {
	EventID          uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventSchoolID    uuid.UUID  `gorm:"column:event_school_id;type:uuid;not null;index:idx_events_school_id" json:"event_school_id"`
	EventTitle       string     `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventType        string     `gorm:"column:event_type;type:varchar(30);not null;default:'general'" json:"event_type"`
	EventDate        *time.Time `gorm:"column:event_date;type:timestamptz;index:idx_events_date" json:"event_date"`
	EventLocation    string     `gorm:"column:event_location;type:varchar(255)" json:"event_location"`

	EventMaxAttendees         int    `gorm:"column:event_max_attendees;not null;default:0" json:"event_max_attendees"`
	EventRegistrationRequired bool   `gorm:"column:event_registration_required;not null;default:false" json:"event_registration_required"`
	EventStatus               string `gorm:"column:event_status;type:varchar(20);not null;default:'active'" json:"event_status"`

	EventCreatedBy uuid.UUID `gorm:"column:event_created_by;type:uuid;not null" json:"event_created_by"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
