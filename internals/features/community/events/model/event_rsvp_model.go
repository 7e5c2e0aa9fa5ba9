package model

import (
	"time"

	"github.com/google/uuid"
)

// RSVP statuses
const (
	RSVPStatusAttending = "attending"
	RSVPStatusMaybe     = "maybe"
	RSVPStatusDeclined  = "declined"
)

// One row per (event, viewer); resubmission overwrites the prior value.
// Unique index ux_event_rsvps_event_user backs the ON CONFLICT upsert.
type EventRSVPModel struct {
	EventRSVPID       uuid.UUID `gorm:"column:event_rsvp_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_rsvp_id"`
	EventRSVPEventID  uuid.UUID `gorm:"column:event_rsvp_event_id;type:uuid;not null;uniqueIndex:ux_event_rsvps_event_user" json:"event_rsvp_event_id"`
	EventRSVPUserID   uuid.UUID `gorm:"column:event_rsvp_user_id;type:uuid;not null;uniqueIndex:ux_event_rsvps_event_user" json:"event_rsvp_user_id"`
	EventRSVPSchoolID uuid.UUID `gorm:"column:event_rsvp_school_id;type:uuid;not null;index:idx_event_rsvps_school_id" json:"event_rsvp_school_id"`

	EventRSVPStatus string `gorm:"column:event_rsvp_status;type:varchar(20);not null" json:"event_rsvp_status"`
	EventRSVPNote   string `gorm:"column:event_rsvp_note;type:text" json:"event_rsvp_note"`

	EventRSVPCreatedAt time.Time `gorm:"column:event_rsvp_created_at;type:timestamptz;autoCreateTime" json:"event_rsvp_created_at"`
	EventRSVPUpdatedAt time.Time `gorm:"column:event_rsvp_updated_at;type:timestamptz;autoUpdateTime" json:"event_rsvp_updated_at"`
}

func (EventRSVPModel) TableName() string {
	return "event_rsvps"
}
