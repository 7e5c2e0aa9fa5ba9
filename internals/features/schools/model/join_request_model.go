package model

import (
	"time"

	"github.com/google/uuid"
)

type JoinRequestModel struct {
	JoinRequestID       uuid.UUID `gorm:"column:join_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"join_request_id"`
	JoinRequestSchoolID uuid.UUID `gorm:"column:join_request_school_id;type:uuid;not null;index:idx_join_requests_school_id" json:"join_request_school_id"`
	JoinRequestUserID   uuid.UUID `gorm:"column:join_request_user_id;type:uuid;not null" json:"join_request_user_id"`

	JoinRequestMessage string `gorm:"column:join_request_message;type:text" json:"join_request_message"`
	JoinRequestStatus  string `gorm:"column:join_request_status;type:varchar(20);not null;default:'pending'" json:"join_request_status"`

	JoinRequestGraduationYear int `gorm:"column:join_request_graduation_year;not null;default:0" json:"join_request_graduation_year"`

	// Set when an admin decides.
	JoinRequestDecidedBy *uuid.UUID `gorm:"column:join_request_decided_by;type:uuid" json:"join_request_decided_by"`
	JoinRequestDecidedAt *time.Time `gorm:"column:join_request_decided_at;type:timestamptz" json:"join_request_decided_at"`

	JoinRequestCreatedAt time.Time `gorm:"column:join_request_created_at;type:timestamptz;autoCreateTime" json:"join_request_created_at"`
	JoinRequestUpdatedAt time.Time `gorm:"column:join_request_updated_at;type:timestamptz;autoUpdateTime" json:"join_request_updated_at"`
}

func (JoinRequestModel) TableName() string {
	return "join_requests"
}
