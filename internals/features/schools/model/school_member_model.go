package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (school, user). Role is per-school; global ownership lives
// on users.user_role.
type SchoolMemberModel struct {
	SchoolMemberID       uuid.UUID `gorm:"column:school_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_member_id"`
	SchoolMemberSchoolID uuid.UUID `gorm:"column:school_member_school_id;type:uuid;not null;uniqueIndex:ux_school_members_school_user" json:"school_member_school_id"`
	SchoolMemberUserID   uuid.UUID `gorm:"column:school_member_user_id;type:uuid;not null;uniqueIndex:ux_school_members_school_user" json:"school_member_user_id"`

	SchoolMemberRole   string `gorm:"column:school_member_role;type:varchar(20);not null;default:'member'" json:"school_member_role"`
	SchoolMemberStatus string `gorm:"column:school_member_status;type:varchar(20);not null;default:'active'" json:"school_member_status"`

	SchoolMemberGraduationYear int    `gorm:"column:school_member_graduation_year;not null;default:0" json:"school_member_graduation_year"`
	SchoolMemberTitle          string `gorm:"column:school_member_title;type:varchar(120)" json:"school_member_title"`

	SchoolMemberCreatedAt time.Time `gorm:"column:school_member_created_at;type:timestamptz;autoCreateTime" json:"school_member_created_at"`
	SchoolMemberUpdatedAt time.Time `gorm:"column:school_member_updated_at;type:timestamptz;autoUpdateTime" json:"school_member_updated_at"`
}

func (SchoolMemberModel) TableName() string {
	return "school_members"
}
