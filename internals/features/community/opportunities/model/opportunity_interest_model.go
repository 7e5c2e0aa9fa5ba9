package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (opportunity, viewer). Unique index backs ON CONFLICT DO
// NOTHING; a second express is reported as "already expressed".
type OpportunityInterestModel struct {
	OpportunityInterestID            uuid.UUID `gorm:"column:opportunity_interest_id;type:uuid;default:gen_random_uuid();primaryKey" json:"opportunity_interest_id"`
	OpportunityInterestOpportunityID uuid.UUID `gorm:"column:opportunity_interest_opportunity_id;type:uuid;not null;uniqueIndex:ux_opportunity_interests_opportunity_user" json:"opportunity_interest_opportunity_id"`
	OpportunityInterestUserID        uuid.UUID `gorm:"column:opportunity_interest_user_id;type:uuid;not null;uniqueIndex:ux_opportunity_interests_opportunity_user" json:"opportunity_interest_user_id"`
	OpportunityInterestSchoolID      uuid.UUID `gorm:"column:opportunity_interest_school_id;type:uuid;not null;index:idx_opportunity_interests_school_id" json:"opportunity_interest_school_id"`

	OpportunityInterestCreatedAt time.Time `gorm:"column:opportunity_interest_created_at;type:timestamptz;autoCreateTime" json:"opportunity_interest_created_at"`
}

func (OpportunityInterestModel) TableName() string {
	return "opportunity_interests"
}
