package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Opportunity statuses
const (
	OpportunityStatusActive = "active"
	OpportunityStatusClosed = "closed"
)

// Opportunity types
const (
	OpportunityTypeJob         = "job"
	OpportunityTypeInternship  = "internship"
	OpportunityTypeScholarship = "scholarship"
	OpportunityTypeMentorship  = "mentorship"
)

type OpportunityModel struct {
	OpportunityID          uuid.UUID  `gorm:"column:opportunity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"opportunity_id"`
	OpportunitySchoolID    uuid.UUID  `gorm:"column:opportunity_school_id;type:uuid;not null;index:idx_opportunities_school_id" json:"opportunity_school_id"`
	OpportunityTitle       string     `gorm:"column:opportunity_title;type:varchar(255);not null" json:"opportunity_title"`
	OpportunityDescription string     `gorm:"column:opportunity_description;type:text" json:"opportunity_description"`
	OpportunityCompanyName string     `gorm:"column:opportunity_company_name;type:varchar(255)" json:"opportunity_company_name"`
	OpportunityType        string     `gorm:"column:opportunity_type;type:varchar(30);not null;default:'job'" json:"opportunity_type"`
	OpportunityLocation    string     `gorm:"column:opportunity_location;type:varchar(255)" json:"opportunity_location"`
	OpportunitySalaryRange string     `gorm:"column:opportunity_salary_range;type:varchar(100)" json:"opportunity_salary_range"`

	OpportunityRequirements       string `gorm:"column:opportunity_requirements;type:text" json:"opportunity_requirements"`
	OpportunityApplicationProcess string `gorm:"column:opportunity_application_process;type:text" json:"opportunity_application_process"`
	OpportunityContactEmail       string `gorm:"column:opportunity_contact_email;type:varchar(255)" json:"opportunity_contact_email"`

	OpportunityDeadline *time.Time `gorm:"column:opportunity_deadline;type:timestamptz;index:idx_opportunities_deadline" json:"opportunity_deadline"`
	OpportunityStatus   string     `gorm:"column:opportunity_status;type:varchar(20);not null;default:'active'" json:"opportunity_status"`

	OpportunityPostedBy uuid.UUID `gorm:"column:opportunity_posted_by;type:uuid;not null" json:"opportunity_posted_by"`

	OpportunityCreatedAt time.Time      `gorm:"column:opportunity_created_at;type:timestamptz;autoCreateTime" json:"opportunity_created_at"`
	OpportunityUpdatedAt time.Time      `gorm:"column:opportunity_updated_at;type:timestamptz;autoUpdateTime" json:"opportunity_updated_at"`
	OpportunityDeletedAt gorm.DeletedAt `gorm:"column:opportunity_deleted_at;type:timestamptz;index" json:"opportunity_deleted_at,omitempty"`
}

func (OpportunityModel) TableName() string {
	return "opportunities"
}
