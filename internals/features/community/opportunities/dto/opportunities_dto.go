package dto

import (
	"time"

	"alumnihub_backend/internals/features/community/opportunities/model"

	"github.com/google/uuid"
)

type OpportunityCreateRequest struct {
	OpportunityTitle       string `json:"opportunity_title" validate:"required,max=255"`
	OpportunityDescription string `json:"opportunity_description"`
	OpportunityCompanyName string `json:"opportunity_company_name" validate:"omitempty,max=255"`
	OpportunityType        string `json:"opportunity_type" validate:"required,oneof=job internship scholarship mentorship"`
	OpportunityLocation    string `json:"opportunity_location" validate:"omitempty,max=255"`
	OpportunitySalaryRange string `json:"opportunity_salary_range" validate:"omitempty,max=100"`

	OpportunityRequirements       string `json:"opportunity_requirements"`
	OpportunityApplicationProcess string `json:"opportunity_application_process"`
	OpportunityContactEmail       string `json:"opportunity_contact_email" validate:"omitempty,email"`

	OpportunityDeadline *time.Time `json:"opportunity_deadline"`
}

type OpportunityUpdateRequest struct {
	OpportunityTitle       *string `json:"opportunity_title" validate:"omitempty,max=255"`
	OpportunityDescription *string `json:"opportunity_description"`
	OpportunityCompanyName *string `json:"opportunity_company_name" validate:"omitempty,max=255"`
	OpportunityType        *string `json:"opportunity_type" validate:"omitempty,oneof=job internship scholarship mentorship"`
	OpportunityLocation    *string `json:"opportunity_location" validate:"omitempty,max=255"`
	OpportunitySalaryRange *string `json:"opportunity_salary_range" validate:"omitempty,max=100"`

	OpportunityRequirements       *string `json:"opportunity_requirements"`
	OpportunityApplicationProcess *string `json:"opportunity_application_process"`
	OpportunityContactEmail       *string `json:"opportunity_contact_email" validate:"omitempty,email"`

	OpportunityDeadline *time.Time `json:"opportunity_deadline"`
	OpportunityStatus   *string    `json:"opportunity_status" validate:"omitempty,oneof=active closed"`
}

type OpportunityResponse struct {
	OpportunityID          uuid.UUID `json:"opportunity_id"`
	OpportunitySchoolID    uuid.UUID `json:"opportunity_school_id"`
	OpportunityTitle       string    `json:"opportunity_title"`
	OpportunityDescription string    `json:"opportunity_description"`
	OpportunityCompanyName string    `json:"opportunity_company_name"`
	OpportunityType        string    `json:"opportunity_type"`
	OpportunityLocation    string    `json:"opportunity_location"`
	OpportunitySalaryRange string    `json:"opportunity_salary_range"`

	OpportunityRequirements       string `json:"opportunity_requirements"`
	OpportunityApplicationProcess string `json:"opportunity_application_process"`
	OpportunityContactEmail       string `json:"opportunity_contact_email"`

	OpportunityDeadline  *time.Time `json:"opportunity_deadline"`
	OpportunityStatus    string     `json:"opportunity_status"`
	OpportunityPostedBy  uuid.UUID  `json:"opportunity_posted_by"`
	OpportunityCreatedAt time.Time  `json:"opportunity_created_at"`
}

func (r *OpportunityCreateRequest) ToModel(schoolID, postedBy uuid.UUID) *model.OpportunityModel {
	return &model.OpportunityModel{
		OpportunitySchoolID:    schoolID,
		OpportunityTitle:       r.OpportunityTitle,
		OpportunityDescription: r.OpportunityDescription,
		OpportunityCompanyName: r.OpportunityCompanyName,
		OpportunityType:        r.OpportunityType,
		OpportunityLocation:    r.OpportunityLocation,
		OpportunitySalaryRange: r.OpportunitySalaryRange,

		OpportunityRequirements:       r.OpportunityRequirements,
		OpportunityApplicationProcess: r.OpportunityApplicationProcess,
		OpportunityContactEmail:       r.OpportunityContactEmail,

		OpportunityDeadline: r.OpportunityDeadline,
		OpportunityStatus:   model.OpportunityStatusActive,
		OpportunityPostedBy: postedBy,
	}
}

func ToOpportunityResponse(m *model.OpportunityModel) *OpportunityResponse {
	return &OpportunityResponse{
		OpportunityID:          m.OpportunityID,
		OpportunitySchoolID:    m.OpportunitySchoolID,
		OpportunityTitle:       m.OpportunityTitle,
		OpportunityDescription: m.OpportunityDescription,
		OpportunityCompanyName: m.OpportunityCompanyName,
		OpportunityType:        m.OpportunityType,
		OpportunityLocation:    m.OpportunityLocation,
		OpportunitySalaryRange: m.OpportunitySalaryRange,

		OpportunityRequirements:       m.OpportunityRequirements,
		OpportunityApplicationProcess: m.OpportunityApplicationProcess,
		OpportunityContactEmail:       m.OpportunityContactEmail,

		OpportunityDeadline:  m.OpportunityDeadline,
		OpportunityStatus:    m.OpportunityStatus,
		OpportunityPostedBy:  m.OpportunityPostedBy,
		OpportunityCreatedAt: m.OpportunityCreatedAt,
	}
}
