package dto

import (
	"time"

	"alumnihub_backend/internals/features/schools/model"

	"github.com/google/uuid"
)

type SchoolCreateRequest struct {
	SchoolName        string `json:"school_name" validate:"required,max=255"`
	SchoolDescription string `json:"school_description"`
	SchoolLocation    string `json:"school_location" validate:"omitempty,max=255"`
	SchoolWebsite     string `json:"school_website" validate:"omitempty,max=255"`
}

type SchoolUpdateRequest struct {
	SchoolName        *string `json:"school_name" validate:"omitempty,max=255"`
	SchoolDescription *string `json:"school_description"`
	SchoolLocation    *string `json:"school_location" validate:"omitempty,max=255"`
	SchoolWebsite     *string `json:"school_website" validate:"omitempty,max=255"`
}

type JoinRequestCreateRequest struct {
	Message        string `json:"message" validate:"omitempty,max=1000"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,gte=1900"`
}

type MemberUpdateRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=admin member"`
	Status *string `json:"status" validate:"omitempty,oneof=active removed"`
}

type SchoolResponse struct {
	SchoolID          uuid.UUID `json:"school_id"`
	SchoolName        string    `json:"school_name"`
	SchoolSlug        string    `json:"school_slug"`
	SchoolDescription string    `json:"school_description"`
	SchoolLocation    string    `json:"school_location"`
	SchoolWebsite     string    `json:"school_website"`
	SchoolLogoURL     string    `json:"school_logo_url"`
	SchoolOwnerID     uuid.UUID `json:"school_owner_id"`
	SchoolCreatedAt   time.Time `json:"school_created_at"`
}

func ToSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:          m.SchoolID,
		SchoolName:        m.SchoolName,
		SchoolSlug:        m.SchoolSlug,
		SchoolDescription: m.SchoolDescription,
		SchoolLocation:    m.SchoolLocation,
		SchoolWebsite:     m.SchoolWebsite,
		SchoolLogoURL:     m.SchoolLogoURL,
		SchoolOwnerID:     m.SchoolOwnerID,
		SchoolCreatedAt:   m.SchoolCreatedAt,
	}
}

func ToSchoolResponseList(models []model.SchoolModel) []SchoolResponse {
	result := make([]SchoolResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToSchoolResponse(&models[i]))
	}
	return result
}
