package listing

import (
	eventModel "alumnihub_backend/internals/features/community/events/model"
	opportunityModel "alumnihub_backend/internals/features/community/opportunities/model"
	postModel "alumnihub_backend/internals/features/community/posts/model"
)

// Normalization into the superset view model. Every absent field gets a
// neutral default so the merged list stays homogeneous.

func NormalizeEvent(m eventModel.EventModel) Item {
	return Item{
		SourceType:           SourceStructured,
		SourceID:             m.EventID,
		SchoolID:             m.EventSchoolID,
		Title:                m.EventTitle,
		Description:          m.EventDescription,
		TypeTag:              m.EventType,
		OccursAt:             m.EventDate,
		Location:             m.EventLocation,
		MaxAttendees:         m.EventMaxAttendees,
		RegistrationRequired: m.EventRegistrationRequired,
		Status:               m.EventStatus,
		CreatedBy:            m.EventCreatedBy,
		CreatedAt:            m.EventCreatedAt,
	}
}

func NormalizeOpportunity(m opportunityModel.OpportunityModel) Item {
	return Item{
		SourceType:  SourceStructured,
		SourceID:    m.OpportunityID,
		SchoolID:    m.OpportunitySchoolID,
		Title:       m.OpportunityTitle,
		Description: m.OpportunityDescription,
		TypeTag:     m.OpportunityType,
		OccursAt:    m.OpportunityDeadline,
		Location:    m.OpportunityLocation,
		CompanyName: m.OpportunityCompanyName,
		Status:      m.OpportunityStatus,
		CreatedBy:   m.OpportunityPostedBy,
		CreatedAt:   m.OpportunityCreatedAt,
	}
}

// NormalizePost mirrors a tagged post read-only: fixed "general" type tag,
// implicit active status, zero counts, no viewer response.
func NormalizePost(m postModel.PostModel) Item {
	return Item{
		SourceType:  SourcePost,
		SourceID:    m.PostID,
		SchoolID:    m.PostSchoolID,
		Title:       m.PostTitle,
		Description: m.PostContent,
		TypeTag:     "general",
		OccursAt:    m.PostEventDate,
		Status:      "active",
		CreatedBy:   m.PostAuthorID,
		CreatedAt:   m.PostCreatedAt,
	}
}
