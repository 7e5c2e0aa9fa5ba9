package dto

import (
	"time"

	"alumnihub_backend/internals/features/community/events/model"

	"github.com/google/uuid"
)

type EventCreateRequest struct {
	EventTitle                string     `json:"event_title" validate:"required,max=255"`
	EventDescription          string     `json:"event_description"`
	EventType                 string     `json:"event_type" validate:"omitempty,max=30"`
	EventDate                 *time.Time `json:"event_date"`
	EventLocation             string     `json:"event_location" validate:"omitempty,max=255"`
	EventMaxAttendees         int        `json:"event_max_attendees" validate:"omitempty,min=0"`
	EventRegistrationRequired bool       `json:"event_registration_required"`
}

type EventUpdateRequest struct {
	EventTitle                *string    `json:"event_title" validate:"omitempty,max=255"`
	EventDescription          *string    `json:"event_description"`
	EventType                 *string    `json:"event_type" validate:"omitempty,max=30"`
	EventDate                 *time.Time `json:"event_date"`
	EventLocation             *string    `json:"event_location" validate:"omitempty,max=255"`
	EventMaxAttendees         *int       `json:"event_max_attendees" validate:"omitempty,min=0"`
	EventRegistrationRequired *bool      `json:"event_registration_required"`
}

type EventRSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=attending maybe declined"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

type EventResponse struct {
	EventID                   uuid.UUID  `json:"event_id"`
	EventSchoolID             uuid.UUID  `json:"event_school_id"`
	EventTitle                string     `json:"event_title"`
	EventDescription          string     `json:"event_description"`
	EventType                 string     `json:"event_type"`
	EventDate                 *time.Time `json:"event_date"`
	EventLocation             string     `json:"event_location"`
	EventMaxAttendees         int        `json:"event_max_attendees"`
	EventRegistrationRequired bool       `json:"event_registration_required"`
	EventStatus               string     `json:"event_status"`
	EventCreatedBy            uuid.UUID  `json:"event_created_by"`
	EventCreatedAt            time.Time  `json:"event_created_at"`
}

type EventRSVPResponse struct {
	EventRSVPID      uuid.UUID `json:"event_rsvp_id"`
	EventRSVPEventID uuid.UUID `json:"event_rsvp_event_id"`
	EventRSVPStatus  string    `json:"event_rsvp_status"`
	EventRSVPNote    string    `json:"event_rsvp_note"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (r *EventCreateRequest) ToModel(schoolID, createdBy uuid.UUID) *model.EventModel {
	eventType := r.EventType
	if eventType == "" {
		eventType = "general"
	}
	return &model.EventModel{
		EventSchoolID:             schoolID,
		EventTitle:                r.EventTitle,
		EventDescription:          r.EventDescription,
		EventType:                 eventType,
		EventDate:                 r.EventDate,
		EventLocation:             r.EventLocation,
		EventMaxAttendees:         r.EventMaxAttendees,
		EventRegistrationRequired: r.EventRegistrationRequired,
		EventStatus:               model.EventStatusActive,
		EventCreatedBy:            createdBy,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:                   m.EventID,
		EventSchoolID:             m.EventSchoolID,
		EventTitle:                m.EventTitle,
		EventDescription:          m.EventDescription,
		EventType:                 m.EventType,
		EventDate:                 m.EventDate,
		EventLocation:             m.EventLocation,
		EventMaxAttendees:         m.EventMaxAttendees,
		EventRegistrationRequired: m.EventRegistrationRequired,
		EventStatus:               m.EventStatus,
		EventCreatedBy:            m.EventCreatedBy,
		EventCreatedAt:            m.EventCreatedAt,
	}
}

func ToEventRSVPResponse(m *model.EventRSVPModel) *EventRSVPResponse {
	return &EventRSVPResponse{
		EventRSVPID:      m.EventRSVPID,
		EventRSVPEventID: m.EventRSVPEventID,
		EventRSVPStatus:  m.EventRSVPStatus,
		EventRSVPNote:    m.EventRSVPNote,
		UpdatedAt:        m.EventRSVPUpdatedAt,
	}
}
