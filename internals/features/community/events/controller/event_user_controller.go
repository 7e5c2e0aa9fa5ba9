package controller

import (
	"database/sql"
	"log"
	"strings"

	"alumnihub_backend/internals/features/community/events/dto"
	"alumnihub_backend/internals/features/community/events/model"
	"alumnihub_backend/internals/features/community/listing"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventUserController struct {
	DB      *gorm.DB
	Listing *listing.Builder
}

func NewEventUserController(db *gorm.DB) *EventUserController {
	return &EventUserController{DB: db, Listing: listing.NewBuilder(db)}
}

// GET /api/u/events
// Member feed: soonest first, defaults to upcoming.
func (ctrl *EventUserController) ListEvents(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	res := ctrl.Listing.Build(c.UserContext(), listing.Query{
		SchoolID: sess.SchoolID,
		Kind:     listing.KindEvent,
		Filter:   strings.TrimSpace(c.Query("filter", listing.FilterUpcoming)),
		Search:   strings.TrimSpace(c.Query("search")),
		ViewerID: sess.UserID,
		Page:     paging.Page,
		PerPage:  paging.PerPage,
		Order:    listing.OrderAsc,
	})

	pagination := helper.BuildPagination(int64(res.Total), paging.Page, paging.PerPage)
	return helper.JsonListEx(c, "Events fetched", res.Items, pagination, fiber.Map{
		"degraded": res.Degraded,
	})
}

// GET /api/u/events/:id
func (ctrl *EventUserController) GetEventByID(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.EventModel
	if err := ctrl.DB.
		Where("event_id = ? AND event_school_id = ?", eventID, sess.SchoolID).
		First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var myRSVP model.EventRSVPModel
	var viewerResponse *string
	if err := ctrl.DB.
		Where("event_rsvp_event_id = ? AND event_rsvp_user_id = ?", eventID, sess.UserID).
		First(&myRSVP).Error; err == nil {
		viewerResponse = &myRSVP.EventRSVPStatus
	}

	// Counts are decoration; a store failure degrades them to zero.
	attending := helper.CountOrZero(
		ctrl.DB.Model(&model.EventRSVPModel{}).
			Where("event_rsvp_event_id = ? AND event_rsvp_status = ?", eventID, model.RSVPStatusAttending),
		"event RSVPs")

	return helper.JsonOK(c, "Event fetched", fiber.Map{
		"event":           dto.ToEventResponse(&ev),
		"attendee_count":  attending,
		"viewer_response": viewerResponse,
	})
}

// POST /api/u/events/:id/rsvp
// One row per (event, viewer); a resubmission overwrites status and note.
func (ctrl *EventUserController) RSVP(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var req dto.EventRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ev model.EventModel
	if err := ctrl.DB.
		Where("event_id = ? AND event_school_id = ?", eventID, sess.SchoolID).
		First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if ev.EventStatus == model.EventStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Event has been cancelled")
	}

	// Atomic upsert on (event_id, user_id); last write wins.
	var row model.EventRSVPModel
	if err := ctrl.DB.
		Raw(eventRSVPUpsertSQL,
			sql.Named("event_id", eventID),
			sql.Named("user_id", sess.UserID),
			sql.Named("school_id", sess.SchoolID),
			sql.Named("status", req.Status),
			sql.Named("note", req.Note),
		).
		Scan(&row).Error; err != nil {
		log.Printf("[ERROR] rsvp event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save RSVP")
	}

	return helper.JsonOK(c, "RSVP saved", dto.ToEventRSVPResponse(&row))
}

// One RSVP row per (event, viewer); a resubmission overwrites status and
// note in place.
const eventRSVPUpsertSQL = `
	INSERT INTO event_rsvps (
		event_rsvp_id,
		event_rsvp_event_id,
		event_rsvp_user_id,
		event_rsvp_school_id,
		event_rsvp_status,
		event_rsvp_note
	)
	VALUES (gen_random_uuid(), @event_id, @user_id, @school_id, @status, @note)
	ON CONFLICT (event_rsvp_event_id, event_rsvp_user_id)
	DO UPDATE SET
		event_rsvp_status = EXCLUDED.event_rsvp_status,
		event_rsvp_note = EXCLUDED.event_rsvp_note,
		event_rsvp_updated_at = NOW()
	RETURNING
		event_rsvp_id,
		event_rsvp_event_id,
		event_rsvp_user_id,
		event_rsvp_school_id,
		event_rsvp_status,
		event_rsvp_note,
		event_rsvp_created_at,
		event_rsvp_updated_at
`
