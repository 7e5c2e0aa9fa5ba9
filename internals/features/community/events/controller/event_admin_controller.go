package controller

import (
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

type EventAdminController struct {
	DB      *gorm.DB
	Listing *listing.Builder
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db, Listing: listing.NewBuilder(db)}
}

// POST /api/a/events
func (ctrl *EventAdminController) CreateEvent(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	newEvent := req.ToModel(sess.SchoolID, sess.UserID)
	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", dto.ToEventResponse(newEvent))
}

// GET /api/a/events
// Merged feed for the management view: newest first, same builder as the
// member feed.
func (ctrl *EventAdminController) ListEvents(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	res := ctrl.Listing.Build(c.UserContext(), listing.Query{
		SchoolID: sess.SchoolID,
		Kind:     listing.KindEvent,
		Filter:   strings.TrimSpace(c.Query("filter", listing.FilterAll)),
		Search:   strings.TrimSpace(c.Query("search")),
		ViewerID: sess.UserID,
		Page:     paging.Page,
		PerPage:  paging.PerPage,
		Order:    listing.OrderDesc,
	})

	pagination := helper.BuildPagination(int64(res.Total), paging.Page, paging.PerPage)
	return helper.JsonListEx(c, "Events fetched", res.Items, pagination, fiber.Map{
		"degraded": res.Degraded,
	})
}

// GET /api/a/events/:id
func (ctrl *EventAdminController) GetEventByID(c *fiber.Ctx) error {
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

	return helper.JsonOK(c, "Event fetched", dto.ToEventResponse(&ev))
}

// PATCH /api/a/events/:id
func (ctrl *EventAdminController) UpdateEvent(c *fiber.Ctx) error {
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

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventMaxAttendees != nil {
		updates["event_max_attendees"] = *req.EventMaxAttendees
	}
	if req.EventRegistrationRequired != nil {
		updates["event_registration_required"] = *req.EventRegistrationRequired
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}

	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(&ev))
}

// PATCH /api/a/events/:id/cancel
// Cancellation keeps the row and its RSVPs; the feed just shows the status.
func (ctrl *EventAdminController) CancelEvent(c *fiber.Ctx) error {
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
	if ev.EventStatus == model.EventStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Event is already cancelled")
	}

	if err := ctrl.DB.Model(&ev).
		Update("event_status", model.EventStatusCancelled).Error; err != nil {
		log.Printf("[ERROR] cancel event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel event")
	}

	ev.EventStatus = model.EventStatusCancelled
	return helper.JsonUpdated(c, "Event cancelled", dto.ToEventResponse(&ev))
}

// PATCH /api/a/events/:id/restore
func (ctrl *EventAdminController) RestoreEvent(c *fiber.Ctx) error {
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
	if ev.EventStatus != model.EventStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Event is not cancelled")
	}

	if err := ctrl.DB.Model(&ev).
		Update("event_status", model.EventStatusActive).Error; err != nil {
		log.Printf("[ERROR] restore event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to restore event")
	}

	ev.EventStatus = model.EventStatusActive
	return helper.JsonUpdated(c, "Event restored", dto.ToEventResponse(&ev))
}

// DELETE /api/a/events/:id
func (ctrl *EventAdminController) DeleteEvent(c *fiber.Ctx) error {
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

	if err := ctrl.DB.Delete(&ev).Error; err != nil {
		log.Printf("[ERROR] delete event %s: %v", eventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": eventID})
}

// GET /api/a/events/:id/rsvps
func (ctrl *EventAdminController) ListEventRSVPs(c *fiber.Ctx) error {
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

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventRSVPModel{}).
		Where("event_rsvp_event_id = ?", eventID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count RSVPs")
	}

	var rsvps []model.EventRSVPModel
	if err := ctrl.DB.
		Where("event_rsvp_event_id = ?", eventID).
		Order("event_rsvp_updated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rsvps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch RSVPs")
	}

	return helper.JsonList(c, "RSVPs fetched", rsvps,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
