package route

import (
	"alumnihub_backend/internals/features/community/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventAdminRoutes mounts the management endpoints. The group is already
// behind AuthJWT + UseSchoolScope + IsSchoolAdmin.
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventAdminController(db)

	events := api.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.ListEvents)
	events.Get("/:id", ctrl.GetEventByID)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Patch("/:id/cancel", ctrl.CancelEvent)
	events.Patch("/:id/restore", ctrl.RestoreEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Get("/:id/rsvps", ctrl.ListEventRSVPs)
}
