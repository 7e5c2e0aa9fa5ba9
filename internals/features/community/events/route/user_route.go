package route

import (
	"alumnihub_backend/internals/features/community/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventUserRoutes mounts the member feed. The group is already behind
// AuthJWT + UseSchoolScope.
func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventUserController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.ListEvents)
	events.Get("/:id", ctrl.GetEventByID)
	events.Post("/:id/rsvp", ctrl.RSVP)
}
