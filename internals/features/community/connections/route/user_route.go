package route

import (
	"alumnihub_backend/internals/features/community/connections/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ConnectionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConnectionController(db)

	connections := api.Group("/connections")
	connections.Post("/", ctrl.RequestConnection)
	connections.Get("/", ctrl.ListConnections)
	connections.Get("/pending", ctrl.ListPending)
	connections.Patch("/:id/accept", ctrl.AcceptConnection)
	connections.Patch("/:id/reject", ctrl.RejectConnection)
}
