package route

import (
	"alumnihub_backend/internals/features/community/messages/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MessageUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)

	messages := api.Group("/messages")
	messages.Post("/", ctrl.SendMessage)
	messages.Get("/inbox", ctrl.Inbox)
	messages.Get("/sent", ctrl.Sent)
	messages.Get("/thread/:user_id", ctrl.Thread)
	messages.Patch("/:id/read", ctrl.MarkRead)
}
