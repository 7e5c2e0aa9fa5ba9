package route

import (
	"alumnihub_backend/internals/features/shop/orders/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OrderUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckoutController(db)

	api.Post("/checkout", ctrl.Checkout)

	orders := api.Group("/orders")
	orders.Get("/", ctrl.ListOrders)
	orders.Get("/:id", ctrl.GetOrderByID)
}

// OrderWebhookRoutes is mounted on the public group: the gateway signs
// its calls instead of carrying a user token.
func OrderWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWebhookController(db)

	api.Post("/webhooks/paystack", ctrl.HandlePaystack)
}
