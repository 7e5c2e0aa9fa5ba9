package route

import (
	"alumnihub_backend/internals/features/shop/cart/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CartUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCartController(db)

	cart := api.Group("/cart")
	cart.Get("/", ctrl.GetCart)
	cart.Put("/items", ctrl.SetItem)
	cart.Delete("/", ctrl.ClearCart)
}
