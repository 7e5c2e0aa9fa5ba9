package route

import (
	"alumnihub_backend/internals/features/shop/products/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)

	products := api.Group("/products")
	products.Post("/", ctrl.CreateProduct)
	products.Get("/", ctrl.ListProducts)
	products.Patch("/:id", ctrl.UpdateProduct)
	products.Patch("/:id/image", ctrl.UploadImage)
	products.Delete("/:id", ctrl.DeleteProduct)
}

func ProductUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)

	products := api.Group("/products")
	products.Get("/", ctrl.BrowseProducts)
	products.Get("/:id", ctrl.GetProductByID)
}
