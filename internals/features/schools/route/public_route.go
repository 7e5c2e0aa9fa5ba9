package route

import (
	"alumnihub_backend/internals/features/schools/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SchoolPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Get("/", ctrl.ListSchools)
	schools.Get("/:slug", ctrl.GetSchoolBySlug)
}
