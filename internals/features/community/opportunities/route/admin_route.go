package route

import (
	"alumnihub_backend/internals/features/community/opportunities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OpportunityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityAdminController(db)

	opps := api.Group("/opportunities")
	opps.Post("/", ctrl.CreateOpportunity)
	opps.Get("/", ctrl.ListOpportunities)
	opps.Get("/:id", ctrl.GetOpportunityByID)
	opps.Patch("/:id", ctrl.UpdateOpportunity)
	opps.Delete("/:id", ctrl.DeleteOpportunity)
	opps.Get("/:id/interests", ctrl.ListOpportunityInterests)
}
