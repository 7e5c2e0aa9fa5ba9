package route

import (
	"alumnihub_backend/internals/features/community/opportunities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OpportunityUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityUserController(db)

	opps := api.Group("/opportunities")
	opps.Get("/", ctrl.ListOpportunities)
	opps.Get("/:id", ctrl.GetOpportunityByID)
	opps.Post("/:id/interest", ctrl.ExpressInterest)
	opps.Delete("/:id/interest", ctrl.WithdrawInterest)
}
