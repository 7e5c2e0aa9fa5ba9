package route

import (
	"alumnihub_backend/internals/features/schools/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	schoolCtrl := controller.NewSchoolController(db)
	joinCtrl := controller.NewJoinRequestController(db)

	schools := api.Group("/schools")
	schools.Patch("/", schoolCtrl.UpdateSchool)
	schools.Patch("/logo", schoolCtrl.UploadLogo)
	schools.Delete("/", schoolCtrl.DeleteSchool)
	schools.Patch("/members/:user_id", schoolCtrl.UpdateMember)

	joins := api.Group("/join-requests")
	joins.Get("/", joinCtrl.ListPending)
	joins.Patch("/:id/approve", joinCtrl.Approve)
	joins.Patch("/:id/reject", joinCtrl.Reject)
}
