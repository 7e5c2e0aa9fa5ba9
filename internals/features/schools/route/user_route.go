package route

import (
	"alumnihub_backend/internals/features/schools/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolUserRoutes: endpoints needing only a valid login. CreateSchool and
// Apply run before any school scope exists, so they sit outside the scoped
// groups.
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	schoolCtrl := controller.NewSchoolController(db)
	joinCtrl := controller.NewJoinRequestController(db)

	schools := api.Group("/schools")
	schools.Post("/", schoolCtrl.CreateSchool)
	schools.Post("/:school_id/join", joinCtrl.Apply)
}

// SchoolMemberRoutes: endpoints behind the school scope.
func SchoolMemberRoutes(api fiber.Router, db *gorm.DB) {
	schoolCtrl := controller.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Get("/members", schoolCtrl.ListMembers)
}
