package route

import (
	"alumnihub_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Patch("/", ctrl.UpdateProfile)
	profile.Patch("/avatar", ctrl.UploadAvatar)
	profile.Get("/:user_id", ctrl.GetMemberProfile)
}
