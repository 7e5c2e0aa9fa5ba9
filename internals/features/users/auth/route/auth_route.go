package route

import (
	"alumnihub_backend/internals/configs"
	"alumnihub_backend/internals/features/users/auth/controller"
	"alumnihub_backend/internals/features/users/auth/service"
	"alumnihub_backend/internals/middlewares"
	authMiddleware "alumnihub_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	authed := auth.Group("/", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:           configs.JWTSecret,
		BlacklistChecker: service.IsTokenBlacklisted(db),
	}))
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/me", ctrl.Me)
}
