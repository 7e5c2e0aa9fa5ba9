package routes

import (
	"alumnihub_backend/internals/configs"
	connectionRoute "alumnihub_backend/internals/features/community/connections/route"
	eventRoute "alumnihub_backend/internals/features/community/events/route"
	messageRoute "alumnihub_backend/internals/features/community/messages/route"
	opportunityRoute "alumnihub_backend/internals/features/community/opportunities/route"
	postRoute "alumnihub_backend/internals/features/community/posts/route"
	schoolRoute "alumnihub_backend/internals/features/schools/route"
	cartRoute "alumnihub_backend/internals/features/shop/cart/route"
	orderRoute "alumnihub_backend/internals/features/shop/orders/route"
	productRoute "alumnihub_backend/internals/features/shop/products/route"
	authRoute "alumnihub_backend/internals/features/users/auth/route"
	authService "alumnihub_backend/internals/features/users/auth/service"
	userRoute "alumnihub_backend/internals/features/users/user/route"
	authMiddleware "alumnihub_backend/internals/middlewares/auth"
	scopeMiddleware "alumnihub_backend/internals/middlewares/features"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts three surfaces:
//
//	/api/public — no token (school directory, payment webhooks)
//	/api/u      — any authenticated user; school-scoped groups add
//	              UseSchoolScope (+IsSchoolMember)
//	/api/a      — school admins (UseSchoolScope + IsSchoolAdmin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Public
	public := api.Group("/public")
	schoolRoute.SchoolPublicRoutes(public, db)
	orderRoute.OrderWebhookRoutes(public, db)

	// Auth (login/register public, logout/me self-guarded)
	authRoute.AuthRoutes(api, db)

	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:           configs.JWTSecret,
		BlacklistChecker: authService.IsTokenBlacklisted(db),
	})

	// Logged-in, no school scope yet: profile, school create, join.
	me := api.Group("/u", authJWT)
	userRoute.ProfileRoutes(me, db)
	schoolRoute.SchoolUserRoutes(me, db)

	// Logged-in member of the active school.
	member := api.Group("/u", authJWT,
		scopeMiddleware.UseSchoolScope(),
		scopeMiddleware.IsSchoolMember(),
	)
	eventRoute.EventUserRoutes(member, db)
	opportunityRoute.OpportunityUserRoutes(member, db)
	postRoute.PostUserRoutes(member, db)
	messageRoute.MessageUserRoutes(member, db)
	connectionRoute.ConnectionUserRoutes(member, db)
	schoolRoute.SchoolMemberRoutes(member, db)
	productRoute.ProductUserRoutes(member, db)
	cartRoute.CartUserRoutes(member, db)
	orderRoute.OrderUserRoutes(member, db)

	// School admins.
	admin := api.Group("/a", authJWT,
		scopeMiddleware.UseSchoolScope(),
		scopeMiddleware.IsSchoolAdmin(),
	)
	eventRoute.EventAdminRoutes(admin, db)
	opportunityRoute.OpportunityAdminRoutes(admin, db)
	schoolRoute.SchoolAdminRoutes(admin, db)
	productRoute.ProductAdminRoutes(admin, db)
}
