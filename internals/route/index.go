package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accRoute "yugamki_backend/internals/features/accommodations/accommodations/route"
	commRoute "yugamki_backend/internals/features/communications/communications/route"
	eventRoute "yugamki_backend/internals/features/events/events/route"
	regRoute "yugamki_backend/internals/features/events/registrations/route"
	paymentRoute "yugamki_backend/internals/features/finance/payments/route"
	notifRoute "yugamki_backend/internals/features/home/notifications/route"
	statsRoute "yugamki_backend/internals/features/home/stats/route"
	authRoute "yugamki_backend/internals/features/users/auth/route"
	userRoute "yugamki_backend/internals/features/users/user/route"
	authMw "yugamki_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature. Three surfaces:
//
//	/api/auth, /api/public  no token
//	/api/u                  any authenticated user
//	/api/a                  authenticated plus per-route role gates
//
// The payment webhook sits under /api and is excluded from the auth
// middleware by path.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")
	paymentRoute.PaymentWebhookRoutes(api, db)

	public := app.Group("/api/public")
	eventRoute.EventPublicRoutes(public, db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))
	userRoute.UserRoutes(user, db)
	regRoute.RegistrationUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)
	accRoute.AccommodationUserRoutes(user, db)
	notifRoute.NotificationUserRoutes(user, db)

	admin := app.Group("/api/a", authMw.AuthMiddleware(db))
	userRoute.UserAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	regRoute.RegistrationAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	accRoute.AccommodationAdminRoutes(admin, db)
	notifRoute.NotificationAdminRoutes(admin, db)
	commRoute.CommunicationAdminRoutes(admin, db)
	statsRoute.StatsAdminRoutes(admin, db)
}
