package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	paymentController "yugamki_backend/internals/features/finance/payments/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

// Gateway callback, mounted outside the authenticated groups.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewWebhookController(db)
	api.Post("/payments/webhook", ctrl.HandleNotification)
}

func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	user.Post("/payments/orders", ctrl.CreateOrder)
	user.Get("/payments", ctrl.MyPayments)
	user.Post("/payments/pass", ctrl.BuyPass)
	user.Get("/payments/pass", ctrl.MyPass)
}

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	admin.Get("/payments",
		authMw.OnlyRoles(constants.RoleErrorAdmin("payment records"), constants.AdminOnly...),
		ctrl.ListPayments)
	admin.Post("/payments/:id/refund",
		authMw.OnlyRoles(constants.RoleErrorAdmin("refunds"), constants.AdminOnly...),
		ctrl.Refund)
}
