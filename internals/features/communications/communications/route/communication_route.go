package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	commController "yugamki_backend/internals/features/communications/communications/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func CommunicationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	emailCtrl := commController.NewEmailController(db)
	waCtrl := commController.NewWhatsAppController(db)

	leadGate := authMw.OnlyRoles(constants.RoleErrorLead("communications"), constants.CommunicationRoles...)
	adminGate := authMw.OnlyRoles(constants.RoleErrorAdmin("message approval"), constants.AdminOnly...)

	admin.Post("/communications/email", leadGate, emailCtrl.SendEmail)
	admin.Get("/communications/email", leadGate, emailCtrl.ListEmails)

	admin.Post("/communications/whatsapp", leadGate, waCtrl.CreateRequest)
	admin.Get("/communications/whatsapp", leadGate, waCtrl.ListRequests)
	admin.Patch("/communications/whatsapp/:id/status", adminGate, waCtrl.Transition)
}
