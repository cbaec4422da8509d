package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	notifController "yugamki_backend/internals/features/home/notifications/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationController(db)

	user.Get("/notifications", ctrl.MyNotifications)
	user.Get("/notifications/unread-count", ctrl.UnreadCount)
	user.Patch("/notifications/read-all", ctrl.MarkAllRead)
	user.Patch("/notifications/:id/read", ctrl.MarkRead)
}

func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationController(db)

	admin.Post("/notifications",
		authMw.OnlyRoles(constants.RoleErrorLead("notifications"), constants.CommunicationRoles...),
		ctrl.Create)
}
