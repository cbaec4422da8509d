package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	statsController "yugamki_backend/internals/features/home/stats/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func StatsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)

	admin.Get("/stats/dashboard",
		authMw.OnlyRoles(constants.RoleErrorAdmin("the dashboard"), constants.AdminOnly...),
		ctrl.Dashboard)
}
