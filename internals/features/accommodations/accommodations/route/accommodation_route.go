package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	accController "yugamki_backend/internals/features/accommodations/accommodations/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func AccommodationUserRoutes(user fiber.Router, db *gorm.DB) {
	accCtrl := accController.NewAccommodationController(db)
	rtCtrl := accController.NewRoomTypeController(db)

	user.Get("/room-types", rtCtrl.ListActive)
	user.Post("/accommodations", accCtrl.Request)
	user.Get("/accommodations", accCtrl.My)
	user.Patch("/accommodations", accCtrl.Update)
	user.Delete("/accommodations/:id", accCtrl.Cancel)
}

func AccommodationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	accCtrl := accController.NewAccommodationController(db)
	rtCtrl := accController.NewRoomTypeController(db)

	adminGate := authMw.OnlyRoles(constants.RoleErrorAdmin("accommodation management"), constants.AdminOnly...)

	admin.Post("/room-types", adminGate, rtCtrl.Create)
	admin.Get("/room-types", adminGate, rtCtrl.ListAll)
	admin.Patch("/room-types/:id", adminGate, rtCtrl.Update)

	admin.Get("/accommodations", adminGate, accCtrl.ListAll)
	admin.Patch("/accommodations/:id/confirm", adminGate, accCtrl.Confirm)
}
