package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	regController "yugamki_backend/internals/features/events/registrations/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func RegistrationUserRoutes(user fiber.Router, db *gorm.DB) {
	regCtrl := regController.NewRegistrationController(db)
	teamCtrl := regController.NewTeamController(db)

	user.Post("/registrations", regCtrl.Create)
	user.Get("/registrations", regCtrl.MyRegistrations)
	user.Delete("/registrations/:id", regCtrl.Cancel)

	user.Post("/teams", teamCtrl.CreateTeam)
	user.Get("/teams/:id", teamCtrl.GetTeam)
	user.Post("/teams/:id/members", teamCtrl.AddMember)
	user.Delete("/teams/:id/members/:userId", teamCtrl.RemoveMember)
}

func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	regCtrl := regController.NewRegistrationController(db)

	admin.Get("/events/:id/registrations",
		authMw.OnlyRoles("", constants.CoordinatorAndAbove...),
		regCtrl.ListEventRegistrations)
}
