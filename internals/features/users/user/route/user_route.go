package route

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"yugamki_backend/internals/constants"
	userController "yugamki_backend/internals/features/users/user/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	user.Patch("/profile", ctrl.UpdateProfile)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	admin.Get("/users",
		authMw.OnlyRoles("", constants.CoordinatorAndAbove...),
		ctrl.ListUsers)
	admin.Get("/users/:id",
		authMw.OnlyRoles("", constants.CoordinatorAndAbove...),
		ctrl.GetUser)
	admin.Patch("/users/:id/role",
		authMw.OnlyRoles(constants.RoleErrorAdmin("user role management"), constants.AdminOnly...),
		ctrl.ChangeRole)
	admin.Patch("/users/:id/deactivate",
		authMw.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...),
		ctrl.Deactivate)
}
