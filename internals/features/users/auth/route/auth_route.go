package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "yugamki_backend/internals/features/users/auth/controller"
	"yugamki_backend/internals/middlewares"
	authMw "yugamki_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the token-bound ones.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	public.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	public.Post("/refresh-token", ctrl.RefreshToken)

	private := app.Group("/api/u/auth", authMw.AuthMiddleware(db))
	private.Get("/me", ctrl.Me)
	private.Post("/logout", ctrl.Logout)
	private.Post("/change-password", ctrl.ChangePassword)
}
