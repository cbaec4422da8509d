package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	eventController "yugamki_backend/internals/features/events/events/controller"
	authMw "yugamki_backend/internals/middlewares/auth"
)

// Public catalog, no auth.
func EventPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	public.Get("/events", ctrl.ListPublishedEvents)
	public.Get("/events/:id", ctrl.GetPublishedEvent)
}

// Management surface. CreateEvent and UpdateStatus carry their own
// shape-dependent role checks; the group gate keeps participants out.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	gate := authMw.OnlyRoles(constants.RoleErrorLead("event management"), constants.CoordinatorAndAbove...)

	admin.Get("/events", gate, ctrl.ListAllEvents)
	admin.Post("/events", gate, ctrl.CreateEvent)
	admin.Patch("/events/:id", gate, ctrl.UpdateEvent)
	admin.Patch("/events/:id/status", gate, ctrl.UpdateStatus)
	admin.Delete("/events/:id", gate, ctrl.DeleteEvent)
}
