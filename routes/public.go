package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/controllers"
)

// SetupPublicRoutes configures the client-facing booking surface:
// the salon profile behind the booking link, availability, and the
// stepwise booking flow.
func SetupPublicRoutes(app *fiber.App) {
	salons := app.Group("/salons")

	salons.Get("/:id", controllers.GetPublicSalon)
	salons.Get("/:id/availability", controllers.GetAvailability)

	salons.Post("/:id/flow", controllers.StartBookingFlow)
	salons.Post("/:id/flow/:sid/service", controllers.FlowSelectService)
	salons.Post("/:id/flow/:sid/schedule", controllers.FlowSchedule)
	salons.Post("/:id/flow/:sid/confirm", controllers.FlowConfirm)
}
