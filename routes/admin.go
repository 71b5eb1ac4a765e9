package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/controllers"
	"github.com/salonflow/salonflow/middleware"
)

// SetupAdminRoutes configures the owner dashboard. Reads stay available
// after the trial ends so the owner can still see their data; writes
// are blocked until they upgrade.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireSalon())
	locked := middleware.BlockExpiredTrial()

	admin.Get("/salon", controllers.GetSalon)
	admin.Put("/salon", locked, controllers.UpdateSalon)
	admin.Post("/salon/logo", locked, controllers.UploadSalonLogo)
	admin.Post("/salon/upgrade", controllers.UpgradePlan)

	admin.Get("/services", controllers.GetAllServices)
	admin.Post("/services", locked, controllers.CreateService)
	admin.Put("/services/:id", locked, controllers.UpdateService)
	admin.Delete("/services/:id", locked, controllers.DeleteService)

	admin.Get("/stylists", controllers.GetAllStylists)
	admin.Post("/stylists", locked, controllers.CreateStylist)
	admin.Delete("/stylists/:id", locked, controllers.DeleteStylist)

	admin.Get("/promotions", controllers.GetAllPromotions)
	admin.Post("/promotions", locked, controllers.CreatePromotion)
	admin.Patch("/promotions/:id/toggle", locked, controllers.TogglePromotion)
	admin.Delete("/promotions/:id", locked, controllers.DeletePromotion)

	admin.Get("/clients", controllers.GetAllClients)

	admin.Get("/bookings", controllers.GetAllBookings)
	admin.Patch("/bookings/:id/status", locked, controllers.UpdateBookingStatus)
	admin.Delete("/bookings/:id", locked, controllers.DeleteBooking)
}
