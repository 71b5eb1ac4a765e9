package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/booking"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
)

// RequireSalon resolves the authenticated owner's salon and stores it
// in locals. Must run after Protected().
func RequireSalon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var salon models.Salon
		if err := db.DB.Where("owner_id = ?", userID).First(&salon).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No salon found for this account",
			})
		}

		c.Locals("salon", &salon)
		return c.Next()
	}
}

// BlockExpiredTrial rejects admin mutations once a free salon's trial
// window has closed. The expired state is recomputed on every request;
// nothing is persisted. Must run after RequireSalon().
func BlockExpiredTrial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		salon := c.Locals("salon").(*models.Salon)
		trial := booking.CheckTrial(salon.Plan, salon.CreatedAt, time.Now())
		if trial.Expired {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error": "Free trial has ended. Upgrade to the Pro plan to continue.",
			})
		}
		return c.Next()
	}
}
