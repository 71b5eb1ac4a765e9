package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/utils"
)

// GetAllClients returns the salon's clients, most recent visit first.
func GetAllClients(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var clients []models.Client
	if err := db.DB.Where("salon_id = ?", salon.ID).
		Order("last_visit DESC").
		Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}
	return c.JSON(clients)
}
