package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/utils"
)

// GetAllStylists returns the salon's stylists
func GetAllStylists(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var stylists []models.Stylist
	if err := db.DB.Where("salon_id = ?", salon.ID).Find(&stylists).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch stylists",
			Error:   err.Error(),
		})
	}
	return c.JSON(stylists)
}

// CreateStylist creates a new stylist
func CreateStylist(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	stylist := new(models.Stylist)
	if err := c.BodyParser(stylist); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if stylist.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Stylist name is required",
		})
	}

	newStylist := models.Stylist{
		SalonID: salon.ID,
		Name:    stylist.Name,
	}
	if err := db.DB.Create(&newStylist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create stylist",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.Status(fiber.StatusCreated).JSON(newStylist)
}

// DeleteStylist deletes a stylist
func DeleteStylist(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var stylist models.Stylist
	if db.DB.Where("salon_id = ?", salon.ID).First(&stylist, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Stylist not found",
		})
	}
	if err := db.DB.Delete(&stylist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete stylist",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.SendStatus(fiber.StatusNoContent)
}
