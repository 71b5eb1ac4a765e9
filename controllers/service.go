package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/utils"
)

// GetAllServices returns the salon's services
func GetAllServices(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var services []models.Service
	if err := db.DB.Where("salon_id = ?", salon.ID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// CreateService creates a new service
func CreateService(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if service.Name == "" || service.Price < 0 || service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service needs a name, a non-negative price and a positive duration",
		})
	}

	newService := models.Service{
		SalonID:     salon.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		Duration:    service.Duration,
	}
	if err := db.DB.Create(&newService).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.Status(fiber.StatusCreated).JSON(newService)
}

// UpdateService updates a service
func UpdateService(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var existing models.Service
	if db.DB.Where("salon_id = ?", salon.ID).First(&existing, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	input := new(models.Service)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Duration = input.Duration
	if err := db.DB.Save(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.JSON(existing)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var service models.Service
	if db.DB.Where("salon_id = ?", salon.ID).First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.SendStatus(fiber.StatusNoContent)
}
