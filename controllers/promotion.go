package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/utils"
)

// GetAllPromotions returns the salon's promotions, active or not.
func GetAllPromotions(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var promotions []models.Promotion
	if err := db.DB.Where("salon_id = ?", salon.ID).Find(&promotions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch promotions",
			Error:   err.Error(),
		})
	}
	return c.JSON(promotions)
}

// CreatePromotion creates a promotion. Discounts outside [0,100] are
// rejected here so the pricing formula never has to clamp.
func CreatePromotion(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	promo := new(models.Promotion)
	if err := c.BodyParser(promo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	if promo.Name == "" || promo.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Promotion needs a name and a target",
		})
	}
	if promo.Discount < 0 || promo.Discount > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Discount must be between 0 and 100",
		})
	}
	switch promo.Kind {
	case models.PromotionService:
		// Target is a service name; must exist on this salon.
		var count int64
		db.DB.Model(&models.Service{}).
			Where("salon_id = ? AND name = ?", salon.ID, promo.Target).
			Count(&count)
		if count == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Target service does not exist",
			})
		}
	case models.PromotionDay:
		day, err := strconv.Atoi(promo.Target)
		if err != nil || day < 0 || day > 6 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Day target must be 0 (Sunday) through 6 (Saturday)",
			})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Promotion kind must be \"service\" or \"day\"",
		})
	}

	newPromo := models.Promotion{
		SalonID:  salon.ID,
		Name:     promo.Name,
		Kind:     promo.Kind,
		Target:   promo.Target,
		Discount: promo.Discount,
		Active:   true,
	}
	if err := db.DB.Create(&newPromo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create promotion",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.Status(fiber.StatusCreated).JSON(newPromo)
}

// TogglePromotion flips a promotion's active flag.
func TogglePromotion(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var promo models.Promotion
	if db.DB.Where("salon_id = ?", salon.ID).First(&promo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Promotion not found",
		})
	}

	if err := db.DB.Model(&promo).Update("active", !promo.Active).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update promotion",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.JSON(promo)
}

// DeletePromotion deletes a promotion
func DeletePromotion(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var promo models.Promotion
	if db.DB.Where("salon_id = ?", salon.ID).First(&promo, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Promotion not found",
		})
	}
	if err := db.DB.Delete(&promo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete promotion",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.SendStatus(fiber.StatusNoContent)
}
