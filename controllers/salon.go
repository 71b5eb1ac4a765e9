package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/salonflow/salonflow/booking"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/redis"
	"github.com/salonflow/salonflow/utils"
)

const salonCacheTTL = 5 * time.Minute

func salonCacheKey(id string) string {
	return "salon:" + id
}

// GetSalon returns the owner's salon with everything the admin
// dashboard shows, plus the current trial state.
func GetSalon(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var full models.Salon
	if err := db.DB.
		Preload("Services").
		Preload("Stylists").
		Preload("Promotions").
		Preload("Clients").
		Preload("Bookings.Client").
		Preload("Bookings.Service").
		Preload("Bookings.Stylist").
		First(&full, salon.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load salon",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"salon": full,
		"trial": booking.CheckTrial(full.Plan, full.CreatedAt, time.Now()),
	})
}

// UpdateSalonInput covers the settings tab fields.
type UpdateSalonInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
}

// UpdateSalon saves the settings tab and drops the public profile
// cache.
func UpdateSalon(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	input := new(UpdateSalonInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"address":     input.Address,
		"phone":       input.Phone,
		"open_time":   input.OpenTime,
		"close_time":  input.CloseTime,
	}
	if err := db.DB.Model(salon).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update salon",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.JSON(salon)
}

// UploadSalonLogo replaces the salon logo.
func UploadSalonLogo(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing logo file",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read logo file",
		})
	}
	defer file.Close()

	url, err := utils.UploadLogo(file, fmt.Sprintf("salon-%d", salon.ID))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Logo upload failed",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(salon).Update("logo_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save logo URL",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.JSON(fiber.Map{"logo_url": url})
}

// UpgradePlan flips a free salon to the pro plan. Payment collection
// happens out of band; this endpoint only records the tier.
func UpgradePlan(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	if salon.Plan == models.PlanPro {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Salon is already on the Pro plan",
		})
	}

	if err := db.DB.Model(salon).Update("plan", models.PlanPro).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upgrade plan",
			Error:   err.Error(),
		})
	}

	invalidateSalonCache(salon.ID)
	return c.JSON(fiber.Map{"plan": models.PlanPro})
}

// publicSalon is what the booking page needs: profile, catalog and
// active promotions. Bookings and clients stay private.
type publicSalon struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Address     string             `json:"address"`
	OpenTime    string             `json:"open_time"`
	CloseTime   string             `json:"close_time"`
	LogoURL     string             `json:"logo_url"`
	Services    []models.Service   `json:"services"`
	Stylists    []models.Stylist   `json:"stylists"`
	Promotions  []models.Promotion `json:"promotions"`
}

// GetPublicSalon serves the public booking page, cache-aside through
// Redis.
func GetPublicSalon(c *fiber.Ctx) error {
	id := c.Params("id")

	if cached, err := redis.Client.Get(redis.Ctx, salonCacheKey(id)).Result(); err == nil {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var salon models.Salon
	if err := db.DB.
		Preload("Services").
		Preload("Stylists").
		Preload("Promotions", "active = ?", true).
		First(&salon, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Salon not found",
			Error:   err.Error(),
		})
	}

	profile := publicSalon{
		ID:          salon.ID,
		Name:        salon.Name,
		Description: salon.Description,
		Address:     salon.Address,
		OpenTime:    salon.OpenTime,
		CloseTime:   salon.CloseTime,
		LogoURL:     salon.LogoURL,
		Services:    salon.Services,
		Stylists:    salon.Stylists,
		Promotions:  salon.Promotions,
	}

	if payload, err := json.Marshal(profile); err == nil {
		if err := redis.Client.Set(redis.Ctx, salonCacheKey(id), payload, salonCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache salon %s: %v", id, err)
		}
	}

	return c.JSON(profile)
}

func invalidateSalonCache(salonID uint) {
	if err := redis.Client.Del(redis.Ctx, salonCacheKey(fmt.Sprint(salonID))).Err(); err != nil {
		log.Printf("Failed to invalidate salon cache %d: %v", salonID, err)
	}
}
