package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/salonflow/salonflow/booking"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/redis"
	"github.com/salonflow/salonflow/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const flowTTL = 30 * time.Minute

var errSlotTaken = errors.New("slot is already booked")

// ---- admin ----

// GetAllBookings returns the salon's bookings, soonest first.
func GetAllBookings(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)

	var bookings []models.Booking
	if err := db.DB.
		Preload("Client").Preload("Service").Preload("Stylist").Preload("Promotion").
		Where("salon_id = ?", salon.ID).
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus moves a booking through its lifecycle
// (pending → confirmed → completed, canceled from either).
func UpdateBookingStatus(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	type statusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	var bk models.Booking
	if db.DB.Where("salon_id = ?", salon.ID).First(&bk, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := bk.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}
	return c.JSON(bk)
}

// DeleteBooking deletes a booking
func DeleteBooking(c *fiber.Ctx) error {
	salon := c.Locals("salon").(*models.Salon)
	id := c.Params("id")

	var bk models.Booking
	if db.DB.Where("salon_id = ?", salon.ID).First(&bk, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if err := db.DB.Delete(&bk).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete booking",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ---- public availability ----

// GetAvailability returns the generated slot labels for a salon plus
// the ones already taken for the requested stylist and date. When a
// service is named the response also previews promotions and the final
// price. Occupied slots are returned, not removed; the client disables
// them.
func GetAvailability(c *fiber.Ctx) error {
	var salon models.Salon
	if err := db.DB.Preload("Promotions", "active = ?", true).
		First(&salon, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Salon not found",
			Error:   err.Error(),
		})
	}

	date := c.Query("date")
	stylistID := uint(c.QueryInt("stylist_id"))

	slots := booking.GenerateTimeSlots(salon.OpenTime, salon.CloseTime)

	var taken []string
	if date != "" && stylistID != 0 {
		var bookings []models.Booking
		if err := db.DB.Where("salon_id = ? AND booking_date = ?", salon.ID, date).
			Find(&bookings).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch bookings",
				Error:   err.Error(),
			})
		}
		taken = booking.OccupiedSlots(bookings, date, stylistID)
	}

	resp := fiber.Map{
		"slots":  slots,
		"booked": taken,
	}

	if serviceID := c.QueryInt("service_id"); serviceID != 0 {
		var service models.Service
		if err := db.DB.Where("salon_id = ?", salon.ID).
			First(&service, serviceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Service not found",
			})
		}
		applied := booking.SelectPromotion(salon.Promotions, service, date)
		resp["promotions"] = booking.MatchingPromotions(salon.Promotions, service, date)
		resp["applied_promotion"] = applied
		resp["final_price"] = booking.FinalPrice(service, applied)
	}

	return c.JSON(resp)
}

// ---- public booking flow ----

func flowKey(id string) string {
	return "flow:" + id
}

func saveFlow(f booking.Flow) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return redis.Client.Set(redis.Ctx, flowKey(f.ID), payload, flowTTL).Err()
}

func loadFlow(id string) (booking.Flow, error) {
	var f booking.Flow
	payload, err := redis.Client.Get(redis.Ctx, flowKey(id)).Bytes()
	if err != nil {
		return f, err
	}
	err = json.Unmarshal(payload, &f)
	return f, err
}

// StartBookingFlow opens a booking session for a salon. An expired
// trial produces a session already in the blocked state, mirroring the
// locked booking page.
func StartBookingFlow(c *fiber.Ctx) error {
	var salon models.Salon
	if err := db.DB.First(&salon, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Salon not found",
			Error:   err.Error(),
		})
	}

	trial := booking.CheckTrial(salon.Plan, salon.CreatedAt, time.Now())
	flow := booking.NewFlow(uuid.NewString(), salon.ID, trial.Expired)
	if err := saveFlow(flow); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to start booking session",
			Error:   err.Error(),
		})
	}

	if flow.Step == booking.StepBlocked {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"flow":  flow,
			"error": "This salon is not accepting online bookings right now",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"flow": flow})
}

// FlowSelectService records the chosen service and previews the
// promotions the client is eligible for. All matching promotions are
// shown; only the winning one is ever charged.
func FlowSelectService(c *fiber.Ctx) error {
	flow, err := loadFlow(c.Params("sid"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking session not found or expired",
		})
	}

	type serviceInput struct {
		ServiceID uint `json:"service_id"`
	}
	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	var service models.Service
	if db.DB.Where("salon_id = ?", flow.SalonID).First(&service, input.ServiceID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	next, err := flow.SelectService(service.ID)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := saveFlow(next); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save booking session",
			Error:   err.Error(),
		})
	}

	promotions := activePromotions(flow.SalonID)
	applied := booking.SelectPromotion(promotions, service, next.Date)
	return c.JSON(fiber.Map{
		"flow":              next,
		"promotions":        booking.MatchingPromotions(promotions, service, next.Date),
		"applied_promotion": applied,
		"final_price":       booking.FinalPrice(service, applied),
	})
}

// FlowSchedule records stylist, date and slot. The occupancy check here
// is advisory; the authoritative check happens inside the confirm
// transaction.
func FlowSchedule(c *fiber.Ctx) error {
	flow, err := loadFlow(c.Params("sid"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking session not found or expired",
		})
	}

	type scheduleInput struct {
		StylistID uint   `json:"stylist_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	input := new(scheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	var salon models.Salon
	if err := db.DB.First(&salon, flow.SalonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Salon not found",
		})
	}
	var stylist models.Stylist
	if db.DB.Where("salon_id = ?", flow.SalonID).First(&stylist, input.StylistID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Stylist not found",
		})
	}

	slots := booking.GenerateTimeSlots(salon.OpenTime, salon.CloseTime)
	if !booking.HasSlot(slots, input.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Time is outside the salon's operating hours",
		})
	}

	var bookings []models.Booking
	db.DB.Where("salon_id = ? AND booking_date = ?", flow.SalonID, input.Date).Find(&bookings)
	taken := booking.OccupiedSlots(bookings, input.Date, input.StylistID)
	if booking.HasSlot(taken, input.Time) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":  "That time was just taken, please pick another",
			"slots":  slots,
			"booked": taken,
		})
	}

	next, err := flow.Schedule(input.StylistID, input.Date, input.Time)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := saveFlow(next); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save booking session",
			Error:   err.Error(),
		})
	}

	var service models.Service
	db.DB.First(&service, next.ServiceID)
	promotions := activePromotions(flow.SalonID)
	applied := booking.SelectPromotion(promotions, service, next.Date)
	return c.JSON(fiber.Map{
		"flow":              next,
		"promotions":        booking.MatchingPromotions(promotions, service, next.Date),
		"applied_promotion": applied,
		"final_price":       booking.FinalPrice(service, applied),
	})
}

// FlowConfirm finishes the session: upserts the client record, then
// inserts the booking inside a transaction that locks conflicting
// rows. A booking failure after the client upsert leaves the client
// row in place on purpose.
func FlowConfirm(c *fiber.Ctx) error {
	flow, err := loadFlow(c.Params("sid"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking session not found or expired",
		})
	}

	type confirmInput struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
		Notes string `json:"notes"`
	}
	input := new(confirmInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if input.Name == "" || input.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and phone are required",
		})
	}

	next, err := flow.Confirm()
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, next.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	// The price is recomputed server-side at confirmation time; the
	// previews shown earlier in the flow are not trusted.
	promotions := activePromotions(next.SalonID)
	applied := booking.SelectPromotion(promotions, service, next.Date)
	finalPrice := booking.FinalPrice(service, applied)

	// Upsert the client on (salon, phone). Deliberately outside the
	// booking transaction: if the insert below fails the client row
	// stays.
	client := models.Client{
		SalonID:   next.SalonID,
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		LastVisit: time.Now(),
	}
	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "salon_id"}, {Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "last_visit", "updated_at"}),
	}).Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save client",
			Error:   err.Error(),
		})
	}

	newBooking := models.Booking{
		SalonID:     next.SalonID,
		ClientID:    client.ID,
		ServiceID:   service.ID,
		StylistID:   next.StylistID,
		BookingDate: next.Date,
		BookingTime: next.Time,
		FinalPrice:  finalPrice,
		Notes:       input.Notes,
	}
	if applied != nil {
		newBooking.PromotionID = &applied.ID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Lock any conflicting booking for the same (stylist, date,
		// time) so two concurrent confirms cannot both pass the check.
		var conflict models.Booking
		if err := tx.Raw(`
			SELECT *
			FROM bookings
			WHERE stylist_id = ? AND booking_date = ? AND booking_time = ?
				AND deleted_at IS NULL
			FOR UPDATE
			LIMIT 1
		`, next.StylistID, next.Date, next.Time).Scan(&conflict).Error; err != nil {
			return err
		}
		if conflict.ID != 0 {
			return errSlotTaken
		}
		return tx.Create(&newBooking).Error
	})
	if errors.Is(err, errSlotTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "That time was just taken, please pick another",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Session state is discarded once the booking exists.
	redis.Client.Del(redis.Ctx, flowKey(flow.ID))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"flow":              next,
		"booking":           newBooking,
		"applied_promotion": applied,
		"final_price":       finalPrice,
	})
}

func activePromotions(salonID uint) []models.Promotion {
	var promotions []models.Promotion
	db.DB.Where("salon_id = ? AND active = ?", salonID, true).Find(&promotions)
	return promotions
}
