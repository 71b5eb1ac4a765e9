package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/salonflow/salonflow/booking"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/models"
	"github.com/salonflow/salonflow/utils"
)

// StartCronJobs initializes the scheduler: booking reminders every
// minute, trial-expiry warnings once a day.
func StartCronJobs() {
	c := cron.New()

	if _, err := c.AddFunc("* * * * *", sendBookingReminders); err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}
	if _, err := c.AddFunc("0 9 * * *", sendTrialWarnings); err != nil {
		log.Fatalf("Failed to add trial warning cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendBookingReminders emails clients whose booking starts in roughly
// one hour.
func sendBookingReminders() {
	now := time.Now()
	today := now.Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.Preload("Client").Preload("Service").Preload("Stylist").
		Where("booking_date = ? AND status IN ?", today,
			[]models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, bk := range bookings {
		start, err := utils.SlotTime(bk.BookingDate, bk.BookingTime)
		if err != nil || start.Before(startWindow) || start.After(endWindow) {
			continue
		}
		if bk.Client.Email == "" {
			continue
		}
		if err := sendReminderEmail(&bk); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", bk.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", bk.ID, bk.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(bk *models.Booking) error {
	subject := fmt.Sprintf("Reminder: your %s appointment", bk.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment scheduled in one hour.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Stylist:</strong> %s</li>
			<li><strong>Date:</strong> %s at %s</li>
			<li><strong>Price:</strong> $%.2f</li>
		</ul>
		<p>If you need to reschedule or cancel, contact the salon as soon as possible.</p>
	`, bk.Client.Name, bk.Service.Name, bk.Stylist.Name,
		bk.BookingDate, bk.BookingTime, bk.FinalPrice)

	return utils.SendEmail(bk.Client.Email, subject, body)
}

// sendTrialWarnings emails owners of free salons whose trial window is
// about to close.
func sendTrialWarnings() {
	var salons []models.Salon
	err := db.DB.Preload("Owner").
		Where("plan = ?", models.PlanFree).
		Find(&salons).Error
	if err != nil {
		log.Printf("Error fetching salons for trial warnings: %v", err)
		return
	}

	now := time.Now()
	for _, salon := range salons {
		trial := booking.CheckTrial(salon.Plan, salon.CreatedAt, now)
		if trial.Expired || trial.DaysLeft > 3 {
			continue
		}
		if salon.Owner.Email == "" {
			continue
		}
		subject := "Your SalonFlow trial is ending soon"
		body := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your free trial for <strong>%s</strong> ends in %d day(s). After
			that, the dashboard and your public booking page will be locked.</p>
			<p>Upgrade to the Pro plan to keep taking bookings.</p>
		`, salon.Owner.Name, salon.Name, trial.DaysLeft)
		if err := utils.SendEmail(salon.Owner.Email, subject, body); err != nil {
			log.Printf("Failed to send trial warning for salon %d: %v", salon.ID, err)
		}
	}
}
