// Package booking holds the availability and pricing engine: pure
// functions over already-fetched salon data. Nothing in this package
// touches the database; handlers feed it snapshots and render the
// result.
package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/salonflow/salonflow/models"
)

// GenerateTimeSlots expands a salon's operating hours into 30-minute
// slot labels over the half-open interval [open_hour:00, close_hour:00).
// Minutes of the configured times are ignored; only the hour component
// counts. Returns nil when either time is missing or the window is
// empty.
func GenerateTimeSlots(openTime, closeTime string) []string {
	openHour, ok := hourOf(openTime)
	if !ok {
		return nil
	}
	closeHour, ok := hourOf(closeTime)
	if !ok {
		return nil
	}

	var slots []string
	for hour := openHour; hour < closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

func hourOf(t string) (int, bool) {
	if t == "" {
		return 0, false
	}
	h, _, _ := strings.Cut(t, ":")
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}

// OccupiedSlots projects the slot labels already taken for a stylist on
// a date. Both filters are exact equality; a booking for another
// stylist at the same time does not occupy the slot.
func OccupiedSlots(bookings []models.Booking, date string, stylistID uint) []string {
	var taken []string
	for _, b := range bookings {
		if b.BookingDate == date && b.StylistID == stylistID {
			taken = append(taken, b.BookingTime)
		}
	}
	return taken
}

// HasSlot reports whether slot appears in the list.
func HasSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
