package booking

import (
	"regexp"
	"testing"

	"github.com/salonflow/salonflow/models"
)

func TestGenerateTimeSlots(t *testing.T) {
	cases := []struct {
		name  string
		open  string
		close string
		count int
		first string
		last  string
	}{
		{"full day", "09:00", "18:00", 18, "09:00", "17:30"},
		{"single hour", "10:00", "11:00", 2, "10:00", "10:30"},
		{"minutes truncated", "09:45", "12:15", 6, "09:00", "11:30"},
		{"open equals close", "10:00", "10:00", 0, "", ""},
		{"open after close", "18:00", "09:00", 0, "", ""},
		{"missing open", "", "18:00", 0, "", ""},
		{"missing close", "09:00", "", 0, "", ""},
		{"garbage open", "abc", "18:00", 0, "", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateTimeSlots(tt.open, tt.close)
			if len(slots) != tt.count {
				t.Fatalf("got %d slots, want %d: %v", len(slots), tt.count, slots)
			}
			if tt.count == 0 {
				return
			}
			if slots[0] != tt.first || slots[len(slots)-1] != tt.last {
				t.Fatalf("got range %s..%s, want %s..%s", slots[0], slots[len(slots)-1], tt.first, tt.last)
			}
		})
	}
}

func TestGenerateTimeSlotsShape(t *testing.T) {
	slotPattern := regexp.MustCompile(`^\d{2}:(00|30)$`)
	slots := GenerateTimeSlots("08:00", "20:00")

	if want := 2 * (20 - 8); len(slots) != want {
		t.Fatalf("got %d slots, want %d", len(slots), want)
	}
	for i, s := range slots {
		if !slotPattern.MatchString(s) {
			t.Errorf("slot %q does not match HH:MM with minutes in {00,30}", s)
		}
		if i > 0 && slots[i-1] >= s {
			t.Errorf("slots not strictly increasing: %q >= %q", slots[i-1], s)
		}
	}
}

func TestOccupiedSlots(t *testing.T) {
	bookings := []models.Booking{
		{StylistID: 1, BookingDate: "2024-06-10", BookingTime: "09:00"},
		{StylistID: 1, BookingDate: "2024-06-10", BookingTime: "09:30"},
		{StylistID: 2, BookingDate: "2024-06-10", BookingTime: "10:00"}, // other stylist
		{StylistID: 1, BookingDate: "2024-06-11", BookingTime: "10:30"}, // other date
	}

	taken := OccupiedSlots(bookings, "2024-06-10", 1)
	if len(taken) != 2 {
		t.Fatalf("got %v, want exactly the two stylist-1 slots on 2024-06-10", taken)
	}
	if !HasSlot(taken, "09:00") || !HasSlot(taken, "09:30") {
		t.Fatalf("got %v, want 09:00 and 09:30", taken)
	}
	if HasSlot(taken, "10:00") || HasSlot(taken, "10:30") {
		t.Fatalf("bookings for another stylist or date leaked into %v", taken)
	}
}

// A booked slot is disabled, not removed: the generated sequence still
// contains it, only the occupied projection marks it.
func TestBookingScenario(t *testing.T) {
	service := models.Service{Name: "Haircut", Price: 50}
	bookings := []models.Booking{
		{StylistID: 1, BookingDate: "2024-06-10", BookingTime: "09:00"},
		{StylistID: 1, BookingDate: "2024-06-10", BookingTime: "09:30"},
	}

	slots := GenerateTimeSlots("09:00", "18:00")
	taken := OccupiedSlots(bookings, "2024-06-10", 1)

	if !HasSlot(slots, "09:00") || !HasSlot(slots, "09:30") {
		t.Fatal("generated slots must still include the booked times")
	}
	if !HasSlot(taken, "09:00") || !HasSlot(taken, "09:30") {
		t.Fatalf("occupied = %v, want 09:00 and 09:30", taken)
	}

	if price := FinalPrice(service, SelectPromotion(nil, service, "2024-06-10")); price != 50 {
		t.Fatalf("final price = %v, want 50 with no promotions", price)
	}
}
