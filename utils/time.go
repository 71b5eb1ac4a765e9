package utils

import "time"

// SlotTime combines a booking's date ("2006-01-02") and slot label
// ("15:04") into a single timestamp, interpreted in the server's
// location.
func SlotTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+slot, time.Local)
}
