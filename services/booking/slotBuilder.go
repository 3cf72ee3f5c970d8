package booking

import (
	"fmt"
	"sync"
)

// Business hours: first slot at 15:00, last regular slot at 23:30, then midnight.
const (
	openingHour     = 15
	lastHour        = 23
	slotStepMinutes = 30
	midnightSlot    = "12:00 AM"
)

var timeSlots = sync.OnceValue(buildTimeSlots)

// GenerateTimeSlots returns the bookable half-hour slots as 12-hour clock
// labels, "3:00 PM" through "11:30 PM" followed by "12:00 AM". The table is
// built once; callers get their own copy.
func GenerateTimeSlots() []string {
	return append([]string(nil), timeSlots()...)
}

// IsTimeSlot reports whether s is one of the generated slot labels.
func IsTimeSlot(s string) bool {
	for _, slot := range timeSlots() {
		if slot == s {
			return true
		}
	}
	return false
}

func buildTimeSlots() []string {
	var slots []string
	for hour := openingHour; hour <= lastHour; hour++ {
		for minute := 0; minute < 60; minute += slotStepMinutes {
			slots = append(slots, formatSlot(hour, minute))
		}
	}
	return append(slots, midnightSlot)
}

func formatSlot(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, suffix)
}
