package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotLunch     TimeSlot = "lunch"
	SlotAfternoon TimeSlot = "afternoon"
	SlotDinner    TimeSlot = "dinner"
	SlotEvening   TimeSlot = "evening"
)

// TimeSlots is the fixed order in which slots appear inside a day.
var TimeSlots = []TimeSlot{SlotMorning, SlotLunch, SlotAfternoon, SlotDinner, SlotEvening}

// Order returns the position of the slot in the day, or -1 when unknown.
func (s TimeSlot) Order() int {
	for i, ts := range TimeSlots {
		if ts == s {
			return i
		}
	}
	return -1
}

// IsMeal reports whether the slot is one of the fixed dining slots.
func (s TimeSlot) IsMeal() bool {
	return s == SlotLunch || s == SlotDinner
}

// DefaultTime returns the HH:MM used when a slot carries no explicit time.
func (s TimeSlot) DefaultTime() string {
	switch s {
	case SlotMorning:
		return "10:00"
	case SlotLunch:
		return "12:30"
	case SlotAfternoon:
		return "15:00"
	case SlotDinner:
		return "20:00"
	case SlotEvening:
		return "22:30"
	default:
		return "12:00"
	}
}

// ParseClock parses an "HH:MM" string into minutes after midnight.
func ParseClock(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
