// Package clock holds the calendar and clock-face conversions shared by
// the state store and the day-grid scheduler.
package clock

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the length of the day grid in minutes
	MinutesPerDay = 24 * 60
	// SlotMinutes is the grid granularity
	SlotMinutes = 15
	// SlotsPerDay is the number of grid slots in one day (96)
	SlotsPerDay = MinutesPerDay / SlotMinutes
)

// DayKey serializes t's local calendar date as YYYY-MM-DD. Day keys
// partition every day-scoped collection and are always derived from
// local wall-clock date components, zero-padded.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDayKey parses a YYYY-MM-DD day key in local time.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// MinutesToClock formats minutes past midnight as HH:MM. 1440 maps to
// "24:00" so an end-of-day block edge still renders.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ClockToMinutes parses an HH:MM clock string into minutes past midnight.
func ClockToMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return h*60 + m, nil
}

// SnapToSlot rounds minutes to the nearest grid slot.
func SnapToSlot(minutes int) int {
	return (minutes + SlotMinutes/2) / SlotMinutes * SlotMinutes
}

// ClampToDay clamps minutes into [0, MinutesPerDay].
func ClampToDay(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > MinutesPerDay {
		return MinutesPerDay
	}
	return minutes
}
