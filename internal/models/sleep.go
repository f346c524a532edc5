package models

import "time"

// SleepEntry is one logged night of sleep. Immutable after creation.
type SleepEntry struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Day             string    `json:"day"`
	DurationMinutes int       `json:"duration_minutes"`
	Quality         int       `json:"quality"`
	StartMinutes    *int      `json:"start_minutes,omitempty"`
	EndMinutes      *int      `json:"end_minutes,omitempty"`
	RecoveryScore   *int      `json:"recovery_score,omitempty"`
	Dreams          string    `json:"dreams,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// ScheduleMode selects how the recurring bedtime/wake window is resolved
// for a given weekday.
type ScheduleMode string

const (
	ScheduleDaily    ScheduleMode = "daily"
	ScheduleWeekdays ScheduleMode = "weekdays"
	ScheduleWeekends ScheduleMode = "weekends"
	ScheduleCustom   ScheduleMode = "custom"
)

// ValidScheduleMode reports whether m is one of the known modes
func ValidScheduleMode(m ScheduleMode) bool {
	switch m {
	case ScheduleDaily, ScheduleWeekdays, ScheduleWeekends, ScheduleCustom:
		return true
	}
	return false
}

// ScheduleWindow is a bedtime/wake pair, both as minutes past midnight.
type ScheduleWindow struct {
	BedMinutes  int `json:"bed_minutes"`
	WakeMinutes int `json:"wake_minutes"`
}

// IsZero reports whether the window is unset.
func (w ScheduleWindow) IsZero() bool {
	return w.BedMinutes == 0 && w.WakeMinutes == 0
}

// SleepSchedule is the singleton recurring sleep window configuration.
// Custom holds one window per weekday keyed 0 (Sunday) through 6
// (Saturday); every weekday must resolve to exactly one window under
// any mode.
type SleepSchedule struct {
	Mode     ScheduleMode           `json:"mode"`
	Daily    ScheduleWindow         `json:"daily"`
	Weekdays ScheduleWindow         `json:"weekdays"`
	Weekends ScheduleWindow         `json:"weekends"`
	Custom   map[int]ScheduleWindow `json:"custom"`
}

// DefaultScheduleWindow is the 23:00 bed / 07:00 wake fallback window.
func DefaultScheduleWindow() ScheduleWindow {
	return ScheduleWindow{BedMinutes: 23 * 60, WakeMinutes: 7 * 60}
}

// DefaultSleepSchedule returns a daily-mode schedule with the fallback
// window filled in for every slot.
func DefaultSleepSchedule() SleepSchedule {
	w := DefaultScheduleWindow()
	custom := make(map[int]ScheduleWindow, 7)
	for d := 0; d < 7; d++ {
		custom[d] = w
	}
	return SleepSchedule{
		Mode:     ScheduleDaily,
		Daily:    w,
		Weekdays: w,
		Weekends: w,
		Custom:   custom,
	}
}
