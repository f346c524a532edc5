package schedule

import (
	"time"

	"github.com/jarvishq/jarvis/internal/models"
)

// WindowFor resolves the single governing bedtime/wake window for a
// weekday under the schedule's mode. Exactly one window applies for any
// weekday under any mode.
func WindowFor(s models.SleepSchedule, weekday time.Weekday) models.ScheduleWindow {
	switch s.Mode {
	case models.ScheduleCustom:
		if w, ok := s.Custom[int(weekday)]; ok {
			return w
		}
		return models.DefaultScheduleWindow()
	case models.ScheduleWeekdays, models.ScheduleWeekends:
		if weekday == time.Saturday || weekday == time.Sunday {
			return s.Weekends
		}
		return s.Weekdays
	default:
		return s.Daily
	}
}
