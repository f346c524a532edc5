package schedule

import (
	"testing"
	"time"

	"github.com/jarvishq/jarvis/internal/models"
)

func TestWindowForModes(t *testing.T) {
	t.Parallel()

	weekday := models.ScheduleWindow{BedMinutes: 22 * 60, WakeMinutes: 6 * 60}
	weekend := models.ScheduleWindow{BedMinutes: 24*60 - 30, WakeMinutes: 9 * 60}
	daily := models.ScheduleWindow{BedMinutes: 23 * 60, WakeMinutes: 7 * 60}

	s := models.SleepSchedule{
		Mode:     models.ScheduleWeekdays,
		Daily:    daily,
		Weekdays: weekday,
		Weekends: weekend,
	}

	if got := WindowFor(s, time.Saturday); got != weekend {
		t.Errorf("weekdays mode on Saturday = %+v, want weekends window", got)
	}
	if got := WindowFor(s, time.Wednesday); got != weekday {
		t.Errorf("weekdays mode on Wednesday = %+v, want weekdays window", got)
	}

	s.Mode = models.ScheduleDaily
	if got := WindowFor(s, time.Saturday); got != daily {
		t.Errorf("daily mode = %+v, want daily window", got)
	}
}

func TestWindowForCustomMode(t *testing.T) {
	t.Parallel()

	s := models.DefaultSleepSchedule()
	s.Mode = models.ScheduleCustom
	for d := 0; d < 7; d++ {
		s.Custom[d] = models.ScheduleWindow{BedMinutes: 20*60 + d, WakeMinutes: 5*60 + d}
	}

	for d := 0; d < 7; d++ {
		got := WindowFor(s, time.Weekday(d))
		if got.BedMinutes != 20*60+d || got.WakeMinutes != 5*60+d {
			t.Errorf("weekday %d window = %+v, want independent custom window", d, got)
		}
	}
}

func TestWindowForCustomMissingDayFallsBack(t *testing.T) {
	t.Parallel()

	s := models.SleepSchedule{Mode: models.ScheduleCustom}
	if got := WindowFor(s, time.Monday); got != models.DefaultScheduleWindow() {
		t.Errorf("missing custom day = %+v, want default window", got)
	}
}
