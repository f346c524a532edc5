package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/state"
	"github.com/jarvishq/jarvis/internal/validation"
)

// NewSleepCmd creates the sleep command with log and schedule
// subcommands.
func NewSleepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Track sleep and manage the recurring sleep schedule",
	}
	cmd.AddCommand(newSleepLogCmd())
	cmd.AddCommand(newSleepScheduleCmd())
	return cmd
}

func newSleepLogCmd() *cobra.Command {
	var (
		day      string
		duration int
		quality  int
		bedtime  string
		waketime string
		recovery int
		dreams   string
		notes    string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record one night of sleep",
		RunE: func(cmd *cobra.Command, args []string) error {
			if quality < 1 || quality > 10 {
				return fmt.Errorf("--quality must be between 1 and 10")
			}

			entry := state.LogSleep{
				DurationMinutes: duration,
				Quality:         quality,
				Dreams:          dreams,
				Notes:           notes,
			}
			if bedtime != "" {
				m, err := clock.ClockToMinutes(bedtime)
				if err != nil {
					return fmt.Errorf("invalid --bed %q: %w", bedtime, err)
				}
				entry.StartMinutes = &m
			}
			if waketime != "" {
				m, err := clock.ClockToMinutes(waketime)
				if err != nil {
					return fmt.Errorf("invalid --wake %q: %w", waketime, err)
				}
				entry.EndMinutes = &m
			}
			// Derive duration from the bed/wake pair when not given,
			// allowing for windows that cross midnight.
			if entry.DurationMinutes <= 0 && entry.StartMinutes != nil && entry.EndMinutes != nil {
				d := *entry.EndMinutes - *entry.StartMinutes
				if d <= 0 {
					d += clock.MinutesPerDay
				}
				entry.DurationMinutes = d
			}
			if entry.DurationMinutes <= 0 {
				return fmt.Errorf("--duration is required when --bed/--wake are not both given")
			}
			if recovery > 0 {
				if recovery > 100 {
					return fmt.Errorf("--recovery must be between 1 and 100")
				}
				entry.RecoveryScore = &recovery
			}

			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			entry.Day = dayKey

			return withStore(func(store *state.Store) error {
				id := store.LogSleep(entry)
				fmt.Printf("Logged %dh%02dm of sleep for %s (%s)\n",
					entry.DurationMinutes/60, entry.DurationMinutes%60, dayKey, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to log for (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Sleep duration in minutes")
	cmd.Flags().IntVar(&quality, "quality", 0, "Sleep quality 1-10 (required)")
	cmd.Flags().StringVar(&bedtime, "bed", "", "Bedtime (HH:MM)")
	cmd.Flags().StringVar(&waketime, "wake", "", "Wake time (HH:MM)")
	cmd.Flags().IntVar(&recovery, "recovery", 0, "Recovery score 1-100")
	cmd.Flags().StringVar(&dreams, "dreams", "", "Dream notes")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("quality")
	return cmd
}

func newSleepScheduleCmd() *cobra.Command {
	var (
		mode     string
		bedtime  string
		waketime string
		weekday  int
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Update the recurring sleep schedule",
		Long: "Set the schedule mode and bedtime/wake window. In custom mode,\n" +
			"--weekday selects which day (0=Sunday .. 6=Saturday) the window applies to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Validate.Var(mode, "schedule_mode"); err != nil {
				return fmt.Errorf("unknown mode %q (daily, weekdays, weekends, custom)", mode)
			}
			m := models.ScheduleMode(mode)

			window := models.DefaultScheduleWindow()
			if bedtime != "" {
				v, err := clock.ClockToMinutes(bedtime)
				if err != nil {
					return fmt.Errorf("invalid --bed %q: %w", bedtime, err)
				}
				window.BedMinutes = v
			}
			if waketime != "" {
				v, err := clock.ClockToMinutes(waketime)
				if err != nil {
					return fmt.Errorf("invalid --wake %q: %w", waketime, err)
				}
				window.WakeMinutes = v
			}
			if m == models.ScheduleCustom && (weekday < 0 || weekday > 6) {
				return fmt.Errorf("--weekday must be between 0 (Sunday) and 6 (Saturday)")
			}

			return withStore(func(store *state.Store) error {
				sched := store.State().SleepSchedule
				sched.Mode = m
				switch m {
				case models.ScheduleDaily:
					sched.Daily = window
				case models.ScheduleWeekdays, models.ScheduleWeekends:
					if bedtime != "" || waketime != "" {
						if m == models.ScheduleWeekdays {
							sched.Weekdays = window
						} else {
							sched.Weekends = window
						}
					}
				case models.ScheduleCustom:
					if sched.Custom == nil {
						sched.Custom = make(map[int]models.ScheduleWindow, 7)
					}
					sched.Custom[weekday] = window
				}
				store.SetSleepSchedule(sched)
				fmt.Printf("Sleep schedule updated (%s)\n", m)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "daily", "Mode: daily, weekdays, weekends, custom")
	cmd.Flags().StringVar(&bedtime, "bed", "", "Bedtime (HH:MM)")
	cmd.Flags().StringVar(&waketime, "wake", "", "Wake time (HH:MM)")
	cmd.Flags().IntVar(&weekday, "weekday", 0, "Weekday for custom mode (0=Sunday .. 6=Saturday)")
	return cmd
}
