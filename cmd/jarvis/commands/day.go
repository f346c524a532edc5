package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/schedule"
	"github.com/jarvishq/jarvis/internal/state"
)

// NewDayCmd creates the day command, which renders the scheduled time
// blocks for one day alongside the sleep window.
func NewDayCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the day grid: time blocks, conflicts and the sleep window",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			date, err := clock.ParseDayKey(dayKey)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				snapshot := store.State()

				window := schedule.WindowFor(snapshot.SleepSchedule, date.Weekday())
				fmt.Printf("%s (%s)\n", dayKey, date.Weekday())
				fmt.Printf("Sleep window: %s - %s\n",
					clock.MinutesToClock(window.BedMinutes),
					clock.MinutesToClock(window.WakeMinutes))

				blocks := schedule.BuildBlocks(snapshot.Todos[dayKey])
				if len(blocks) == 0 {
					fmt.Println("No time blocks scheduled.")
					return nil
				}
				fmt.Println()
				for _, b := range blocks {
					conflict := ""
					if b.HasConflict {
						conflict = "  !conflict"
					}
					fmt.Printf("%s  %s%s\n", b.Window, b.Label, conflict)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to show (YYYY-MM-DD, default today)")
	return cmd
}
