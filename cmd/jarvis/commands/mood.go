package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/state"
)

// NewMoodCmd creates the mood command with log and list subcommands.
func NewMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Record and review mood check-ins",
	}
	cmd.AddCommand(newMoodLogCmd())
	cmd.AddCommand(newMoodListCmd())
	return cmd
}

func newMoodLogCmd() *cobra.Command {
	var (
		day   string
		score int
		note  string
		tags  []string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a mood check-in (1-10)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if score < 1 || score > 10 {
				return fmt.Errorf("--score must be between 1 and 10")
			}
			moodTags := make([]models.MoodTag, 0, len(tags))
			for _, t := range tags {
				tag := models.MoodTag(t)
				if !models.ValidMoodTag(tag) {
					return fmt.Errorf("unknown tag %q (energy, stress, sleep, workout)", t)
				}
				moodTags = append(moodTags, tag)
			}
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				id := store.LogMood(dayKey, score, note, moodTags)
				fmt.Printf("Logged mood %d for %s (%s)\n", score, dayKey, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to log for (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&score, "score", 0, "Mood score 1-10 (required)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags: energy, stress, sleep, workout")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newMoodListCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mood check-ins for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				moods := store.State().Moods[dayKey]
				if len(moods) == 0 {
					fmt.Printf("No mood logs for %s\n", dayKey)
					return nil
				}
				for _, m := range moods {
					line := fmt.Sprintf("%s  %2d/10", m.Timestamp.Format("15:04"), m.Mood)
					if len(m.Tags) > 0 {
						line += fmt.Sprintf("  %v", m.Tags)
					}
					if m.Note != "" {
						line += "  " + m.Note
					}
					fmt.Println(line)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to list (YYYY-MM-DD, default today)")
	return cmd
}
