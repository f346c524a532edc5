package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/state"
	"github.com/jarvishq/jarvis/internal/validation"
)

// NewJournalCmd creates the journal command with add, edit, rm and list
// subcommands.
func NewJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and manage journal entries",
	}
	cmd.AddCommand(newJournalAddCmd())
	cmd.AddCommand(newJournalEditCmd())
	cmd.AddCommand(newJournalRmCmd())
	cmd.AddCommand(newJournalListCmd())
	return cmd
}

func parsePrompt(s string) (models.JournalPrompt, error) {
	if s == "" {
		return models.PromptFree, nil
	}
	if err := validation.Validate.Var(s, "journal_prompt"); err != nil {
		return "", fmt.Errorf("unknown prompt %q (morning, priority, free)", s)
	}
	return models.JournalPrompt(s), nil
}

func newJournalAddCmd() *cobra.Command {
	var (
		day    string
		prompt string
	)
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := validation.SanitizeText(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("entry text is required")
			}
			p, err := parsePrompt(prompt)
			if err != nil {
				return err
			}
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				id := store.AddJournal(dayKey, text, p)
				fmt.Printf("Added journal entry for %s (%s)\n", dayKey, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to write for (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt: morning, priority, free (default free)")
	return cmd
}

func newJournalEditCmd() *cobra.Command {
	var (
		day    string
		text   string
		prompt string
	)
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" && prompt == "" {
				return fmt.Errorf("nothing to change: pass --text and/or --prompt")
			}
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			var textPtr *string
			if text != "" {
				textPtr = &text
			}
			var promptPtr *models.JournalPrompt
			if prompt != "" {
				p, err := parsePrompt(prompt)
				if err != nil {
					return err
				}
				promptPtr = &p
			}
			return withStore(func(store *state.Store) error {
				store.UpdateJournal(dayKey, args[0], textPtr, promptPtr)
				fmt.Printf("Updated journal entry %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the entry (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&text, "text", "", "Replacement text")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Replacement prompt: morning, priority, free")
	return cmd
}

func newJournalRmCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.DeleteJournal(dayKey, args[0])
				fmt.Printf("Deleted journal entry %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the entry (YYYY-MM-DD, default today)")
	return cmd
}

func newJournalListCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				entries := store.State().Journals[dayKey]
				if len(entries) == 0 {
					fmt.Printf("No journal entries for %s\n", dayKey)
					return nil
				}
				for _, e := range entries {
					fmt.Printf("%s  [%s] (%s)\n  %s\n", e.Timestamp.Format("15:04"), e.Prompt, e.ID, e.Text)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to list (YYYY-MM-DD, default today)")
	return cmd
}
