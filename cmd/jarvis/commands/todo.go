package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/schedule"
	"github.com/jarvishq/jarvis/internal/state"
	"github.com/jarvishq/jarvis/internal/validation"
)

// NewTodoCmd creates the todo command and its subcommands.
func NewTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage day-scoped todos and their time blocks",
	}
	cmd.AddCommand(newTodoAddCmd())
	cmd.AddCommand(newTodoDoneCmd())
	cmd.AddCommand(newTodoRmCmd())
	cmd.AddCommand(newTodoPriorityCmd())
	cmd.AddCommand(newTodoScheduleCmd())
	cmd.AddCommand(newTodoReorderCmd())
	cmd.AddCommand(newTodoListCmd())
	return cmd
}

func newTodoAddCmd() *cobra.Command {
	var (
		day      string
		priority int
		start    string
		duration int
	)
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := validation.SanitizeText(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("todo text is required")
			}
			if priority < models.MinTodoPriority || priority > models.MaxTodoPriority {
				return fmt.Errorf("--priority must be between %d and %d", models.MinTodoPriority, models.MaxTodoPriority)
			}
			if start != "" {
				if err := validation.Validate.Var(start, "clock_time"); err != nil {
					return fmt.Errorf("invalid --start %q: expected HH:MM", start)
				}
				if duration <= 0 {
					duration = clock.SlotMinutes * 4
				}
			}
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				id := store.AddTodo(dayKey, text, priority)
				if start != "" {
					store.RescheduleTodo(dayKey, id, start, duration)
				}
				fmt.Printf("Added todo for %s (%s)\n", dayKey, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to add to (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&priority, "priority", models.MinTodoPriority, "Priority 1 (high) to 3 (low)")
	cmd.Flags().StringVar(&start, "start", "", "Time block start (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Time block duration in minutes")
	return cmd
}

func newTodoDoneCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a todo's done flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.ToggleTodo(dayKey, args[0])
				fmt.Printf("Toggled todo %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the todo (YYYY-MM-DD, default today)")
	return cmd
}

func newTodoRmCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.DeleteTodo(dayKey, args[0])
				fmt.Printf("Deleted todo %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the todo (YYYY-MM-DD, default today)")
	return cmd
}

func newTodoPriorityCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "priority [id]",
		Short: "Cycle a todo's priority (1 -> 2 -> 3 -> 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.CycleTodoPriority(dayKey, args[0])
				fmt.Printf("Cycled priority of todo %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the todo (YYYY-MM-DD, default today)")
	return cmd
}

func newTodoScheduleCmd() *cobra.Command {
	var (
		day      string
		start    string
		duration int
	)
	cmd := &cobra.Command{
		Use:   "schedule [id]",
		Short: "Place a todo on the day grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startMinutes, err := clock.ClockToMinutes(start)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", start, err)
			}
			if duration < clock.SlotMinutes {
				return fmt.Errorf("--duration must be at least %d minutes", clock.SlotMinutes)
			}
			if startMinutes+duration > clock.MinutesPerDay {
				return fmt.Errorf("time block runs past midnight")
			}
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.RescheduleTodo(dayKey, args[0], start, duration)
				fmt.Printf("Scheduled todo %s at %s for %d minutes\n", args[0], start, duration)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of the todo (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Block start (HH:MM) (required)")
	cmd.Flags().IntVar(&duration, "duration", clock.SlotMinutes*4, "Block duration in minutes")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newTodoReorderCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "reorder [id...]",
		Short: "Reorder a day's todos; unlisted todos keep their relative order after the listed ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				store.ReorderTodos(dayKey, args)
				fmt.Printf("Reordered todos for %s\n", dayKey)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to reorder (YYYY-MM-DD, default today)")
	return cmd
}

func newTodoListCmd() *cobra.Command {
	var (
		day string
		all bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's todos in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey, err := resolveDay(day)
			if err != nil {
				return err
			}
			return withStore(func(store *state.Store) error {
				todos := schedule.SortForList(store.State().Todos[dayKey])
				if len(todos) == 0 {
					fmt.Printf("No todos for %s\n", dayKey)
					return nil
				}
				for _, t := range todos {
					if t.Done && !all {
						continue
					}
					mark := " "
					if t.Done {
						mark = "x"
					}
					line := fmt.Sprintf("[%s] P%d %s", mark, t.Priority, t.Text)
					if t.Scheduled() {
						line += fmt.Sprintf("  (%s, %dm)", t.StartTime, t.TimeblockMinutes)
					}
					fmt.Printf("%s  %s\n", line, t.ID)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day to list (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed todos")
	return cmd
}
