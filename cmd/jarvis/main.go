package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/cmd/jarvis/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "jarvis",
		Short: "Personal productivity console",
		Long:  "CLI for mood logs, journaling, todos with time blocks, and sleep tracking",
	}

	rootCmd.AddCommand(commands.NewMoodCmd())
	rootCmd.AddCommand(commands.NewJournalCmd())
	rootCmd.AddCommand(commands.NewTodoCmd())
	rootCmd.AddCommand(commands.NewSleepCmd())
	rootCmd.AddCommand(commands.NewDayCmd())
	rootCmd.AddCommand(commands.NewSyncCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
