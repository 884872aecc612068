package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"watchdeck/internal/store"
)

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "watchdeck",
		Short:         "Track what you watch, share what you track",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newCreateCommand(a))
	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newWatchedCommand(a))
	rootCmd.AddCommand(newReviewCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newImportCommand(a))

	return rootCmd
}

// describeError turns a typed core failure into the message shown to
// the user. A persistence failure gets the loudest treatment: the
// change may not have been saved and the user must know that.
func describeError(err error) string {
	switch {
	case errors.Is(err, store.ErrPersistence):
		return fmt.Sprintf("WARNING: the change could not be saved and may be lost: %v", err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	case errors.Is(err, store.ErrInvalidInput):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, store.ErrInvalidFormat):
		return fmt.Sprintf("Invalid share payload: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
