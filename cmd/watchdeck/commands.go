package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"watchdeck/internal/share"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all watchlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(lists) == 0 {
				cmd.Println("No watchlists yet. Create one with: watchdeck create <title>")
				return nil
			}
			rows := make([][]string, 0, len(lists))
			for _, w := range lists {
				rows = append(rows, []string{w.ID, w.Icon, w.Title, strconv.Itoa(len(w.Items))})
			}
			cmd.Println(renderTable([]string{"ID", "Icon", "Title", "Items"}, rows))
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <watchlist-id>",
		Short: "Show the items of a watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s %s\n", w.Icon, w.Title)
			rows := make([][]string, 0, len(w.Items))
			for _, item := range w.ItemsByOrder() {
				watched := ""
				if item.Watched {
					watched = "yes"
				}
				rows = append(rows, []string{
					strconv.Itoa(item.Order), item.ID, item.Title, watched, item.Review,
				})
			}
			cmd.Println(renderTable([]string{"#", "ID", "Title", "Watched", "Review"}, rows))
			return nil
		},
	}
}

func newCreateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.store.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Created watchlist %q (%s)\n", w.Title, w.ID)
			return nil
		},
	}
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <watchlist-id> <title> <poster-url>",
		Short: "Add a movie to a watchlist",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.store.AddItem(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			cmd.Printf("Added %q at position %d (%s)\n", item.Title, item.Order, item.ID)
			return nil
		},
	}
}

func newWatchedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watched <watchlist-id> <item-id>",
		Short: "Mark an item as watched",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.store.MarkWatched(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("Marked %q as watched\n", item.Title)
			return nil
		},
	}
}

func newReviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "review <watchlist-id> <item-id> [text]",
		Short: "Set or clear an item's review",
		Long:  "Set the review text of an item. Omitting the text clears the review.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 3 {
				text = args[2]
			}
			item, err := a.store.SetReview(cmd.Context(), args[0], args[1], text)
			if err != nil {
				return err
			}
			if item.Review == "" {
				cmd.Printf("Cleared review for %q\n", item.Title)
			} else {
				cmd.Printf("Saved review for %q\n", item.Title)
			}
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <watchlist-id>",
		Short: "Print a shareable copy of a watchlist",
		Long:  "Print the portable form of a watchlist as a JSON blob to paste to someone else. The copy carries no watch progress or reviews.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			blob, err := share.EncodeToString(a.codec.Export(w))
			if err != nil {
				return err
			}
			cmd.Println(blob)
			return nil
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import a shared watchlist from stdin",
		Long:  "Read a shared watchlist JSON blob from stdin and add it to the collection. A title clash is resolved by renaming the import, never by blocking it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading payload: %w", err)
			}
			payload, err := share.DecodeString(string(blob))
			if err != nil {
				return err
			}
			w, err := a.codec.Import(cmd.Context(), payload)
			if err != nil {
				return err
			}
			cmd.Printf("Imported %q with %d item(s) (%s)\n", w.Title, len(w.Items), w.ID)
			return nil
		},
	}
}
