package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/notes"
)

var (
	notesPage      string
	noteBody       string
	noteColor      string
	notesFavorites bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Notes board template",
}

var notesAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(notesPage, []notes.Note{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []notes.Note) []notes.Note {
			return notes.Add(s, notes.Fields{Title: args[0], Body: noteBody, Color: noteColor})
		})
		fmt.Printf("✅ Note added: %s\n", args[0])
		return nil
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(notesPage, []notes.Note{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		shown := sess.Data()
		if notesFavorites {
			shown = notes.Favorites(shown)
		}
		if noteColor != "" {
			shown = notes.ByColor(shown, noteColor)
		}
		if len(shown) == 0 {
			fmt.Println("  (no notes)")
			return nil
		}
		for _, n := range shown {
			star := " "
			if n.Favorite {
				star = "★"
			}
			fmt.Printf("  %s %s  %s\n", star, n.Title, n.ID)
			if verbose && n.Body != "" {
				fmt.Printf("      %s\n", n.Body)
			}
		}
		return nil
	},
}

var notesFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a note's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(notesPage, []notes.Note{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []notes.Note) []notes.Note {
			return notes.ToggleFavorite(s, args[0])
		})
		fmt.Printf("Note %s favorite toggled\n", args[0])
		return nil
	},
}

var notesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete note %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(notesPage, []notes.Note{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []notes.Note) []notes.Note {
			return notes.Remove(s, args[0])
		})
		fmt.Printf("Note %s removed\n", args[0])
		return nil
	},
}

func init() {
	notesCmd.PersistentFlags().StringVar(&notesPage, "page", "notes", "page id within the scope")
	notesAddCmd.Flags().StringVar(&noteBody, "body", "", "note body")
	notesAddCmd.Flags().StringVar(&noteColor, "color", "", "note color")
	notesListCmd.Flags().BoolVar(&notesFavorites, "favorites", false, "only favorited notes")
	notesListCmd.Flags().StringVar(&noteColor, "color", "", "filter by color")

	notesCmd.AddCommand(notesAddCmd, notesListCmd, notesFavoriteCmd, notesRemoveCmd)
	rootCmd.AddCommand(notesCmd)
}
