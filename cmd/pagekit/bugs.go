package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/bugs"
)

var (
	bugsPage        string
	bugPriority     string
	bugStatus       string
	bugDescription  string
	bugStatusFilter string
)

var bugsCmd = &cobra.Command{
	Use:   "bugs",
	Short: "Bug tracker template",
}

var bugsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Report a new bug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(bugsPage, []bugs.Bug{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		before := len(sess.Data())
		sess.Update(func(s []bugs.Bug) []bugs.Bug {
			return bugs.Add(s, bugs.Fields{
				Title:       args[0],
				Description: bugDescription,
				Status:      bugStatus,
				Priority:    bugPriority,
			})
		})

		snap := sess.Data()
		if len(snap) == before {
			fmt.Println("ignored: empty title")
			return nil
		}
		created := snap[len(snap)-1]
		fmt.Printf("✅ Bug reported: %s (%s, %s)\n", created.Title, created.Status, created.Priority)
		if verbose {
			fmt.Printf("   ID: %s\n", created.ID)
		}
		return nil
	},
}

var bugsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bugs",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(bugsPage, []bugs.Bug{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		snap := sess.Data()
		counts := bugs.StatusCounts(snap)
		fmt.Printf("open %d · in progress %d · resolved %d\n",
			counts[bugs.StatusOpen], counts[bugs.StatusInProgress], counts[bugs.StatusResolved])

		shown := snap
		if bugStatusFilter != "" {
			shown = bugs.ByStatus(snap, bugStatusFilter)
		}
		if len(shown) == 0 {
			fmt.Println("  (no bugs)")
			return nil
		}
		for _, b := range shown {
			fmt.Printf("  [%s/%s] %s  %s\n", b.Status, b.Priority, b.Title, b.ID)
		}
		return nil
	},
}

var bugsStatusCmd = &cobra.Command{
	Use:   "status <id> <open|in_progress|resolved>",
	Short: "Move a bug to another status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(bugsPage, []bugs.Bug{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []bugs.Bug) []bugs.Bug {
			return bugs.SetStatus(s, args[0], args[1])
		})
		fmt.Printf("Bug %s → %s\n", args[0], args[1])
		return nil
	},
}

var bugsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a bug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete bug %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(bugsPage, []bugs.Bug{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []bugs.Bug) []bugs.Bug {
			return bugs.Remove(s, args[0])
		})
		fmt.Printf("Bug %s removed\n", args[0])
		return nil
	},
}

var bugsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the bug page as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(bugsPage, []bugs.Bug{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()
		return exportYAML(bugsPage, "bugs", sess.Data())
	},
}

func init() {
	bugsCmd.PersistentFlags().StringVar(&bugsPage, "page", "bugs", "page id within the scope")
	bugsAddCmd.Flags().StringVar(&bugPriority, "priority", "", "priority (low, medium, high)")
	bugsAddCmd.Flags().StringVar(&bugStatus, "status", "", "initial status (open, in_progress, resolved)")
	bugsAddCmd.Flags().StringVar(&bugDescription, "description", "", "longer description")
	bugsListCmd.Flags().StringVar(&bugStatusFilter, "status", "", "filter by status")

	bugsCmd.AddCommand(bugsAddCmd, bugsListCmd, bugsStatusCmd, bugsRemoveCmd, bugsExportCmd)
	rootCmd.AddCommand(bugsCmd)
}
