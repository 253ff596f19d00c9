package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/roadmap"
)

var (
	roadmapPage        string
	roadmapQuarter     string
	roadmapStatus      string
	roadmapDescription string
	roadmapQuarters    []string
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Roadmap template",
}

var roadmapAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a roadmap item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(roadmapPage, []roadmap.Item{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []roadmap.Item) []roadmap.Item {
			return roadmap.Add(s, roadmap.Fields{
				Title:       args[0],
				Description: roadmapDescription,
				Quarter:     roadmapQuarter,
				Status:      roadmapStatus,
			})
		})
		fmt.Printf("✅ Roadmap item added: %s (%s)\n", args[0], roadmapQuarter)
		return nil
	},
}

var roadmapQuartersCmd = &cobra.Command{
	Use:   "quarters",
	Short: "Show items grouped by quarter",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(roadmapPage, []roadmap.Item{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		snap := sess.Data()
		fmt.Printf("Progress: %d%%\n", roadmap.Progress(snap))
		groups := roadmap.ByQuarter(snap, roadmapQuarters)
		for _, q := range roadmapQuarters {
			fmt.Printf("%s\n", q)
			items := groups[q]
			if len(items) == 0 {
				fmt.Println("  (empty)")
				continue
			}
			for _, it := range items {
				fmt.Printf("  [%s] %s  %s\n", it.Status, it.Title, it.ID)
			}
		}
		return nil
	},
}

var roadmapStatusCmd = &cobra.Command{
	Use:   "status <id> <planned|in-progress|completed>",
	Short: "Move an item to another status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(roadmapPage, []roadmap.Item{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []roadmap.Item) []roadmap.Item {
			return roadmap.SetStatus(s, args[0], args[1])
		})
		fmt.Printf("Item %s → %s\n", args[0], args[1])
		return nil
	},
}

var roadmapRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a roadmap item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete item %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(roadmapPage, []roadmap.Item{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []roadmap.Item) []roadmap.Item {
			return roadmap.Remove(s, args[0])
		})
		fmt.Printf("Item %s removed\n", args[0])
		return nil
	},
}

func init() {
	roadmapCmd.PersistentFlags().StringVar(&roadmapPage, "page", "roadmap", "page id within the scope")
	roadmapCmd.PersistentFlags().StringSliceVar(&roadmapQuarters, "quarters",
		[]string{"Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025", "Q1 2026", "Q2 2026"},
		"quarter key domain for grouping")
	roadmapAddCmd.Flags().StringVar(&roadmapQuarter, "quarter", "Q1 2025", "target quarter")
	roadmapAddCmd.Flags().StringVar(&roadmapStatus, "status", "", "initial status")
	roadmapAddCmd.Flags().StringVar(&roadmapDescription, "description", "", "longer description")

	roadmapCmd.AddCommand(roadmapAddCmd, roadmapQuartersCmd, roadmapStatusCmd, roadmapRemoveCmd)
	rootCmd.AddCommand(roadmapCmd)
}
