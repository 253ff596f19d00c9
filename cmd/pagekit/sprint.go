package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/sprint"
)

var (
	sprintPage   string
	taskPoints   int
	taskAssignee string
	taskStatus   string
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Sprint board template",
}

var sprintAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(sprintPage, []sprint.Task{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []sprint.Task) []sprint.Task {
			return sprint.Add(s, sprint.Fields{
				Title:    args[0],
				Assignee: taskAssignee,
				Points:   taskPoints,
				Status:   taskStatus,
			})
		})
		fmt.Printf("✅ Task added: %s (%dpt)\n", args[0], taskPoints)
		return nil
	},
}

var sprintBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the board columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(sprintPage, []sprint.Task{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		snap := sess.Data()
		fmt.Printf("%d/%d points done · %d%%\n",
			sprint.PointsDone(snap), sprint.PointsTotal(snap), sprint.Progress(snap))
		board := sprint.Board(snap)
		for _, col := range sprint.StatusField.Values {
			fmt.Printf("%s\n", col)
			tasks := board[col]
			if len(tasks) == 0 {
				fmt.Println("  (empty)")
				continue
			}
			for _, t := range tasks {
				who := ""
				if t.Assignee != "" {
					who = " @" + t.Assignee
				}
				fmt.Printf("  %s (%dpt)%s  %s\n", t.Title, t.Points, who, t.ID)
			}
		}
		return nil
	},
}

var sprintMoveCmd = &cobra.Command{
	Use:   "move <id> <backlog|todo|in_progress|done>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(sprintPage, []sprint.Task{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []sprint.Task) []sprint.Task {
			return sprint.Move(s, args[0], args[1])
		})
		fmt.Printf("Task %s → %s\n", args[0], args[1])
		return nil
	},
}

var sprintPointsCmd = &cobra.Command{
	Use:   "points <id> <points>",
	Short: "Re-estimate a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pts int
		if _, err := fmt.Sscanf(args[1], "%d", &pts); err != nil {
			return fmt.Errorf("invalid point value %q: %w", args[1], err)
		}
		sess, err := openPage(sprintPage, []sprint.Task{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []sprint.Task) []sprint.Task {
			return sprint.SetPoints(s, args[0], pts)
		})
		fmt.Printf("Task %s → %dpt\n", args[0], pts)
		return nil
	},
}

var sprintRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete task %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(sprintPage, []sprint.Task{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []sprint.Task) []sprint.Task {
			return sprint.Remove(s, args[0])
		})
		fmt.Printf("Task %s removed\n", args[0])
		return nil
	},
}

func init() {
	sprintCmd.PersistentFlags().StringVar(&sprintPage, "page", "sprint", "page id within the scope")
	sprintAddCmd.Flags().IntVar(&taskPoints, "points", 0, "story points")
	sprintAddCmd.Flags().StringVar(&taskAssignee, "assignee", "", "assignee")
	sprintAddCmd.Flags().StringVar(&taskStatus, "status", "", "initial column")

	sprintCmd.AddCommand(sprintAddCmd, sprintBoardCmd, sprintMoveCmd, sprintPointsCmd, sprintRemoveCmd)
	rootCmd.AddCommand(sprintCmd)
}
