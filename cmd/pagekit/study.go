package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/study"
)

var (
	studyPage    string
	topicSubject string
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Study tracker template",
}

var studyAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a study topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(studyPage, []study.Topic{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []study.Topic) []study.Topic {
			return study.Add(s, study.Fields{Title: args[0], Subject: topicSubject})
		})
		fmt.Printf("✅ Topic added: %s\n", args[0])
		return nil
	},
}

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(studyPage, []study.Topic{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		snap := sess.Data()
		fmt.Printf("Progress: %d%% · %d minutes logged\n", study.Progress(snap), study.TotalMinutes(snap))
		if len(snap) == 0 {
			fmt.Println("  (no topics)")
			return nil
		}
		for _, t := range snap {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			fmt.Printf("  %s %s (%s, %dm)  %s\n", mark, t.Title, t.Subject, t.Minutes, t.ID)
		}
		return nil
	},
}

var studyToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a topic's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(studyPage, []study.Topic{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []study.Topic) []study.Topic {
			return study.ToggleCompleted(s, args[0])
		})
		fmt.Printf("Topic %s toggled\n", args[0])
		return nil
	},
}

var studyLogCmd = &cobra.Command{
	Use:   "log <id> <minutes>",
	Short: "Log study time (negative values subtract, floor at zero)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var minutes int
		if _, err := fmt.Sscanf(args[1], "%d", &minutes); err != nil {
			return fmt.Errorf("invalid minutes %q: %w", args[1], err)
		}
		sess, err := openPage(studyPage, []study.Topic{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []study.Topic) []study.Topic {
			return study.LogMinutes(s, args[0], minutes)
		})
		fmt.Printf("Logged %dm on %s\n", minutes, args[0])
		return nil
	},
}

var studyRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete topic %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(studyPage, []study.Topic{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []study.Topic) []study.Topic {
			return study.Remove(s, args[0])
		})
		fmt.Printf("Topic %s removed\n", args[0])
		return nil
	},
}

func init() {
	studyCmd.PersistentFlags().StringVar(&studyPage, "page", "study", "page id within the scope")
	studyAddCmd.Flags().StringVar(&topicSubject, "subject", "", "subject bucket")

	studyCmd.AddCommand(studyAddCmd, studyListCmd, studyToggleCmd, studyLogCmd, studyRemoveCmd)
	rootCmd.AddCommand(studyCmd)
}
