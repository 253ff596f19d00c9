package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/templates/calendar"
)

var (
	calendarPage string
	eventDate    string
	eventTime    string
	eventColor   string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Calendar template",
}

var calendarAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if eventDate != "" {
			if _, err := time.Parse(calendar.DateLayout, eventDate); err != nil {
				return fmt.Errorf("invalid date (use YYYY-MM-DD): %w", err)
			}
		}
		sess, err := openPage(calendarPage, []calendar.Event{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []calendar.Event) []calendar.Event {
			return calendar.Add(s, calendar.Fields{
				Title: args[0],
				Date:  eventDate,
				Time:  eventTime,
				Color: eventColor,
			})
		})
		fmt.Printf("✅ Event added: %s on %s\n", args[0], eventDate)
		return nil
	},
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events chronologically",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(calendarPage, []calendar.Event{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		events := calendar.Upcoming(sess.Data())
		if len(events) == 0 {
			fmt.Println("  (no events)")
			return nil
		}
		for _, e := range events {
			fmt.Printf("  %s %5s  %s  %s\n", e.Date, e.Time, e.Title, e.ID)
		}
		return nil
	},
}

var calendarMonthCmd = &cobra.Command{
	Use:   "month <YYYY-MM>",
	Short: "Show the month grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month (use YYYY-MM): %w", err)
		}
		sess, err := openPage(calendarPage, []calendar.Event{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		fmt.Printf("%s\n Su  Mo  Tu  We  Th  Fr  Sa\n", at.Format("January 2006"))
		slots := calendar.MonthGrid(sess.Data(), at.Year(), at.Month())
		for i, slot := range slots {
			if slot.Day == 0 {
				fmt.Print("    ")
			} else if len(slot.Events) > 0 {
				fmt.Printf("%3d*", slot.Day)
			} else {
				fmt.Printf("%3d ", slot.Day)
			}
			if (i+1)%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Println()
		for _, slot := range slots {
			for _, e := range slot.Events {
				fmt.Printf("  %s %5s  %s\n", e.Date, e.Time, e.Title)
			}
		}
		return nil
	},
}

var calendarRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmer().Confirm(fmt.Sprintf("Delete event %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		sess, err := openPage(calendarPage, []calendar.Event{})
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(s []calendar.Event) []calendar.Event {
			return calendar.Remove(s, args[0])
		})
		fmt.Printf("Event %s removed\n", args[0])
		return nil
	},
}

func init() {
	calendarCmd.PersistentFlags().StringVar(&calendarPage, "page", "calendar", "page id within the scope")
	calendarAddCmd.Flags().StringVar(&eventDate, "date", "", "event date (YYYY-MM-DD)")
	calendarAddCmd.Flags().StringVar(&eventTime, "time", "", "event time (HH:MM)")
	calendarAddCmd.Flags().StringVar(&eventColor, "color", "", "display color")

	calendarCmd.AddCommand(calendarAddCmd, calendarListCmd, calendarMonthCmd, calendarRemoveCmd)
	rootCmd.AddCommand(calendarCmd)
}
