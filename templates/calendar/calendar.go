// Package calendar implements the calendar template: dated events
// and the month-grid bucketing that lays them out.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// DateLayout is the stored date format. Events attach to day slots by
// exact string match against this zero-padded form; there is no
// time-zone normalization and no recurrence.
const DateLayout = "2006-01-02"

// Event is one calendar entry.
type Event struct {
	types.Meta `yaml:",inline"`

	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	Time  string `json:"time,omitempty" yaml:"time,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Fields carries user input for Add.
type Fields struct {
	Title string
	Date  string
	Time  string
	Color string
}

// Add appends a new event. Empty titles are ignored submissions.
func Add(s []Event, f Fields) []Event {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Event{
		Meta:  types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title: title,
		Date:  f.Date,
		Time:  f.Time,
		Color: f.Color,
	})
}

// Reschedule moves the matching event to a new date (and optionally
// time). No-op when the id is absent.
func Reschedule(s []Event, id, date, clock string) []Event {
	return snapshot.Patch(s, id, func(e Event) Event {
		e.Date = date
		if clock != "" {
			e.Time = clock
		}
		e.UpdatedAt = time.Now()
		return e
	})
}

// Remove drops the matching event; no-op when absent.
func Remove(s []Event, id string) []Event {
	return snapshot.Remove(s, id)
}

// EventsOn returns the events stored for the exact date string, in
// snapshot order.
func EventsOn(s []Event, date string) []Event {
	return snapshot.Filter(s, func(e Event) bool { return e.Date == date })
}

// Upcoming returns all events sorted chronologically by date then
// time. The sort is stable, so same-slot events keep insertion order.
func Upcoming(s []Event) []Event {
	return snapshot.SortBy(s, func(a, b Event) bool {
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
}

// DaySlot is one cell of the month grid. Day is 0 for the empty
// leading placeholders before the 1st.
type DaySlot struct {
	Day    int
	Date   string
	Events []Event
}

// MonthGrid lays out year/month as a sequence of day slots: first the
// empty placeholders before day 1 (one per weekday preceding it, with
// the week starting on Sunday), then one slot per day of the month
// holding the events whose stored date equals that slot's
// zero-padded YYYY-MM-DD. Trailing cells are padded implicitly by
// grid wrap.
func MonthGrid(s []Event, year int, month time.Month) []DaySlot {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := first.AddDate(0, 1, -1).Day()

	slots := make([]DaySlot, 0, offset+days)
	for i := 0; i < offset; i++ {
		slots = append(slots, DaySlot{})
	}
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		slots = append(slots, DaySlot{
			Day:    day,
			Date:   date,
			Events: EventsOn(s, date),
		})
	}
	return slots
}
