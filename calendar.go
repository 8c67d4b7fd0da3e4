package main

import "time"

// Grid dimensions. 53 Sunday-aligned weeks cover a full year no matter
// which weekday "today" falls on.
const (
	daysPerWeek = 7
	weeksInGrid = 53
	daysInGrid  = weeksInGrid * daysPerWeek // 371
)

var monthAbbrevs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// CalendarDay is one cell of the contribution grid.
type CalendarDay struct {
	Date        time.Time // UTC midnight
	Submissions int
	Timestamp   int64 // Unix seconds, the calendar lookup key
	Weekday     int   // 0 = Sunday, the grid's fixed start-of-week day
}

// BuildCalendarGrid lays out the past year of submissions as 53 weeks of
// 7 days each. The grid starts on the most recent Sunday on or before
// (today − 1 year), so no padding or reordering is ever needed. Counts are looked up by exact UTC-midnight key; entries the caller
// failed to normalize simply never match a cell.
//
// The second return value is the 12 month abbreviations rotated so the
// sequence begins with the month containing the grid's first day.
func BuildCalendarGrid(today time.Time, cal SubmissionCalendar) ([][]CalendarDay, []string) {
	u := today.UTC()

	// One calendar year back, in UTC date components. time.Date normalizes
	// impossible dates (Feb 30 and friends) the same way the grid's
	// consumers expect.
	anchor := time.Date(u.Year()-1, u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	// Rewind to the most recent Sunday on or before the anchor.
	start := anchor.AddDate(0, 0, -int(anchor.Weekday()))

	weeks := make([][]CalendarDay, 0, weeksInGrid)
	week := make([]CalendarDay, 0, daysPerWeek)

	for i := 0; i < daysInGrid; i++ {
		date := start.AddDate(0, 0, i)
		ts := date.Unix()

		week = append(week, CalendarDay{
			Date:        date,
			Submissions: cal[ts],
			Timestamp:   ts,
			Weekday:     int(date.Weekday()),
		})

		if len(week) == daysPerWeek {
			weeks = append(weeks, week)
			week = make([]CalendarDay, 0, daysPerWeek)
		}
	}

	return weeks, monthOrderFrom(start.Month())
}

// monthOrderFrom rotates the month abbreviations to begin at first.
func monthOrderFrom(first time.Month) []string {
	offset := int(first) - 1
	order := make([]string, 0, len(monthAbbrevs))
	for i := 0; i < len(monthAbbrevs); i++ {
		order = append(order, monthAbbrevs[(offset+i)%len(monthAbbrevs)])
	}
	return order
}
