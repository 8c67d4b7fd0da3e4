package main

import (
	"sort"
	"time"
)

const secondsPerDay = 86400

// SubmissionCalendar maps a UTC-midnight Unix timestamp (seconds) to the
// number of submissions on that day. Only active days are guaranteed present,
// though the API may include zero-count entries.
type SubmissionCalendar map[int64]int

// ProfileStats is the last known snapshot of a LeetCode profile.
// The difficulty counts are displayed as given; the API sometimes reports
// partial data, so EasySolved+MediumSolved+HardSolved need not equal
// TotalSolved.
type ProfileStats struct {
	TotalSolved        int                `json:"totalSolved"`
	EasySolved         int                `json:"easySolved"`
	MediumSolved       int                `json:"mediumSolved"`
	HardSolved         int                `json:"hardSolved"`
	SubmissionCalendar SubmissionCalendar `json:"submissionCalendar"`
	TotalSubmissions   int                `json:"totalSubmissions"`
}

// DefaultStats returns the built-in fallback snapshot used before the first
// successful fetch in a fresh environment.
func DefaultStats() ProfileStats {
	return ProfileStats{
		TotalSolved:  4,
		EasySolved:   4,
		MediumSolved: 0,
		HardSolved:   0,
		SubmissionCalendar: SubmissionCalendar{
			1754352000: 4, // 2025-08-05
			1769126400: 3, // 2026-01-23
			1769212800: 1, // 2026-01-24
		},
		TotalSubmissions: 8,
	}
}

// ActiveDays counts the days with at least one submission.
func ActiveDays(cal SubmissionCalendar) int {
	active := 0
	for _, count := range cal {
		if count > 0 {
			active++
		}
	}
	return active
}

// activeTimestamps returns the positive-count timestamps in ascending order.
func activeTimestamps(cal SubmissionCalendar) []int64 {
	ts := make([]int64, 0, len(cal))
	for t, count := range cal {
		if count > 0 {
			ts = append(ts, t)
		}
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}

// MaxStreak returns the longest run of consecutive active days. The calendar
// is sparse and need not be contiguous; any gap other than exactly one day
// starts a new run. The final open run counts.
func MaxStreak(cal SubmissionCalendar) int {
	ts := activeTimestamps(cal)
	if len(ts) == 0 {
		return 0
	}

	longest := 0
	current := 0
	var prev int64

	for i, t := range ts {
		if i > 0 && t-prev == secondsPerDay {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = t
	}

	return longest
}

// CurrentStreak returns the length of the active-day run ending today.
// A run ending yesterday still counts: today may simply have no submissions
// yet.
func CurrentStreak(cal SubmissionCalendar, today time.Time) int {
	ts := activeTimestamps(cal)
	if len(ts) == 0 {
		return 0
	}

	u := today.UTC()
	expected := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Unix()

	last := ts[len(ts)-1]
	if last != expected {
		// No activity today, try a streak that ended yesterday.
		expected -= secondsPerDay
		if last != expected {
			return 0
		}
	}

	streak := 0
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i] != expected {
			break
		}
		streak++
		expected -= secondsPerDay
	}

	return streak
}

// YearTotal sums the submissions across a built calendar grid.
func YearTotal(weeks [][]CalendarDay) int {
	total := 0
	for _, week := range weeks {
		for _, day := range week {
			total += day.Submissions
		}
	}
	return total
}
