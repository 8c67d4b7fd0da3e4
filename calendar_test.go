package main

import (
	"testing"
	"time"
)

func TestBuildCalendarGridShape(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
	}{
		{
			name:  "plain date",
			today: time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "today is a Sunday",
			today: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day normalizes a year back",
			today: time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC),
		},
		{
			name:  "end of a 31-day month",
			today: time.Date(2025, time.August, 31, 6, 0, 0, 0, time.UTC),
		},
		{
			name:  "non-UTC wall clock",
			today: time.Date(2026, time.February, 4, 1, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks, months := BuildCalendarGrid(tt.today, nil)

			if len(weeks) != weeksInGrid {
				t.Fatalf("got %d weeks, want %d", len(weeks), weeksInGrid)
			}
			if len(months) != 12 {
				t.Fatalf("got %d month labels, want 12", len(months))
			}

			total := 0
			var prev int64
			for w, week := range weeks {
				if len(week) != daysPerWeek {
					t.Fatalf("week %d has %d days, want %d", w, len(week), daysPerWeek)
				}
				for d, day := range week {
					total++

					// Strictly increasing by exactly one day.
					if total > 1 && day.Timestamp-prev != secondsPerDay {
						t.Fatalf("gap of %d seconds before week %d day %d", day.Timestamp-prev, w, d)
					}
					prev = day.Timestamp

					// Every key is UTC-midnight aligned.
					if day.Timestamp%secondsPerDay != 0 {
						t.Errorf("timestamp %d not UTC midnight", day.Timestamp)
					}
					if day.Weekday != d {
						t.Errorf("week %d day %d has weekday %d", w, d, day.Weekday)
					}
				}
			}

			if total != daysInGrid {
				t.Errorf("grid has %d days, want %d", total, daysInGrid)
			}

			// The grid starts on a Sunday. 371 days from the Sunday on or
			// before (today − 1 year) reach today itself except when the
			// anchor falls on a Saturday, where the window stops one day
			// short.
			first := weeks[0][0]
			if first.Date.Weekday() != time.Sunday {
				t.Errorf("grid starts on %s, want Sunday", first.Date.Weekday())
			}
			last := weeks[weeksInGrid-1][daysPerWeek-1]
			u := tt.today.UTC()
			todayMidnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
			if last.Date.Before(todayMidnight.AddDate(0, 0, -1)) {
				t.Errorf("grid ends %s, too far before today %s", last.Date, todayMidnight)
			}
		})
	}
}

func TestBuildCalendarGridCounts(t *testing.T) {
	today := time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)
	active := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC).Unix()

	cal := SubmissionCalendar{active: 6}
	weeks, _ := BuildCalendarGrid(today, cal)

	found := false
	for _, week := range weeks {
		for _, day := range week {
			want := 0
			if day.Timestamp == active {
				want = 6
				found = true
			}
			if day.Submissions != want {
				t.Errorf("day %s has %d submissions, want %d", day.Date.Format("2006-01-02"), day.Submissions, want)
			}
		}
	}
	if !found {
		t.Error("active day missing from grid")
	}
}

func TestBuildCalendarGridUnalignedKeyNeverMatches(t *testing.T) {
	today := time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)

	// A key 6 hours past midnight: lookup is by exact key, so it must not
	// land on any cell. Normalization is the ingestion path's job.
	unaligned := time.Date(2025, time.July, 10, 6, 0, 0, 0, time.UTC).Unix()
	weeks, _ := BuildCalendarGrid(today, SubmissionCalendar{unaligned: 9})

	for _, week := range weeks {
		for _, day := range week {
			if day.Submissions != 0 {
				t.Errorf("unaligned key matched grid day %s", day.Date.Format("2006-01-02"))
			}
		}
	}
}

func TestMonthOrderRotation(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantFirst string
	}{
		{
			name:      "early February grid begins in February",
			today:     time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC),
			wantFirst: "Feb",
		},
		{
			name:      "mid June grid begins in June",
			today:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			wantFirst: "Jun",
		},
		{
			name:      "first of January can rewind into December",
			today:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantFirst: "Dec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks, months := BuildCalendarGrid(tt.today, nil)

			if months[0] != tt.wantFirst {
				t.Errorf("months[0] = %s, want %s", months[0], tt.wantFirst)
			}

			// The sequence must agree with the actual first grid day and
			// cover all 12 months exactly once.
			firstMonth := monthAbbrevs[int(weeks[0][0].Date.Month())-1]
			if months[0] != firstMonth {
				t.Errorf("months[0] = %s but grid starts in %s", months[0], firstMonth)
			}

			seen := make(map[string]bool)
			for _, m := range months {
				if seen[m] {
					t.Errorf("month %s appears twice", m)
				}
				seen[m] = true
			}
		})
	}
}
