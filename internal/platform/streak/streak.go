// Package streak implements the consecutive-day streak calculation shared by
// habit tracking and session-based achievements.
package streak

import "time"

// LookbackLimit caps how much completion history a streak calculation reads.
const LookbackLimit = 365

// Day truncates t to a UTC calendar date.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(Day(later).Sub(Day(earlier)).Hours() / 24)
}

// Current computes the streak ending at today from completion dates sorted
// descending. Duplicate same-day entries are skipped; history whose latest
// entry is older than yesterday yields zero regardless of past length.
func Current(today time.Time, dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	if len(dates) > LookbackLimit {
		dates = dates[:LookbackLimit]
	}
	latest := dates[0]
	if daysBetween(today, latest) > 1 {
		return 0
	}
	count := 1
	cursor := latest
	for _, date := range dates[1:] {
		diff := daysBetween(cursor, date)
		if diff == 0 {
			continue
		}
		if diff > 1 {
			break
		}
		count++
		cursor = date
	}
	return count
}

// Longest never decreases even when the current streak resets.
func Longest(previous, current int) int {
	if current > previous {
		return current
	}
	return previous
}
