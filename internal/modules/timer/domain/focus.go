package domain

import "time"

// StatTotals are aggregate sums over ended sessions in a window.
type StatTotals struct {
	Sessions          int
	CompletedSessions int
	MinutesWorked     int
	WorkSeconds       int
	PauseSeconds      int
	Pauses            int
}

// FocusScore is the percentage of tracked time spent working rather than
// paused, clamped to [0,100]. Zero work time scores zero.
func FocusScore(workSeconds, pauseSeconds int) float64 {
	if workSeconds == 0 {
		return 0
	}
	score := float64(workSeconds) / float64(workSeconds+pauseSeconds) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func AvgSessionMinutes(minutesWorked, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(minutesWorked) / float64(total)
}

func AvgPausesPerSession(pauses, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(pauses) / float64(total)
}

// DayBucket is one calendar day of the daily breakdown.
type DayBucket struct {
	Date              time.Time
	Sessions          int
	CompletedSessions int
	MinutesWorked     int
	PauseSeconds      int
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyBreakdown groups ended sessions by UTC calendar day and emits exactly
// one bucket per day from `from` through `to` inclusive, in ascending order,
// zero-valued for days without sessions.
func DailyBreakdown(from, to time.Time, sessions []Session) []DayBucket {
	start := dayOf(from)
	end := dayOf(to)
	if end.Before(start) {
		return nil
	}
	index := map[time.Time]int{}
	buckets := []DayBucket{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		index[day] = len(buckets)
		buckets = append(buckets, DayBucket{Date: day})
	}
	for _, s := range sessions {
		if s.IsActive() {
			continue
		}
		i, ok := index[dayOf(s.StartedAt)]
		if !ok {
			continue
		}
		buckets[i].Sessions++
		if s.WasCompleted {
			buckets[i].CompletedSessions++
		}
		buckets[i].MinutesWorked += s.DurationMin
		buckets[i].PauseSeconds += s.TotalPauseSeconds
	}
	return buckets
}
