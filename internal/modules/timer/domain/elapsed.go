package domain

import "time"

// ElapsedSeconds derives worked seconds for a running session purely from
// timestamps: wall time since start, minus completed pauses, minus the open
// pause if one is in progress. Never negative.
func ElapsedSeconds(now, startedAt time.Time, totalPauseSeconds int, currentPauseStart time.Time) int {
	elapsed := int(now.Sub(startedAt).Seconds()) - totalPauseSeconds
	if !currentPauseStart.IsZero() {
		elapsed -= int(now.Sub(currentPauseStart).Seconds())
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// DurationMinutes is the floored worked duration of a finished session.
func DurationMinutes(startedAt, endedAt time.Time, totalPauseSeconds int) int {
	seconds := int(endedAt.Sub(startedAt).Seconds()) - totalPauseSeconds
	if seconds < 0 {
		return 0
	}
	return seconds / 60
}
