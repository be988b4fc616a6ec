package domain

import "time"

// Habit carries the streak state attached to a tracked entity. CurrentStreak
// is derived from completion history on every read and write; LongestStreak
// only ever grows.
type Habit struct {
	ID               string
	UserID           string
	Name             string
	CurrentStreak    int
	LongestStreak    int
	TotalCompletions int
	CreatedAt        time.Time
}
