package dto

import "time"

type RecordSessionInput struct {
	UserID      string
	Kind        string
	DurationMin int
	Day         time.Time
}

type RecordTaskEventInput struct {
	UserID string
	Day    time.Time
}

type DailyMetricOutput struct {
	Date                 time.Time
	TasksCreated         int
	TasksCompleted       int
	PomodorosCompleted   int
	MinutesWorked        int
	ShortBreaksCompleted int
	LongBreaksCompleted  int
}
