package dto

import "time"

type StartInput struct {
	UserID string
	TaskID string
	Type   string
}

type SessionOutput struct {
	SessionID         string
	UserID            string
	TaskID            string
	Type              string
	StartedAt         time.Time
	EndedAt           time.Time
	TotalPauseSeconds int
	PauseCount        int
	DurationMin       int
	WasCompleted      bool
	Notes             string
	SplitReason       string
}

type PauseInput struct {
	UserID         string
	PauseStartedAt time.Time
}

type ResumeInput struct {
	UserID         string
	PauseStartedAt time.Time
	ResumedAt      time.Time
}

type StopInput struct {
	UserID       string
	WasCompleted bool
	Notes        string
}

type SwitchInput struct {
	UserID      string
	NewTaskID   string
	Type        string
	SplitReason string
}

type SwitchOutput struct {
	OldSession SessionOutput
	NewSession SessionOutput
}

type ActiveOutput struct {
	Session        SessionOutput
	ElapsedSeconds int
	IsPaused       bool
}

type StatsInput struct {
	UserID string
	From   time.Time
	To     time.Time
}

type DayStats struct {
	Date              time.Time
	Sessions          int
	CompletedSessions int
	MinutesWorked     int
	PauseSeconds      int
}

type StatsOutput struct {
	Sessions            int
	CompletedSessions   int
	MinutesWorked       int
	FocusScore          float64
	CompletionRate      float64
	AvgSessionMinutes   float64
	AvgPausesPerSession float64
	DailyBreakdown      []DayStats
}

type HistoryInput struct {
	UserID        string
	Type          string
	TaskID        string
	From          time.Time
	To            time.Time
	CompletedOnly bool
	Page          int
	PerPage       int
}

type HistoryOutput struct {
	Items      []SessionOutput
	Total      int
	Page       int
	TotalPages int
}
