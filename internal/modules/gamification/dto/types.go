package dto

type ProfileOutput struct {
	UserID             string
	XP                 int
	Level              int
	PomodorosCompleted int
	WorkDayStreak      int
}
