package domain

// XPPerPomodoro is the award credited for each completed work or pomodoro
// session.
const XPPerPomodoro = 10

type Profile struct {
	UserID             string
	XP                 int
	PomodorosCompleted int
}

func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return 1 + xp/100
}
