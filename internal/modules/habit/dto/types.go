package dto

import "time"

type CreateInput struct {
	UserID string
	Name   string
}

type HabitOutput struct {
	HabitID          string
	UserID           string
	Name             string
	CurrentStreak    int
	LongestStreak    int
	TotalCompletions int
	CreatedAt        time.Time
}

type CompleteInput struct {
	HabitID string
}
