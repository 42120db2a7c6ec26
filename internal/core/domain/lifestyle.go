package domain

import "time"

// Meal slots accepted in a diet log's meals map.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMealSlot reports whether key is one of the accepted meal slots.
func ValidMealSlot(key string) bool {
	switch key {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// DietLog captures what a user ate on one calendar day. At most one diet log
// exists per (user, date); the storage layer backs this with a unique index.
type DietLog struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Date        string            `json:"date"`
	Meals       map[string]string `json:"meals,omitempty"`
	Snacks      string            `json:"snacks,omitempty"`
	WaterIntake int               `json:"water_intake"`
}

// Mood is the closed set of moods a well-being log may carry.
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodNeutral Mood = "Neutral"
	MoodSad     Mood = "Sad"
	MoodAnxious Mood = "Anxious"
	MoodAngry   Mood = "Angry"
)

// StressLevel is the banded stress rating stored on a well-being log.
type StressLevel string

const (
	StressLow      StressLevel = "Low"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
)

// StressBand maps a 1-10 stress scale to its band. Boundaries are closed:
// 3 is Low, 4 and 6 are Moderate, 7 is High.
func StressBand(scale int) StressLevel {
	switch {
	case scale <= 3:
		return StressLow
	case scale <= 6:
		return StressModerate
	default:
		return StressHigh
	}
}

// WellBeingLog records mood, stress and sleep for a day. Unlike diet logs,
// several entries per day are allowed.
type WellBeingLog struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Date        string      `json:"date"`
	Mood        Mood        `json:"mood"`
	StressLevel StressLevel `json:"stress_level"`
	SleepHours  float64     `json:"sleep_hours"`
	CreatedAt   time.Time   `json:"created_at"`
}
