// ABOUTME: HabitDay model and the fixed daily habit checklist.
// ABOUTME: Rate is derived from the checked count at check-in time.
package habit

import "math"

// Habits is the fixed daily checklist shown at check-in.
var Habits = []string{
	"shooting drills",
	"stretching",
	"8h sleep",
	"hydration",
	"film review",
}

// HabitDay is one day's check-in: how many habits were checked and the
// day's mood. At most one entry exists per calendar date.
type HabitDay struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Checked int    `json:"checked_count"`
	Rate    int    `json:"rate"` // percent, derived from Checked
	Mood    int    `json:"mood"` // 1-10
}

// NewHabitDay builds an entry for the given date, deriving the rate.
func NewHabitDay(date string, checked, mood int) HabitDay {
	return HabitDay{
		Date:    date,
		Checked: checked,
		Rate:    RateFor(checked),
		Mood:    mood,
	}
}

// RateFor converts a checked count into a completion percentage.
func RateFor(checked int) int {
	return int(math.Round(float64(checked) / float64(len(Habits)) * 100))
}
