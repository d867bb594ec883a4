package core

import "time"

// DateKeyLayout is the canonical date key format, e.g. "2025-02-20".
// Lexicographic order on keys equals chronological order.
const DateKeyLayout = "2006-01-02"

// ParseDateKey parses a canonical YYYY-MM-DD date key.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}

// FormatDateKey renders a time as a date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ValidDateKey reports whether key is a well-formed date key.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// mondayIndex returns the Monday-first weekday offset: Monday=0 .. Sunday=6.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Clock supplies the current local date key. Streaks and default dates all
// derive from this single source so tests can pin "today".
type Clock interface {
	Today() string
}

type systemClock struct{}

func (systemClock) Today() string {
	return FormatDateKey(time.Now())
}

// SystemClock returns a Clock backed by the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock returns a Clock that always reports the given date key.
func FixedClock(today string) Clock {
	return fixedClock(today)
}

type fixedClock string

func (f fixedClock) Today() string {
	return string(f)
}
