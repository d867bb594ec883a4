package core

import (
	"encoding/json"
	"time"
)

// Snapshot is a point-in-time view of the whole store: raw stored values
// keyed by date. Values stay verbatim until a read normalizes them, so
// imported or legacy entries survive untouched.
type Snapshot map[string]json.RawMessage

// AnyPracticeDone reports whether at least one active practice is logged.
// Temptation counters and weekly anchors deliberately do not count; noting a
// struggle or carrying a week-level flag is not a day's practice.
func AnyPracticeDone(rec DayRecord) bool {
	return rec.Morning.Consecration ||
		rec.Morning.BreathMinutes > 0 ||
		rec.Morning.JesusPrayerCount > 0 ||
		rec.Midday.Stillness ||
		rec.Midday.BodyBlessing ||
		rec.Evening.Examen ||
		rec.Evening.RosaryDecades > 0 ||
		rec.Evening.NightSilence
}

// Streak counts consecutive practiced days ending at today, walking backward
// one calendar day at a time. The walk stops at the first day, today
// included, with no qualifying practice.
func Streak(snap Snapshot, today string) int {
	t, err := ParseDateKey(today)
	if err != nil {
		return 0
	}
	n := 0
	for {
		key := FormatDateKey(t)
		if !AnyPracticeDone(Normalize(snap[key], key)) {
			return n
		}
		n++
		t = t.AddDate(0, 0, -1)
	}
}

// Totals are lifetime sums across every record in the store.
type Totals struct {
	BreathMinutes    int `json:"breathMinutes"`
	JesusPrayerCount int `json:"jesusPrayerCount"`
	RosaryDecades    int `json:"rosaryDecades"`
	Victories        int `json:"victories"`
	Lapses           int `json:"lapses"`
}

// SumTotals recomputes lifetime totals from the full snapshot. Map iteration
// order is irrelevant since addition commutes.
func SumTotals(snap Snapshot) Totals {
	var t Totals
	for key, raw := range snap {
		rec := Normalize(raw, key)
		t.BreathMinutes += rec.Morning.BreathMinutes
		t.JesusPrayerCount += rec.Morning.JesusPrayerCount
		t.RosaryDecades += rec.Evening.RosaryDecades
		t.Victories += rec.Temptations.Victories
		t.Lapses += rec.Temptations.Lapses
	}
	return t
}

// WeekRange returns the seven date keys of the Monday-Sunday week containing
// the given date, Monday first. Weeks spanning a month or year boundary work
// like any other.
func WeekRange(anyDateInWeek string) ([]string, error) {
	t, err := ParseDateKey(anyDateInWeek)
	if err != nil {
		return nil, err
	}
	monday := t.AddDate(0, 0, -mondayIndex(t))
	week := make([]string, 7)
	for i := range week {
		week[i] = FormatDateKey(monday.AddDate(0, 0, i))
	}
	return week, nil
}

// WeeklyAnchorState reports whether the flag is set on every day of the
// week. Days with no record read as false, so a partially-propagated or
// empty week reads as unset.
func WeeklyAnchorState(snap Snapshot, week []string, flag string) bool {
	for _, key := range week {
		rec := Normalize(snap[key], key)
		set, err := weeklyFlag(rec.Weekly, flag)
		if err != nil || !set {
			return false
		}
	}
	return len(week) > 0
}

// PropagateWeeklyAnchor returns a new snapshot where the flag is uniform
// across the seven days of the week. Each day is normalized (or synthesized
// blank), the one flag set, and written back; every key outside the week is
// carried over unchanged.
func PropagateWeeklyAnchor(snap Snapshot, week []string, flag string, value bool) (Snapshot, error) {
	next := make(Snapshot, len(snap)+len(week))
	for key, raw := range snap {
		next[key] = raw
	}
	for _, key := range week {
		rec, err := setWeeklyFlag(Normalize(snap[key], key), flag, value)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		next[key] = raw
	}
	return next, nil
}

// MonthDot is one cell of the month presence grid. Placeholder cells pad the
// first week so day 1 lands in its Monday-first weekday column; they carry
// no date and are never filled.
type MonthDot struct {
	Date   string `json:"date,omitempty"`
	Filled bool   `json:"filled"`
}

// MonthDots builds the presence grid for the calendar month containing the
// anchor date: leading placeholders, then one dot per day of the month with
// Filled derived from AnyPracticeDone.
func MonthDots(anchor string, snap Snapshot) ([]MonthDot, error) {
	t, err := ParseDateKey(anchor)
	if err != nil {
		return nil, err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	daysInMonth := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()

	dots := make([]MonthDot, 0, mondayIndex(first)+daysInMonth)
	for i := 0; i < mondayIndex(first); i++ {
		dots = append(dots, MonthDot{})
	}
	for day := 0; day < daysInMonth; day++ {
		key := FormatDateKey(first.AddDate(0, 0, day))
		dots = append(dots, MonthDot{
			Date:   key,
			Filled: AnyPracticeDone(Normalize(snap[key], key)),
		})
	}
	return dots, nil
}
