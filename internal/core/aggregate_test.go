package core

import (
	"encoding/json"
	"testing"
)

func mustRaw(t *testing.T, rec DayRecord) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return raw
}

func doneOn(t *testing.T, date string) json.RawMessage {
	t.Helper()
	rec := Blank(date)
	rec.Evening.Examen = true
	return mustRaw(t, rec)
}

func TestAnyPracticeDoneEachField(t *testing.T) {
	cases := []struct {
		name string
		set  func(*DayRecord)
		want bool
	}{
		{"consecration", func(r *DayRecord) { r.Morning.Consecration = true }, true},
		{"breathMinutes", func(r *DayRecord) { r.Morning.BreathMinutes = 1 }, true},
		{"jesusPrayerCount", func(r *DayRecord) { r.Morning.JesusPrayerCount = 1 }, true},
		{"stillness", func(r *DayRecord) { r.Midday.Stillness = true }, true},
		{"bodyBlessing", func(r *DayRecord) { r.Midday.BodyBlessing = true }, true},
		{"examen", func(r *DayRecord) { r.Evening.Examen = true }, true},
		{"rosaryDecades", func(r *DayRecord) { r.Evening.RosaryDecades = 1 }, true},
		{"nightSilence", func(r *DayRecord) { r.Evening.NightSilence = true }, true},
		{"urgesNoted only", func(r *DayRecord) { r.Temptations.UrgesNoted = 5 }, false},
		{"lapses only", func(r *DayRecord) { r.Temptations.Lapses = 1 }, false},
		{"victories only", func(r *DayRecord) { r.Temptations.Victories = 3 }, false},
		{"weekly mass only", func(r *DayRecord) { r.Weekly.Mass = true }, false},
		{"scripture only", func(r *DayRecord) { r.Scripture = "Jn 15:5" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Blank("2025-02-20")
			tc.set(&rec)
			if got := AnyPracticeDone(rec); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
	if AnyPracticeDone(Blank("2025-02-20")) {
		t.Fatalf("blank record should not count as done")
	}
}

func TestStreak(t *testing.T) {
	snap := Snapshot{
		"2024-03-10": doneOn(t, "2024-03-10"),
		"2024-03-09": doneOn(t, "2024-03-09"),
		"2024-03-08": doneOn(t, "2024-03-08"),
		// 2024-03-07 absent
		"2024-03-06": doneOn(t, "2024-03-06"),
	}
	if got := Streak(snap, "2024-03-10"); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestStreakZeroWhenTodayMissing(t *testing.T) {
	snap := Snapshot{
		"2024-03-09": doneOn(t, "2024-03-09"),
		"2024-03-08": doneOn(t, "2024-03-08"),
	}
	if got := Streak(snap, "2024-03-10"); got != 0 {
		t.Fatalf("streak = %d, want 0 when today has no practice", got)
	}
	if got := Streak(Snapshot{}, "2024-03-10"); got != 0 {
		t.Fatalf("streak over empty store = %d, want 0", got)
	}
	if got := Streak(snap, "not-a-date"); got != 0 {
		t.Fatalf("streak with bad today = %d, want 0", got)
	}
}

func TestStreakSpansMonthBoundary(t *testing.T) {
	snap := Snapshot{
		"2024-03-01": doneOn(t, "2024-03-01"),
		"2024-02-29": doneOn(t, "2024-02-29"), // leap day
		"2024-02-28": doneOn(t, "2024-02-28"),
	}
	if got := Streak(snap, "2024-03-01"); got != 3 {
		t.Fatalf("streak = %d, want 3 across the month boundary", got)
	}
}

func TestSumTotals(t *testing.T) {
	a := Blank("2024-01-01")
	a.Morning.BreathMinutes = 10
	a.Morning.JesusPrayerCount = 33
	a.Evening.RosaryDecades = 5
	b := Blank("2024-01-02")
	b.Morning.BreathMinutes = 5
	b.Temptations.Victories = 2
	b.Temptations.Lapses = 1
	snap := Snapshot{
		"2024-01-01": mustRaw(t, a),
		"2024-01-02": mustRaw(t, b),
		"2024-01-03": json.RawMessage(`{"notes":"sparse entry"}`),
	}
	got := SumTotals(snap)
	want := Totals{BreathMinutes: 15, JesusPrayerCount: 33, RosaryDecades: 5, Victories: 2, Lapses: 1}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
}

func TestWeekRange(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"2024-03-06", "2024-03-04", "2024-03-10"}, // mid-week Wednesday
		{"2024-03-04", "2024-03-04", "2024-03-10"}, // Monday maps to itself
		{"2024-03-10", "2024-03-04", "2024-03-10"}, // Sunday closes the week
		{"2025-01-01", "2024-12-30", "2025-01-05"}, // week spans the year boundary
		{"2024-03-31", "2024-03-25", "2024-03-31"}, // month boundary Sunday
	}
	for _, tc := range cases {
		week, err := WeekRange(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if len(week) != 7 {
			t.Fatalf("%s: got %d days", tc.in, len(week))
		}
		if week[0] != tc.first || week[6] != tc.last {
			t.Fatalf("%s: week %v, want %s..%s", tc.in, week, tc.first, tc.last)
		}
	}
	if _, err := WeekRange("garbage"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestWeeklyAnchorPropagation(t *testing.T) {
	outside := doneOn(t, "2024-03-03") // Sunday of the prior week
	snap := Snapshot{
		"2024-03-03": outside,
		"2024-03-05": doneOn(t, "2024-03-05"),
	}
	week, err := WeekRange("2024-03-06")
	if err != nil {
		t.Fatalf("week range: %v", err)
	}
	if WeeklyAnchorState(snap, week, "fasting") {
		t.Fatalf("anchor should read false before propagation")
	}

	next, err := PropagateWeeklyAnchor(snap, week, "fasting", true)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	for _, key := range week {
		rec := Normalize(next[key], key)
		if !rec.Weekly.Fasting {
			t.Fatalf("day %s missing fasting flag", key)
		}
	}
	if !WeeklyAnchorState(next, week, "fasting") {
		t.Fatalf("anchor should read true after propagation")
	}
	if string(next["2024-03-03"]) != string(outside) {
		t.Fatalf("key outside the week changed: %s", next["2024-03-03"])
	}
	if len(next) != len(snap)+6 {
		t.Fatalf("expected exactly the 7 week days added, got %d keys", len(next))
	}
	// Existing day keeps its other fields.
	if rec := Normalize(next["2024-03-05"], "2024-03-05"); !rec.Evening.Examen {
		t.Fatalf("propagation dropped existing fields: %+v", rec)
	}
	// Original snapshot untouched.
	if WeeklyAnchorState(snap, week, "fasting") {
		t.Fatalf("propagation mutated its input")
	}

	cleared, err := PropagateWeeklyAnchor(next, week, "fasting", false)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if WeeklyAnchorState(cleared, week, "fasting") {
		t.Fatalf("anchor should read false after clearing")
	}
}

func TestPropagateUnknownFlag(t *testing.T) {
	week, _ := WeekRange("2024-03-06")
	if _, err := PropagateWeeklyAnchor(Snapshot{}, week, "sabbath", true); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestMonthDots(t *testing.T) {
	snap := Snapshot{
		"2025-01-01": doneOn(t, "2025-01-01"),
		"2025-01-15": doneOn(t, "2025-01-15"),
	}
	// January 2025 starts on a Wednesday: two placeholders.
	dots, err := MonthDots("2025-01-10", snap)
	if err != nil {
		t.Fatalf("month dots: %v", err)
	}
	if len(dots) != 2+31 {
		t.Fatalf("got %d cells, want 33", len(dots))
	}
	for i := 0; i < 2; i++ {
		if dots[i].Date != "" || dots[i].Filled {
			t.Fatalf("placeholder %d should be empty and unfilled: %+v", i, dots[i])
		}
	}
	if dots[2].Date != "2025-01-01" || !dots[2].Filled {
		t.Fatalf("first day cell wrong: %+v", dots[2])
	}
	if dots[3].Filled {
		t.Fatalf("2025-01-02 has no record and should be unfilled")
	}
	if dots[2+14].Date != "2025-01-15" || !dots[2+14].Filled {
		t.Fatalf("mid-month cell wrong: %+v", dots[2+14])
	}
}

func TestMonthDotsMondayStart(t *testing.T) {
	// September 2025 starts on a Monday: no placeholders.
	dots, err := MonthDots("2025-09-01", Snapshot{})
	if err != nil {
		t.Fatalf("month dots: %v", err)
	}
	if len(dots) != 30 {
		t.Fatalf("got %d cells, want 30", len(dots))
	}
	if dots[0].Date != "2025-09-01" {
		t.Fatalf("first cell should be day 1, got %+v", dots[0])
	}
}
