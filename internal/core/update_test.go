package core

import (
	"errors"
	"testing"
)

func TestApplyClampsNewWrites(t *testing.T) {
	cases := []struct {
		field string
		value any
		check func(DayRecord) int
		want  int
	}{
		{"evening.rosaryDecades", float64(12), func(r DayRecord) int { return r.Evening.RosaryDecades }, 5},
		{"evening.rosaryDecades", float64(-1), func(r DayRecord) int { return r.Evening.RosaryDecades }, 0},
		{"morning.breathMinutes", float64(1000), func(r DayRecord) int { return r.Morning.BreathMinutes }, 600},
		{"morning.jesusPrayerCount", float64(200000), func(r DayRecord) int { return r.Morning.JesusPrayerCount }, 100000},
		{"temptations.victories", float64(3), func(r DayRecord) int { return r.Temptations.Victories }, 3},
	}
	for i, tc := range cases {
		rec, err := Apply(Blank("2025-02-20"), tc.field, tc.value)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if got := tc.check(rec); got != tc.want {
			t.Fatalf("case %d %s: got %d want %d", i, tc.field, got, tc.want)
		}
	}
}

func TestApplyTextAndBools(t *testing.T) {
	rec, err := Apply(Blank("2025-02-20"), "scripture", "Ps 46:10")
	if err != nil {
		t.Fatalf("apply scripture: %v", err)
	}
	if rec.Scripture != "Ps 46:10" {
		t.Fatalf("got %q", rec.Scripture)
	}
	rec, err = Apply(rec, "midday.stillness", true)
	if err != nil {
		t.Fatalf("apply stillness: %v", err)
	}
	if !rec.Midday.Stillness {
		t.Fatalf("expected stillness set")
	}
}

func TestApplyUnknownField(t *testing.T) {
	for _, field := range []string{"", "bogus", "weekly.mass", "morning.bogus"} {
		if _, err := Apply(Blank("2025-02-20"), field, true); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("field %q: expected ErrUnknownField, got %v", field, err)
		}
	}
}
