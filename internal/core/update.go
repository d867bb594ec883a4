package core

import (
	"errors"
	"fmt"
)

// Bounds applied when a field is written through Apply. Stored data is never
// re-clamped; imports can carry values outside these ranges.
const (
	MaxRosaryDecades = 5
	MaxBreathMinutes = 600
	MaxCount         = 100000
)

var ErrUnknownField = errors.New("unknown field")

// Apply sets one named field on a copy of the record and returns it.
// Numeric values are clamped to the field's bound here, at the write edge.
// Weekly flags are not settable per day; they go through
// PropagateWeeklyAnchor so the whole week stays uniform.
func Apply(rec DayRecord, field string, value any) (DayRecord, error) {
	switch field {
	case "scripture":
		rec.Scripture = asText(value)
	case "notes":
		rec.Notes = asText(value)
	case "morning.consecration":
		rec.Morning.Consecration = asBool(value)
	case "morning.breathMinutes":
		rec.Morning.BreathMinutes = clamp(asCount(value), 0, MaxBreathMinutes)
	case "morning.jesusPrayerCount":
		rec.Morning.JesusPrayerCount = clamp(asCount(value), 0, MaxCount)
	case "midday.stillness":
		rec.Midday.Stillness = asBool(value)
	case "midday.bodyBlessing":
		rec.Midday.BodyBlessing = asBool(value)
	case "evening.examen":
		rec.Evening.Examen = asBool(value)
	case "evening.rosaryDecades":
		rec.Evening.RosaryDecades = clamp(asCount(value), 0, MaxRosaryDecades)
	case "evening.nightSilence":
		rec.Evening.NightSilence = asBool(value)
	case "temptations.urgesNoted":
		rec.Temptations.UrgesNoted = clamp(asCount(value), 0, MaxCount)
	case "temptations.lapses":
		rec.Temptations.Lapses = clamp(asCount(value), 0, MaxCount)
	case "temptations.victories":
		rec.Temptations.Victories = clamp(asCount(value), 0, MaxCount)
	default:
		return rec, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return rec, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WeeklyFlags lists the valid weekly anchor names.
var WeeklyFlags = []string{"mass", "confession", "fasting", "accountability"}

func weeklyFlag(w Weekly, flag string) (bool, error) {
	switch flag {
	case "mass":
		return w.Mass, nil
	case "confession":
		return w.Confession, nil
	case "fasting":
		return w.Fasting, nil
	case "accountability":
		return w.Accountability, nil
	}
	return false, fmt.Errorf("%w: weekly.%s", ErrUnknownField, flag)
}

func setWeeklyFlag(rec DayRecord, flag string, value bool) (DayRecord, error) {
	switch flag {
	case "mass":
		rec.Weekly.Mass = value
	case "confession":
		rec.Weekly.Confession = value
	case "fasting":
		rec.Weekly.Fasting = value
	case "accountability":
		rec.Weekly.Accountability = value
	default:
		return rec, fmt.Errorf("%w: weekly.%s", ErrUnknownField, flag)
	}
	return rec, nil
}
