package core

import "encoding/json"

// Normalize turns an arbitrary stored value into a fully-populated DayRecord.
// Every field is defaulted independently, so partial or legacy entries and
// wrong-typed nested values all come out schema-valid. It never fails: input
// that is not a JSON object yields a blank record for the given date.
//
// Normalize is idempotent. It does not clamp numeric values; out-of-range
// legacy data passes through unchanged and only new writes are clamped at the
// edge (see Apply).
func Normalize(raw json.RawMessage, date string) DayRecord {
	var m map[string]any
	if len(raw) > 0 {
		// A failed unmarshal leaves m nil, which normalizes to blank.
		_ = json.Unmarshal(raw, &m)
	}
	return normalizeMap(m, date)
}

func normalizeMap(m map[string]any, date string) DayRecord {
	rec := Blank(date)
	if m == nil {
		return rec
	}
	if s, ok := m["date"].(string); ok && s != "" {
		rec.Date = s
	}
	rec.Scripture = asText(m["scripture"])
	rec.Notes = asText(m["notes"])

	mo := subObject(m, "morning")
	rec.Morning = Morning{
		Consecration:     asBool(mo["consecration"]),
		BreathMinutes:    asCount(mo["breathMinutes"]),
		JesusPrayerCount: asCount(mo["jesusPrayerCount"]),
	}
	mi := subObject(m, "midday")
	rec.Midday = Midday{
		Stillness:    asBool(mi["stillness"]),
		BodyBlessing: asBool(mi["bodyBlessing"]),
	}
	ev := subObject(m, "evening")
	rec.Evening = Evening{
		Examen:        asBool(ev["examen"]),
		RosaryDecades: asCount(ev["rosaryDecades"]),
		NightSilence:  asBool(ev["nightSilence"]),
	}
	te := subObject(m, "temptations")
	rec.Temptations = Temptations{
		UrgesNoted: asCount(te["urgesNoted"]),
		Lapses:     asCount(te["lapses"]),
		Victories:  asCount(te["victories"]),
	}
	we := subObject(m, "weekly")
	rec.Weekly = Weekly{
		Mass:           asBool(we["mass"]),
		Confession:     asBool(we["confession"]),
		Fasting:        asBool(we["fasting"]),
		Accountability: asBool(we["accountability"]),
	}
	return rec
}

// subObject returns the named nested object, or nil when the value is
// missing or not an object. Indexing a nil map is safe, so callers can
// default field-by-field without checks.
func subObject(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asText(v any) string {
	s, _ := v.(string)
	return s
}

func asCount(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}
