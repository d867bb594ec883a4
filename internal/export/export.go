// Package export converts the full record store to and from its portable
// forms: a pretty-printed JSON object and a flattened CSV table. These are
// the only wire formats that must stay bit-compatible with previously
// exported files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

// ErrInvalidImport marks a payload that is not a JSON object.
var ErrInvalidImport = errors.New("import payload is not a JSON object")

// ToJSON renders the snapshot as a pretty-printed object keyed by date.
// Stored values go out verbatim, un-normalized.
func ToJSON(snap core.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// FromJSON parses an exported payload back into a snapshot. Anything but a
// JSON object (null, arrays, primitives, malformed text) fails with
// ErrInvalidImport. Entries are kept verbatim; reads normalize them later.
func FromJSON(data []byte) (core.Snapshot, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, ErrInvalidImport
	}
	snap := core.Snapshot{}
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return snap, nil
}

// csvHeader is fixed: header names, column order and the 1/0 boolean
// encoding must match files exported by earlier versions.
var csvHeader = []string{
	"Date", "Scripture", "Notes",
	"Consecration", "BreathMinutes", "JesusPrayerCount",
	"Stillness", "BodyBlessing",
	"Examen", "RosaryDecades", "NightSilence",
	"UrgesNoted", "Victories", "Lapses",
	"Mass", "Confession", "Fasting", "Accountability",
}

// ToCSV flattens the snapshot into one row per record, in ascending date
// order. Free-text fields are always double-quoted with internal quotes
// doubled; booleans render as 1/0.
func ToCSV(snap core.Snapshot) string {
	keys := make([]string, 0, len(snap))
	for key := range snap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')
	for _, key := range keys {
		rec := core.Normalize(snap[key], key)
		row := []string{
			rec.Date,
			quote(rec.Scripture),
			quote(rec.Notes),
			flag(rec.Morning.Consecration),
			strconv.Itoa(rec.Morning.BreathMinutes),
			strconv.Itoa(rec.Morning.JesusPrayerCount),
			flag(rec.Midday.Stillness),
			flag(rec.Midday.BodyBlessing),
			flag(rec.Evening.Examen),
			strconv.Itoa(rec.Evening.RosaryDecades),
			flag(rec.Evening.NightSilence),
			strconv.Itoa(rec.Temptations.UrgesNoted),
			strconv.Itoa(rec.Temptations.Victories),
			strconv.Itoa(rec.Temptations.Lapses),
			flag(rec.Weekly.Mass),
			flag(rec.Weekly.Confession),
			flag(rec.Weekly.Fasting),
			flag(rec.Weekly.Accountability),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
