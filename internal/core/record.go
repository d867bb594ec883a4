package core

// Morning groups the practices logged at the start of the day.
type Morning struct {
	Consecration     bool `json:"consecration"`
	BreathMinutes    int  `json:"breathMinutes"`
	JesusPrayerCount int  `json:"jesusPrayerCount"`
}

// Midday groups the mid-day pauses.
type Midday struct {
	Stillness    bool `json:"stillness"`
	BodyBlessing bool `json:"bodyBlessing"`
}

// Evening groups the practices logged at the close of the day.
type Evening struct {
	Examen        bool `json:"examen"`
	RosaryDecades int  `json:"rosaryDecades"`
	NightSilence  bool `json:"nightSilence"`
}

// Temptations tracks struggle counters. These never count toward the
// practice-done predicate or the streak.
type Temptations struct {
	UrgesNoted int `json:"urgesNoted"`
	Lapses     int `json:"lapses"`
	Victories  int `json:"victories"`
}

// Weekly holds flags that apply to a whole Monday-Sunday week. They are
// stored per day and kept uniform across the week by PropagateWeeklyAnchor.
type Weekly struct {
	Mass           bool `json:"mass"`
	Confession     bool `json:"confession"`
	Fasting        bool `json:"fasting"`
	Accountability bool `json:"accountability"`
}

// DayRecord is everything logged for one calendar date. The date key is
// stored redundantly inside the record so exported entries stay
// self-describing.
type DayRecord struct {
	Date        string      `json:"date"`
	Scripture   string      `json:"scripture"`
	Notes       string      `json:"notes"`
	Morning     Morning     `json:"morning"`
	Midday      Midday      `json:"midday"`
	Evening     Evening     `json:"evening"`
	Temptations Temptations `json:"temptations"`
	Weekly      Weekly      `json:"weekly"`
}

// Blank returns an empty record for the given date. Reads of dates that
// were never written synthesize one of these without persisting it.
func Blank(date string) DayRecord {
	return DayRecord{Date: date}
}
