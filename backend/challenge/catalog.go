// Package challenge holds the static 12-week curriculum and lookup helpers.
// The data never changes at runtime; all state lives in the database.
package challenge

type DailyChallenge struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"actionItems"`
}

type FocusArea struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DailyChallenges []DailyChallenge `json:"dailyChallenges"`
}

type Mantra struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // weekly or daily
	Day  int    `json:"day,omitempty"`
}

type Prompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // weekly or daily
	Day  int    `json:"day,omitempty"`
}

type Week struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Theme       string      `json:"theme"`
	Description string      `json:"description"`
	FocusAreas  []FocusArea `json:"focusAreas"`
	Mantras     []Mantra    `json:"mantras"`
	Prompts     []Prompt    `json:"prompts"`
}

// Weeks returns the full curriculum in order.
func Weeks() []Week {
	return weeks
}

// WeekByID looks up a week by its id.
func WeekByID(weekID int) (Week, bool) {
	for _, w := range weeks {
		if w.ID == weekID {
			return w, true
		}
	}
	return Week{}, false
}

// Exists reports whether a week with the given id is defined.
func Exists(weekID int) bool {
	_, ok := WeekByID(weekID)
	return ok
}

// MaxDay returns the highest day number defined for a week, i.e. how many
// distinct days must be logged before the week counts as complete.
func MaxDay(weekID int) (int, bool) {
	w, ok := WeekByID(weekID)
	if !ok {
		return 0, false
	}
	max := 0
	for _, fa := range w.FocusAreas {
		for _, dc := range fa.DailyChallenges {
			if dc.Day > max {
				max = dc.Day
			}
		}
	}
	return max, true
}

// LastWeekID returns the id of the final week of the curriculum.
func LastWeekID() int {
	last := 0
	for _, w := range weeks {
		if w.ID > last {
			last = w.ID
		}
	}
	return last
}

// DayChallenge finds the daily challenge for a day number within a week.
func DayChallenge(weekID, dayNumber int) (DailyChallenge, bool) {
	w, ok := WeekByID(weekID)
	if !ok {
		return DailyChallenge{}, false
	}
	for _, fa := range w.FocusAreas {
		for _, dc := range fa.DailyChallenges {
			if dc.Day == dayNumber {
				return dc, true
			}
		}
	}
	return DailyChallenge{}, false
}

// DailyMantra finds the mantra assigned to a specific day of a week.
func DailyMantra(weekID, dayNumber int) (Mantra, bool) {
	w, ok := WeekByID(weekID)
	if !ok {
		return Mantra{}, false
	}
	for _, m := range w.Mantras {
		if m.Type == "daily" && m.Day == dayNumber {
			return m, true
		}
	}
	return Mantra{}, false
}

// DailyPrompt finds the journaling prompt assigned to a specific day of a week.
func DailyPrompt(weekID, dayNumber int) (Prompt, bool) {
	w, ok := WeekByID(weekID)
	if !ok {
		return Prompt{}, false
	}
	for _, p := range w.Prompts {
		if p.Type == "daily" && p.Day == dayNumber {
			return p, true
		}
	}
	return Prompt{}, false
}

// Catalog adapts the static curriculum to the progress engine's lookup
// interface.
type Catalog struct{}

func (Catalog) MaxDay(weekID int) (int, bool) { return MaxDay(weekID) }
func (Catalog) Exists(weekID int) bool        { return Exists(weekID) }
