package progress

import "time"

// dateOnly truncates t to midnight in loc. Streak comparisons work on
// calendar dates only: two logs 20 hours apart across midnight are different
// days, two logs 2 hours apart on the same day are not.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// streakUpdate is the outcome of a single streak evaluation.
type streakUpdate struct {
	Current int
	Longest int
	// Persist is false when the user already logged today and the stored
	// values must be left untouched.
	Persist bool
}

// nextStreak derives the new streak values from the previous state and today.
// hasStats is false on a user's first-ever log. The scenarios, in order:
//
//   - no prior statistics: start at 1/1
//   - last log was today: no-op, re-logging must not double-increment
//   - last log was yesterday: current+1, longest keeps its max
//   - anything else (gap of 2+ days, a future date, a zero value): current
//     resets to 1, longest is preserved
//
// longest never decreases.
func nextStreak(hasStats bool, current, longest int, lastLog, today time.Time, loc *time.Location) streakUpdate {
	if !hasStats {
		return streakUpdate{Current: 1, Longest: 1, Persist: true}
	}

	last := dateOnly(lastLog, loc)
	day := dateOnly(today, loc)

	if last.Equal(day) {
		return streakUpdate{Current: current, Longest: longest, Persist: false}
	}

	if last.Equal(day.AddDate(0, 0, -1)) {
		next := current + 1
		if next > longest {
			longest = next
		}
		return streakUpdate{Current: next, Longest: longest, Persist: true}
	}

	return streakUpdate{Current: 1, Longest: longest, Persist: true}
}
