package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreakFirstLog(t *testing.T) {
	today := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	upd := nextStreak(false, 0, 0, time.Time{}, today, time.UTC)

	assert.True(t, upd.Persist)
	assert.Equal(t, 1, upd.Current)
	assert.Equal(t, 1, upd.Longest)
}

func TestNextStreakSameDayIsNoop(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	upd := nextStreak(true, 4, 9, morning, evening, time.UTC)

	assert.False(t, upd.Persist)
	assert.Equal(t, 4, upd.Current)
	assert.Equal(t, 9, upd.Longest)
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	yesterday := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 10, 0, 0, time.UTC)

	// 20 minutes of elapsed time, but a new calendar day.
	upd := nextStreak(true, 4, 9, yesterday, today, time.UTC)

	assert.True(t, upd.Persist)
	assert.Equal(t, 5, upd.Current)
	assert.Equal(t, 9, upd.Longest)
}

func TestNextStreakNewPersonalBest(t *testing.T) {
	yesterday := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	upd := nextStreak(true, 9, 9, yesterday, today, time.UTC)

	assert.True(t, upd.Persist)
	assert.Equal(t, 10, upd.Current)
	assert.Equal(t, 10, upd.Longest)
}

func TestNextStreakGapResets(t *testing.T) {
	lastWeek := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	upd := nextStreak(true, 6, 12, lastWeek, today, time.UTC)

	assert.True(t, upd.Persist)
	assert.Equal(t, 1, upd.Current)
	assert.Equal(t, 12, upd.Longest)
}

func TestNextStreakFutureLastLogResets(t *testing.T) {
	tomorrow := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	upd := nextStreak(true, 6, 12, tomorrow, today, time.UTC)

	assert.True(t, upd.Persist)
	assert.Equal(t, 1, upd.Current)
	assert.Equal(t, 12, upd.Longest)
}

func TestNextStreakUsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC+12", 12*3600)
	// 13:00 UTC is 01:00 the next day in UTC+12.
	last := time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)

	assert.False(t, nextStreak(true, 2, 5, last, today, loc).Persist)

	next := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	upd := nextStreak(true, 2, 5, last, next, loc)
	assert.True(t, upd.Persist)
	assert.Equal(t, 3, upd.Current)
}

func TestDateOnlyTruncates(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2026, 3, 10, 2, 30, 0, 0, time.UTC)

	got := dateOnly(at, loc)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), got)
}
