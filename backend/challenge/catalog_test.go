package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumShape(t *testing.T) {
	weeks := Weeks()
	require.Len(t, weeks, 12)
	assert.Equal(t, 12, LastWeekID())

	for _, w := range weeks {
		maxDay, ok := MaxDay(w.ID)
		require.True(t, ok, "week %d", w.ID)
		assert.Equal(t, 7, maxDay, "week %d", w.ID)

		days := map[int]bool{}
		for _, fa := range w.FocusAreas {
			for _, dc := range fa.DailyChallenges {
				days[dc.Day] = true
			}
		}
		for day := 1; day <= 7; day++ {
			assert.True(t, days[day], "week %d day %d", w.ID, day)
		}

		assert.NotEmpty(t, w.Title, "week %d", w.ID)
		assert.NotEmpty(t, w.Theme, "week %d", w.ID)
		assert.NotEmpty(t, w.Mantras, "week %d", w.ID)
		assert.NotEmpty(t, w.Prompts, "week %d", w.ID)
	}
}

func TestWeekLookups(t *testing.T) {
	week, ok := WeekByID(1)
	require.True(t, ok)
	assert.Equal(t, "Foundation Week", week.Title)

	_, ok = WeekByID(0)
	assert.False(t, ok)
	_, ok = WeekByID(13)
	assert.False(t, ok)

	assert.True(t, Exists(12))
	assert.False(t, Exists(13))
}

func TestDayLookups(t *testing.T) {
	dc, ok := DayChallenge(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1, dc.Day)
	assert.NotEmpty(t, dc.Title)

	_, ok = DayChallenge(1, 8)
	assert.False(t, ok)
	_, ok = DayChallenge(99, 1)
	assert.False(t, ok)
}

func TestDailyMantraAndPrompt(t *testing.T) {
	for day := 1; day <= 7; day++ {
		m, ok := DailyMantra(1, day)
		require.True(t, ok, "day %d", day)
		assert.Equal(t, "daily", m.Type)
		assert.Equal(t, day, m.Day)

		p, ok := DailyPrompt(1, day)
		require.True(t, ok, "day %d", day)
		assert.Equal(t, "daily", p.Type)
		assert.Equal(t, day, p.Day)
	}
}

func TestCatalogAdapter(t *testing.T) {
	c := Catalog{}

	maxDay, ok := c.MaxDay(3)
	require.True(t, ok)
	assert.Equal(t, 7, maxDay)
	assert.True(t, c.Exists(3))

	_, ok = c.MaxDay(42)
	assert.False(t, ok)
	assert.False(t, c.Exists(42))
}
