package progress

import (
	"io"
	"log"
	"testing"
	"time"

	"momentum/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeCatalog defines weeks 1 and 2 with 7 days each, so week 2 is the last
// week of the curriculum.
type fakeCatalog struct{}

func (fakeCatalog) MaxDay(weekID int) (int, bool) {
	if weekID == 1 || weekID == 2 {
		return 7, true
	}
	return 0, false
}

func (fakeCatalog) Exists(weekID int) bool {
	return weekID == 1 || weekID == 2
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.DailyProgressEntry{},
		&models.UserStatistics{},
		&models.WeekProgress{},
	))

	svc := NewService(db, fakeCatalog{}, time.UTC, log.New(io.Discard, "", 0))
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func atDay(day int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestSubmitCreatesEntryAndStats(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SubmitDailyProgress(1, 1, 1, "day one"))

	var entry models.DailyProgressEntry
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ? AND day_number = ?", 1, 1, 1).First(&entry).Error)
	assert.Equal(t, "day one", entry.Notes)

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestResubmitSameDayUpdatesNotesNotStreak(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SubmitDailyProgress(1, 1, 1, "first"))
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 1, "edited"))

	var count int64
	require.NoError(t, svc.DB.Model(&models.DailyProgressEntry{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var entry models.DailyProgressEntry
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&entry).Error)
	assert.Equal(t, "edited", entry.Notes)

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 1, stats.CurrentStreak)
}

func TestStreakAcrossConsecutiveDays(t *testing.T) {
	svc := newTestService(t)

	for day := 1; day <= 3; day++ {
		svc.Now = atDay(day)
		require.NoError(t, svc.SubmitDailyProgress(1, 1, day, ""))
	}

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)

	// Skip a day, then log again: current resets, longest survives.
	svc.Now = atDay(5)
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 4, ""))

	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestDuplicateDaysDoNotCompleteWeek(t *testing.T) {
	svc := newTestService(t)

	// 7 submissions but only 6 distinct days.
	for day := 1; day <= 6; day++ {
		require.NoError(t, svc.SubmitDailyProgress(1, 1, day, ""))
	}
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 6, "again"))

	var count int64
	require.NoError(t, svc.DB.Model(&models.WeekProgress{}).
		Where("user_id = ? AND week_id = ? AND completed_at IS NOT NULL", 1, 1).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCompletingWeekUnlocksNext(t *testing.T) {
	svc := newTestService(t)

	for day := 1; day <= 7; day++ {
		require.NoError(t, svc.SubmitDailyProgress(1, 1, day, ""))
	}

	var wp models.WeekProgress
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 1).First(&wp).Error)
	require.NotNil(t, wp.CompletedAt)
	assert.Equal(t, 7, wp.DaysCompleted)

	var next models.WeekProgress
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 2).First(&next).Error)
	assert.Nil(t, next.CompletedAt)

	unlocked, err := svc.IsWeekUnlocked(1, 2)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestCompletionRecordedOnce(t *testing.T) {
	svc := newTestService(t)

	for day := 1; day <= 7; day++ {
		svc.Now = atDay(day)
		require.NoError(t, svc.SubmitDailyProgress(1, 1, day, ""))
	}

	var wp models.WeekProgress
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 1).First(&wp).Error)
	require.NotNil(t, wp.CompletedAt)
	completedAt := *wp.CompletedAt

	// Re-log a counted day on a later date.
	svc.Now = atDay(8)
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 3, "revisited"))

	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 1).First(&wp).Error)
	require.NotNil(t, wp.CompletedAt)
	assert.True(t, wp.CompletedAt.Equal(completedAt))
}

func TestLastWeekCompletesWithoutUnlock(t *testing.T) {
	svc := newTestService(t)

	for day := 1; day <= 7; day++ {
		require.NoError(t, svc.SubmitDailyProgress(1, 2, day, ""))
	}

	var wp models.WeekProgress
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 2).First(&wp).Error)
	require.NotNil(t, wp.CompletedAt)

	var count int64
	require.NoError(t, svc.DB.Model(&models.WeekProgress{}).
		Where("user_id = ? AND week_id = ?", 1, 3).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUnknownWeekKeepsEntryAndStreak(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SubmitDailyProgress(1, 99, 1, "off the map"))

	var entry models.DailyProgressEntry
	require.NoError(t, svc.DB.Where("user_id = ? AND week_id = ?", 1, 99).First(&entry).Error)

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 1, stats.CurrentStreak)

	var count int64
	require.NoError(t, svc.DB.Model(&models.WeekProgress{}).
		Where("user_id = ?", 1).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestWeekOneAlwaysUnlocked(t *testing.T) {
	svc := newTestService(t)

	unlocked, err := svc.IsWeekUnlocked(1, 1)
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = svc.IsWeekUnlocked(1, 2)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestSubmitIsAtomic(t *testing.T) {
	svc := newTestService(t)

	for day := 1; day <= 6; day++ {
		svc.Now = atDay(day)
		require.NoError(t, svc.SubmitDailyProgress(1, 1, day, ""))
	}

	var before models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&before).Error)

	// Break the completion step: the 7th submission must roll back in full.
	require.NoError(t, svc.DB.Migrator().DropTable(&models.WeekProgress{}))
	svc.Now = atDay(7)
	require.Error(t, svc.SubmitDailyProgress(1, 1, 7, "lost"))

	var count int64
	require.NoError(t, svc.DB.Model(&models.DailyProgressEntry{}).
		Where("user_id = ? AND week_id = ?", 1, 1).
		Count(&count).Error)
	assert.EqualValues(t, 6, count)

	var after models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&after).Error)
	assert.Equal(t, before.CurrentStreak, after.CurrentStreak)
	assert.True(t, after.LastLogDate.Equal(before.LastLogDate))
}

func TestJournalBootstrapAfterExerciseOnlyRow(t *testing.T) {
	svc := newTestService(t)

	// The statistics row is created by an exercise completion first, so it
	// exists with a zero LastLogDate when the first journal log arrives.
	require.NoError(t, svc.DB.Transaction(func(tx *gorm.DB) error {
		return svc.TouchExerciseStreak(tx, 1, atDay(1)())
	}))

	svc.Now = atDay(1)
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 1, ""))

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
	assert.GreaterOrEqual(t, stats.LongestStreak, stats.CurrentStreak)
	assert.Equal(t, 1, stats.ExerciseCurrentStreak)
}

func TestExerciseStreakIndependent(t *testing.T) {
	svc := newTestService(t)

	svc.Now = atDay(1)
	require.NoError(t, svc.SubmitDailyProgress(1, 1, 1, ""))

	require.NoError(t, svc.DB.Transaction(func(tx *gorm.DB) error {
		return svc.TouchExerciseStreak(tx, 1, atDay(1)())
	}))
	require.NoError(t, svc.DB.Transaction(func(tx *gorm.DB) error {
		return svc.TouchExerciseStreak(tx, 1, atDay(2)())
	}))

	var stats models.UserStatistics
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 2, stats.ExerciseCurrentStreak)
	assert.Equal(t, 2, stats.ExerciseLongestStreak)
	assert.Equal(t, 1, stats.CurrentStreak)

	// Same exercise day again stays put.
	require.NoError(t, svc.DB.Transaction(func(tx *gorm.DB) error {
		return svc.TouchExerciseStreak(tx, 1, atDay(2)())
	}))
	require.NoError(t, svc.DB.Where("user_id = ?", 1).First(&stats).Error)
	assert.Equal(t, 2, stats.ExerciseCurrentStreak)
}
