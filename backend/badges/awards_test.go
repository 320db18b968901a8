package badges

import (
	"fmt"
	"testing"
	"time"

	"momentum/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ExerciseCompletion{}, &models.UserBadge{}))
	return db
}

func addCompletions(t *testing.T, db *gorm.DB, userID uint, n, repsEach int) {
	t.Helper()

	for i := 0; i < n; i++ {
		c := models.ExerciseCompletion{
			ID:            fmt.Sprintf("c-%d-%d", userID, i),
			UserID:        userID,
			PlanID:        "plan-1",
			LevelNumber:   i/5 + 1,
			ExerciseName:  fmt.Sprintf("exercise-%d", i%5),
			CompletedReps: repsEach,
			CompletedAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, db.Create(&c).Error)
	}
}

func TestFirstWorkoutAndFirstRep(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 1, 10)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earned, err := CheckAndAward(db, 1, at, time.UTC)
	require.NoError(t, err)

	assert.Contains(t, earned, "first_step")
	assert.Contains(t, earned, "first_rep")
	assert.NotContains(t, earned, "early_bird")
	assert.NotContains(t, earned, "night_owl")
}

func TestTimeOfDayBadges(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 1, 10)

	dawn := time.Date(2026, 3, 10, 5, 30, 0, 0, time.UTC)
	earned, err := CheckAndAward(db, 1, dawn, time.UTC)
	require.NoError(t, err)
	assert.Contains(t, earned, "early_bird")

	addCompletions(t, db, 2, 1, 10)
	late := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	earned, err = CheckAndAward(db, 2, late, time.UTC)
	require.NoError(t, err)
	assert.Contains(t, earned, "night_owl")
	assert.NotContains(t, earned, "early_bird")
}

func TestTimeOfDayBadgesUseConfiguredZone(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 1, 10)

	// 10:00 UTC is 05:00 in UTC-5: early bird there, not in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	earned, err := CheckAndAward(db, 1, at, loc)
	require.NoError(t, err)
	assert.Contains(t, earned, "early_bird")

	addCompletions(t, db, 2, 1, 10)
	earned, err = CheckAndAward(db, 2, at, time.UTC)
	require.NoError(t, err)
	assert.NotContains(t, earned, "early_bird")
}

func TestCountAndRepTiers(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 10, 10)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earned, err := CheckAndAward(db, 1, at, time.UTC)
	require.NoError(t, err)

	// 10 workouts, 100 reps.
	assert.Contains(t, earned, "on_the_roll")
	assert.Contains(t, earned, "double_digits")
	assert.NotContains(t, earned, "quarter_century")
	assert.Contains(t, earned, "iron_starter")
	assert.Contains(t, earned, "century_reps")
	assert.NotContains(t, earned, "rep_machine")
}

func TestAwardOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 5, 10)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first, err := CheckAndAward(db, 1, at, time.UTC)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := CheckAndAward(db, 1, at.Add(time.Hour), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestUserProgressCounters(t *testing.T) {
	db := newTestDB(t)
	addCompletions(t, db, 1, 3, 20)
	addCompletions(t, db, 2, 1, 0)

	p, err := UserProgress(db, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, p.WorkoutCount)
	assert.EqualValues(t, 60, p.TotalReps)
	assert.True(t, p.HasAnyRep)

	p, err = UserProgress(db, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.WorkoutCount)
	assert.EqualValues(t, 0, p.TotalReps)
	assert.False(t, p.HasAnyRep)
}

func TestCatalogIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range All {
		assert.False(t, seen[b.ID], "duplicate badge id %s", b.ID)
		seen[b.ID] = true
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Description)
		if b.CriteriaType == WorkoutCount || b.CriteriaType == TotalReps {
			assert.Greater(t, b.CriteriaValue, 0, "badge %s", b.ID)
		}
	}
	assert.Len(t, All, 17)
}
