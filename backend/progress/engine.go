// Package progress implements the daily progress pipeline: journal entry
// upsert, day-over-day streak tracking and week-completion cascading. The
// three steps for one submission run inside a single database transaction.
package progress

import (
	"errors"
	"log"
	"time"

	"momentum/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Catalog is the subset of the static challenge catalog the engine consumes.
type Catalog interface {
	// MaxDay returns the highest day number defined for a week, or false if
	// the week does not exist.
	MaxDay(weekID int) (int, bool)
	// Exists reports whether a week is defined in the catalog.
	Exists(weekID int) bool
}

type Service struct {
	DB      *gorm.DB
	Catalog Catalog
	Loc     *time.Location
	// Now is injectable so tests can pin the calendar date.
	Now    func() time.Time
	Logger *log.Logger
}

func NewService(db *gorm.DB, catalog Catalog, loc *time.Location, logger *log.Logger) *Service {
	return &Service{DB: db, Catalog: catalog, Loc: loc, Now: time.Now, Logger: logger}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) location() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.UTC
}

func (s *Service) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// SubmitDailyProgress records the journal entry for (userID, weekID,
// dayNumber), advances the user's streak and, once every day of the week has
// been logged, marks the week complete and unlocks the next one. Either all
// three steps commit or none do.
func (s *Service) SubmitDailyProgress(userID uint, weekID, dayNumber int, notes string) error {
	now := s.now()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.upsertEntry(tx, userID, weekID, dayNumber, notes, now); err != nil {
			return err
		}
		if err := s.updateStreak(tx, userID, now); err != nil {
			return err
		}
		return s.cascadeWeekCompletion(tx, userID, weekID, now)
	})
}

func (s *Service) upsertEntry(tx *gorm.DB, userID uint, weekID, dayNumber int, notes string, now time.Time) error {
	entry := models.DailyProgressEntry{
		UserID:    userID,
		WeekID:    weekID,
		DayNumber: dayNumber,
		Notes:     notes,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_id"}, {Name: "day_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"notes":      notes,
			"updated_at": now,
		}),
	}).Create(&entry).Error
}

func (s *Service) updateStreak(tx *gorm.DB, userID uint, now time.Time) error {
	var stats models.UserStatistics
	err := forUpdate(tx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	// A row created by the exercise path alone has a zero LastLogDate; the
	// first journal log must still take the 1/1 bootstrap branch.
	hasLogged := err == nil && !stats.LastLogDate.IsZero()

	upd := nextStreak(hasLogged, stats.CurrentStreak, stats.LongestStreak, stats.LastLogDate, now, s.location())
	if !upd.Persist {
		return nil
	}

	stats.UserID = userID
	stats.CurrentStreak = upd.Current
	stats.LongestStreak = upd.Longest
	stats.LastLogDate = dateOnly(now, s.location())
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "longest_streak", "last_log_date", "updated_at"}),
	}).Create(&stats).Error
}

func (s *Service) cascadeWeekCompletion(tx *gorm.DB, userID uint, weekID int, now time.Time) error {
	maxDay, ok := s.Catalog.MaxDay(weekID)
	if !ok {
		// Logging against an undefined week keeps the entry and streak but
		// cannot complete anything.
		s.logf("progress: week %d not in catalog, skipping completion check for user %d", weekID, userID)
		return nil
	}

	var distinctDays int64
	if err := tx.Model(&models.DailyProgressEntry{}).
		Where("user_id = ? AND week_id = ?", userID, weekID).
		Distinct("day_number").
		Count(&distinctDays).Error; err != nil {
		return err
	}
	if distinctDays < int64(maxDay) {
		return nil
	}

	var wp models.WeekProgress
	err := forUpdate(tx).Where("user_id = ? AND week_id = ?", userID, weekID).First(&wp).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		wp = models.WeekProgress{
			UserID:        userID,
			WeekID:        weekID,
			DaysCompleted: int(distinctDays),
			StartedAt:     now,
			CompletedAt:   &now,
			UnlockedAt:    now,
		}
		if err := tx.Create(&wp).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	case wp.CompletedAt != nil:
		// Completion is recorded exactly once; re-logging an already counted
		// day must not move the timestamp or unlock anything again.
		return nil
	default:
		wp.CompletedAt = &now
		wp.DaysCompleted = int(distinctDays)
		if err := tx.Save(&wp).Error; err != nil {
			return err
		}
	}

	return s.unlockWeek(tx, userID, weekID+1, now)
}

func (s *Service) unlockWeek(tx *gorm.DB, userID uint, weekID int, now time.Time) error {
	if !s.Catalog.Exists(weekID) {
		// Final week of the curriculum, nothing to unlock.
		return nil
	}

	var wp models.WeekProgress
	err := forUpdate(tx).Where("user_id = ? AND week_id = ?", userID, weekID).First(&wp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wp = models.WeekProgress{
			UserID:     userID,
			WeekID:     weekID,
			StartedAt:  now,
			UnlockedAt: now,
		}
		return tx.Create(&wp).Error
	}
	if err != nil {
		return err
	}

	wp.UnlockedAt = now
	return tx.Save(&wp).Error
}

// IsWeekUnlocked applies the unlock rule uniformly: week 1 is always open,
// any other week is open once a WeekProgress row exists for it.
func (s *Service) IsWeekUnlocked(userID uint, weekID int) (bool, error) {
	if weekID == 1 {
		return true, nil
	}
	var count int64
	err := s.DB.Model(&models.WeekProgress{}).
		Where("user_id = ? AND week_id = ?", userID, weekID).
		Count(&count).Error
	return count > 0, err
}

// TouchExerciseStreak advances the exercise streak pair on UserStatistics.
// It applies the same calendar-date rules as the journal streak but touches
// only the exercise columns; the two streaks never mix. Callers run it inside
// their own transaction.
func (s *Service) TouchExerciseStreak(tx *gorm.DB, userID uint, at time.Time) error {
	var stats models.UserStatistics
	err := forUpdate(tx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hasStats := err == nil
	hadExercise := hasStats && !stats.LastExerciseDate.IsZero()

	upd := nextStreak(hadExercise, stats.ExerciseCurrentStreak, stats.ExerciseLongestStreak, stats.LastExerciseDate, at, s.location())
	if !upd.Persist {
		return nil
	}

	stats.UserID = userID
	stats.ExerciseCurrentStreak = upd.Current
	stats.ExerciseLongestStreak = upd.Longest
	stats.LastExerciseDate = dateOnly(at, s.location())
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"exercise_current_streak", "exercise_longest_streak", "last_exercise_date", "updated_at"}),
	}).Create(&stats).Error
}

// forUpdate adds a row lock on dialects that support it. SQLite, used in
// tests, serializes writers on its own and rejects FOR UPDATE.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
