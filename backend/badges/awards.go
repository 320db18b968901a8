package badges

import (
	"time"

	"momentum/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Progress aggregates the counters the catalog criteria are checked against.
type Progress struct {
	WorkoutCount int64
	TotalReps    int64
	HasAnyRep    bool
}

// EarnedSet returns the ids of all badges the user has already earned.
func EarnedSet(db *gorm.DB, userID uint) (map[string]bool, error) {
	var rows []models.UserBadge
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(rows))
	for _, r := range rows {
		earned[r.BadgeID] = true
	}
	return earned, nil
}

// Award grants a badge if the user does not have it yet. Returns true when a
// new row was inserted.
func Award(db *gorm.DB, userID uint, badgeID string, at time.Time) (bool, error) {
	badge := models.UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: at}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&badge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UserProgress computes the counters from the user's completion history.
func UserProgress(db *gorm.DB, userID uint) (Progress, error) {
	var p Progress

	if err := db.Model(&models.ExerciseCompletion{}).
		Where("user_id = ?", userID).
		Count(&p.WorkoutCount).Error; err != nil {
		return p, err
	}

	if err := db.Model(&models.ExerciseCompletion{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(completed_reps), 0)").
		Scan(&p.TotalReps).Error; err != nil {
		return p, err
	}

	var withReps int64
	if err := db.Model(&models.ExerciseCompletion{}).
		Where("user_id = ? AND completed_reps > 0", userID).
		Count(&withReps).Error; err != nil {
		return p, err
	}
	p.HasAnyRep = withReps > 0

	return p, nil
}

// CheckAndAward evaluates the whole catalog after a completion and grants
// everything newly earned. Time-of-day criteria are judged in loc, the same
// zone the rest of the system uses for calendar logic. Returns the ids of
// badges awarded by this call.
func CheckAndAward(db *gorm.DB, userID uint, completedAt time.Time, loc *time.Location) ([]string, error) {
	if loc == nil {
		loc = time.UTC
	}
	localHour := completedAt.In(loc).Hour()

	earned, err := EarnedSet(db, userID)
	if err != nil {
		return nil, err
	}
	progress, err := UserProgress(db, userID)
	if err != nil {
		return nil, err
	}

	var newlyEarned []string
	for _, badge := range All {
		if earned[badge.ID] {
			continue
		}

		should := false
		switch badge.CriteriaType {
		case FirstWorkout:
			should = progress.WorkoutCount >= 1
		case WorkoutCount:
			should = badge.CriteriaValue > 0 && progress.WorkoutCount >= int64(badge.CriteriaValue)
		case EarlyBird:
			should = localHour < 6
		case NightOwl:
			should = localHour >= 20
		case FirstRep:
			should = progress.HasAnyRep
		case TotalReps:
			should = badge.CriteriaValue > 0 && progress.TotalReps >= int64(badge.CriteriaValue)
		}

		if !should {
			continue
		}
		awarded, err := Award(db, userID, badge.ID, completedAt)
		if err != nil {
			return nil, err
		}
		if awarded {
			newlyEarned = append(newlyEarned, badge.ID)
		}
	}

	return newlyEarned, nil
}
