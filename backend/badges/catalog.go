// Package badges holds the fixed badge catalog and the award engine that
// checks a user's workout history against it.
package badges

type CriteriaType string

const (
	FirstWorkout CriteriaType = "FIRST_WORKOUT"
	WorkoutCount CriteriaType = "WORKOUT_COUNT"
	EarlyBird    CriteriaType = "EARLY_BIRD"
	NightOwl     CriteriaType = "NIGHT_OWL"
	FirstRep     CriteriaType = "FIRST_REP"
	TotalReps    CriteriaType = "TOTAL_REPS"
)

type Definition struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Icon          string       `json:"icon"`
	CriteriaType  CriteriaType `json:"criteriaType"`
	CriteriaValue int          `json:"criteriaValue,omitempty"`
}

// All is the complete catalog, in display order.
var All = []Definition{
	// First-time badges
	{ID: "first_step", Name: "First Step", Description: "Complete your first workout", Icon: "🎯", CriteriaType: FirstWorkout},
	{ID: "first_rep", Name: "First Rep", Description: "Complete your first repetition of any exercise", Icon: "💪", CriteriaType: FirstRep},

	// Time-based badges
	{ID: "early_bird", Name: "Early Bird", Description: "Complete a workout before 6 AM", Icon: "🌅", CriteriaType: EarlyBird},
	{ID: "night_owl", Name: "Night Owl", Description: "Complete a workout after 8 PM", Icon: "🦉", CriteriaType: NightOwl},

	// Workout count badges
	{ID: "on_the_roll", Name: "On The Roll", Description: "Complete 5 workouts total", Icon: "🔥", CriteriaType: WorkoutCount, CriteriaValue: 5},
	{ID: "double_digits", Name: "Double Digits", Description: "Complete 10 workouts total", Icon: "🔟", CriteriaType: WorkoutCount, CriteriaValue: 10},
	{ID: "quarter_century", Name: "Quarter Century", Description: "Complete 25 workouts total", Icon: "🎖️", CriteriaType: WorkoutCount, CriteriaValue: 25},
	{ID: "halfway_there", Name: "Halfway There", Description: "Complete 50 workouts total", Icon: "⚡", CriteriaType: WorkoutCount, CriteriaValue: 50},
	{ID: "century_club", Name: "Century Club", Description: "Complete 100 workouts", Icon: "💯", CriteriaType: WorkoutCount, CriteriaValue: 100},
	{ID: "dedicated", Name: "Dedicated", Description: "Complete 250 workouts total", Icon: "🏅", CriteriaType: WorkoutCount, CriteriaValue: 250},
	{ID: "workout_warrior", Name: "Workout Warrior", Description: "Complete 500 workouts total", Icon: "⚔️", CriteriaType: WorkoutCount, CriteriaValue: 500},

	// Cumulative rep badges
	{ID: "iron_starter", Name: "Iron Starter", Description: "Complete 50 cumulative reps", Icon: "⭐", CriteriaType: TotalReps, CriteriaValue: 50},
	{ID: "century_reps", Name: "Century Reps", Description: "Complete 100 cumulative reps", Icon: "🌟", CriteriaType: TotalReps, CriteriaValue: 100},
	{ID: "rep_machine", Name: "Rep Machine", Description: "Complete 500 cumulative reps", Icon: "🤖", CriteriaType: TotalReps, CriteriaValue: 500},
	{ID: "thousand_strong", Name: "Thousand Strong", Description: "Complete 1,000 cumulative reps", Icon: "💎", CriteriaType: TotalReps, CriteriaValue: 1000},
	{ID: "rep_legend", Name: "Rep Legend", Description: "Complete 5,000 cumulative reps", Icon: "🏆", CriteriaType: TotalReps, CriteriaValue: 5000},
	{ID: "the_beast", Name: "The Beast", Description: "Complete 10,000 cumulative reps", Icon: "🦁", CriteriaType: TotalReps, CriteriaValue: 10000},
}
