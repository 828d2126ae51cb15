package hevy

import "time"

// PoundsPerKg converts Hevy's metric weights to pounds
const PoundsPerKg = 2.20462

// WorkoutsPage is one page of the workouts listing
type WorkoutsPage struct {
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Workouts  []Workout `json:"workouts"`
}

// Workout is one logged training session from the Hevy API
type Workout struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one exercise within a workout
type Exercise struct {
	Index              int    `json:"index"`
	Title              string `json:"title"`
	ExerciseTemplateID string `json:"exercise_template_id"`
	Sets               []Set  `json:"sets"`
}

// Set is one logged set. Type is normal, warmup, dropset or failure.
type Set struct {
	Index    int      `json:"index"`
	Type     string   `json:"type"`
	WeightKg *float64 `json:"weight_kg"`
	Reps     *int     `json:"reps"`
}

// WeightLbs returns the set weight in pounds, 0 for bodyweight sets
func (s Set) WeightLbs() float64 {
	if s.WeightKg == nil {
		return 0
	}
	return *s.WeightKg * PoundsPerKg
}

// RepCount returns the rep count, 0 for duration-based sets
func (s Set) RepCount() int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

// ExerciseTemplate describes an exercise in Hevy's catalog, including the
// muscle group it primarily trains
type ExerciseTemplate struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups"`
}
