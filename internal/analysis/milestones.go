package analysis

import (
	"sort"

	"fitdash/internal/store"
)

// Record is one personal best: the value, when it happened, and the workout
// and rep count it came from
type Record struct {
	Value     float64
	Date      string
	WorkoutID string
	Reps      int
}

// ExerciseMilestones are the best-known lifts for one exercise name
type ExerciseMilestones struct {
	Exercise          string
	HeaviestWeight    Record
	BestSetVolume     Record
	Best1RM           Record
	BestSessionVolume Record
}

// Calculate1RM estimates a one-rep max from a multi-rep set using the Epley
// formula. A single rep is the lift itself, no estimation.
func Calculate1RM(weightLbs float64, reps int) float64 {
	if reps == 1 {
		return weightLbs
	}
	return weightLbs * (1 + float64(reps)/30)
}

// LiftingMilestones scans the full workout history and returns per-exercise
// personal records. Warmup sets and zero-weight or zero-rep sets never
// qualify. Comparisons are strict, so the earliest occurrence of a value
// holds the record; results are sorted by exercise name.
func LiftingMilestones(workouts []store.Workout) []ExerciseMilestones {
	sorted := make([]store.Workout, len(workouts))
	copy(sorted, workouts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	byExercise := make(map[string]*ExerciseMilestones)

	for _, workout := range sorted {
		date := workout.Date.Format("2006-01-02")

		for _, exercise := range workout.Exercises {
			m := byExercise[exercise.Name]
			if m == nil {
				m = &ExerciseMilestones{Exercise: exercise.Name}
				byExercise[exercise.Name] = m
			}

			var sessionVolume float64
			sessionReps := 0

			for _, set := range exercise.Sets {
				if set.Type == store.SetWarmup || set.WeightLbs <= 0 || set.Reps <= 0 {
					continue
				}

				setVolume := set.WeightLbs * float64(set.Reps)
				estimated := Calculate1RM(set.WeightLbs, set.Reps)
				sessionVolume += setVolume
				sessionReps += set.Reps

				if set.WeightLbs > m.HeaviestWeight.Value {
					m.HeaviestWeight = Record{set.WeightLbs, date, workout.ID, set.Reps}
				}
				if setVolume > m.BestSetVolume.Value {
					m.BestSetVolume = Record{setVolume, date, workout.ID, set.Reps}
				}
				if estimated > m.Best1RM.Value {
					m.Best1RM = Record{estimated, date, workout.ID, set.Reps}
				}
			}

			if sessionVolume > m.BestSessionVolume.Value {
				m.BestSessionVolume = Record{sessionVolume, date, workout.ID, sessionReps}
			}
		}
	}

	milestones := make([]ExerciseMilestones, 0, len(byExercise))
	for _, m := range byExercise {
		milestones = append(milestones, *m)
	}
	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].Exercise < milestones[j].Exercise
	})

	return milestones
}
