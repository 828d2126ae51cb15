package hevy

import (
	"strings"

	"fitdash/internal/store"
)

// muscleGroupBodyParts folds Hevy's muscle-group identifiers down to the
// body-part tags the analysis layer maps to anatomical segments. Groups not
// listed here (cardio, full_body, other) stay under their own name and are
// ignored downstream.
var muscleGroupBodyParts = map[string]string{
	"chest":          "chest",
	"upper_back":     "back",
	"lats":           "back",
	"lower_back":     "back",
	"traps":          "back",
	"abdominals":     "core",
	"shoulders":      "shoulders",
	"biceps":         "biceps",
	"triceps":        "triceps",
	"forearms":       "forearms",
	"quadriceps":     "quadriceps",
	"hamstrings":     "hamstrings",
	"glutes":         "glutes",
	"calves":         "calves",
	"abductors":      "glutes",
	"adductors":      "quadriceps",
	"full_body":      "full_body",
	"cardio":         "cardio",
	"neck":           "neck",
	"other":          "other",
}

// BodyPartForMuscleGroup normalizes a Hevy muscle group to a body-part tag
func BodyPartForMuscleGroup(group string) string {
	g := strings.ToLower(group)
	if part, ok := muscleGroupBodyParts[g]; ok {
		return part
	}
	return g
}

// ConvertWorkout turns a Hevy workout into the stored representation:
// per-body-part aggregates plus the detailed set breakdown. muscleGroupOf
// resolves an exercise template ID to its primary muscle group; unresolvable
// exercises aggregate under "other".
func ConvertWorkout(w Workout, muscleGroupOf func(templateID string) string) store.Workout {
	out := store.Workout{
		ID:        w.ID,
		Date:      w.StartTime,
		Title:     w.Title,
		BodyParts: make(map[string]store.BodyPartStats),
	}
	if !w.EndTime.IsZero() && w.EndTime.After(w.StartTime) {
		out.DurationMinutes = int(w.EndTime.Sub(w.StartTime).Minutes())
	}

	for _, exercise := range w.Exercises {
		group := ""
		if muscleGroupOf != nil {
			group = muscleGroupOf(exercise.ExerciseTemplateID)
		}
		bodyPart := "other"
		if group != "" {
			bodyPart = BodyPartForMuscleGroup(group)
		}

		detail := store.ExerciseSets{Name: exercise.Title}
		stats := out.BodyParts[bodyPart]

		for _, set := range exercise.Sets {
			weight := set.WeightLbs()
			reps := set.RepCount()

			detail.Sets = append(detail.Sets, store.WorkoutSet{
				WeightLbs: weight,
				Reps:      reps,
				Type:      store.SetType(set.Type),
			})

			stats.Sets++
			stats.Reps += reps
			stats.VolumeLbs += weight * float64(reps)
			out.TotalSets++
			out.TotalReps += reps
		}

		out.BodyParts[bodyPart] = stats
		out.Exercises = append(out.Exercises, detail)
	}

	return out
}
