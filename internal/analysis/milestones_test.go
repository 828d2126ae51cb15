package analysis

import (
	"testing"
	"time"

	"fitdash/internal/store"
)

func TestCalculate1RM(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{135, 1, 135},
		{100, 10, 133.33333333333334},
		{225, 5, 262.5},
	}

	for _, tt := range tests {
		got := Calculate1RM(tt.weight, tt.reps)
		if !closeTo(got, tt.want) {
			t.Errorf("Calculate1RM(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
		}
	}
}

func benchWorkout(id string, date time.Time, sets []store.WorkoutSet) store.Workout {
	return store.Workout{
		ID:   id,
		Date: date,
		Exercises: []store.ExerciseSets{
			{Name: "Bench Press", Sets: sets},
		},
	}
}

func TestLiftingMilestones(t *testing.T) {
	workouts := []store.Workout{
		benchWorkout("w1", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 135, Reps: 10, Type: store.SetWarmup},
			{WeightLbs: 185, Reps: 8, Type: store.SetNormal},
			{WeightLbs: 205, Reps: 5, Type: store.SetNormal},
		}),
		benchWorkout("w2", time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 225, Reps: 3, Type: store.SetNormal},
			{WeightLbs: 185, Reps: 10, Type: store.SetNormal},
		}),
	}

	milestones := LiftingMilestones(workouts)
	if len(milestones) != 1 {
		t.Fatalf("got %d exercises, want 1", len(milestones))
	}

	m := milestones[0]
	if m.Exercise != "Bench Press" {
		t.Errorf("exercise = %q, want %q", m.Exercise, "Bench Press")
	}
	if m.HeaviestWeight.Value != 225 {
		t.Errorf("heaviestWeight = %v, want 225", m.HeaviestWeight.Value)
	}
	if m.HeaviestWeight.WorkoutID != "w2" {
		t.Errorf("heaviestWeight workout = %q, want w2", m.HeaviestWeight.WorkoutID)
	}

	// Best set volume: 185x10 = 1850 beats 185x8=1480, 205x5=1025, 225x3=675
	if m.BestSetVolume.Value != 1850 {
		t.Errorf("bestSetVolume = %v, want 1850", m.BestSetVolume.Value)
	}

	// Best 1RM: 225x3 -> 247.5 beats 205x5 -> 239.17 and 185x10 -> 246.67
	if !closeTo(m.Best1RM.Value, 247.5) {
		t.Errorf("best1RM = %v, want 247.5", m.Best1RM.Value)
	}

	// Session volumes: w1 = 1480+1025 = 2505 (warmup excluded), w2 = 675+1850 = 2525
	if m.BestSessionVolume.Value != 2525 {
		t.Errorf("bestSessionVolume = %v, want 2525", m.BestSessionVolume.Value)
	}
	if m.BestSessionVolume.WorkoutID != "w2" {
		t.Errorf("bestSessionVolume workout = %q, want w2", m.BestSessionVolume.WorkoutID)
	}
}

func TestLiftingMilestonesMonotonic(t *testing.T) {
	base := []store.Workout{
		benchWorkout("w1", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 200, Reps: 5, Type: store.SetNormal},
		}),
	}

	before := LiftingMilestones(base)[0].HeaviestWeight.Value

	heavier := append(base, benchWorkout("w2", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
		{WeightLbs: 210, Reps: 3, Type: store.SetNormal},
	}))
	after := LiftingMilestones(heavier)[0].HeaviestWeight.Value

	if after < before {
		t.Errorf("heaviestWeight decreased from %v to %v after adding a heavier set", before, after)
	}
	if after != 210 {
		t.Errorf("heaviestWeight = %v, want 210", after)
	}
}

func TestLiftingMilestonesTiesKeepEarliest(t *testing.T) {
	workouts := []store.Workout{
		benchWorkout("later", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 200, Reps: 5, Type: store.SetNormal},
		}),
		benchWorkout("earlier", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 200, Reps: 5, Type: store.SetNormal},
		}),
	}

	m := LiftingMilestones(workouts)[0]
	if m.HeaviestWeight.WorkoutID != "earlier" {
		t.Errorf("tied record held by %q, want earlier", m.HeaviestWeight.WorkoutID)
	}
}

func TestLiftingMilestonesSkipsInvalidSets(t *testing.T) {
	workouts := []store.Workout{
		benchWorkout("w1", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), []store.WorkoutSet{
			{WeightLbs: 0, Reps: 10, Type: store.SetNormal},
			{WeightLbs: 300, Reps: 0, Type: store.SetNormal},
			{WeightLbs: 400, Reps: 5, Type: store.SetWarmup},
		}),
	}

	m := LiftingMilestones(workouts)[0]
	if m.HeaviestWeight.Value != 0 {
		t.Errorf("heaviestWeight = %v from sets that should not qualify", m.HeaviestWeight.Value)
	}
}
