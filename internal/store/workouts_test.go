package store

import (
	"errors"
	"testing"
	"time"
)

func workoutDay(day int) time.Time {
	return time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC)
}

func TestUpsertAndGetWorkout(t *testing.T) {
	db := NewTestDB(t)

	w := &Workout{
		ID:              "hevy-1",
		Date:            workoutDay(4),
		Title:           "Push Day",
		TotalSets:       12,
		TotalReps:       96,
		DurationMinutes: 65,
		BodyParts: map[string]BodyPartStats{
			"chest":     {Sets: 8, Reps: 64, VolumeLbs: 9200},
			"shoulders": {Sets: 4, Reps: 32, VolumeLbs: 2400},
		},
		Exercises: []ExerciseSets{
			{Name: "Bench Press", Sets: []WorkoutSet{
				{WeightLbs: 135, Reps: 10, Type: SetWarmup},
				{WeightLbs: 205, Reps: 6, Type: SetNormal},
			}},
			{Name: "Overhead Press", Sets: []WorkoutSet{
				{WeightLbs: 115, Reps: 8, Type: SetNormal},
			}},
		},
	}
	if err := db.UpsertWorkout(w); err != nil {
		t.Fatalf("UpsertWorkout: %v", err)
	}

	got, err := db.GetWorkout("hevy-1")
	if err != nil {
		t.Fatalf("GetWorkout: %v", err)
	}
	if got.Title != "Push Day" || got.TotalSets != 12 {
		t.Errorf("got %q/%d sets, want Push Day/12", got.Title, got.TotalSets)
	}
	if len(got.BodyParts) != 2 {
		t.Fatalf("got %d body parts, want 2", len(got.BodyParts))
	}
	if got.BodyParts["chest"].VolumeLbs != 9200 {
		t.Errorf("chest volume = %v, want 9200", got.BodyParts["chest"].VolumeLbs)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got.Exercises))
	}
	if got.Exercises[0].Sets[0].Type != SetWarmup {
		t.Errorf("first set type = %q, want warmup", got.Exercises[0].Sets[0].Type)
	}
}

func TestUpsertWorkoutReplacesChildren(t *testing.T) {
	db := NewTestDB(t)

	w := &Workout{
		ID:    "hevy-1",
		Date:  workoutDay(4),
		Title: "Push Day",
		BodyParts: map[string]BodyPartStats{
			"chest": {Sets: 8, Reps: 64, VolumeLbs: 9200},
		},
	}
	if err := db.UpsertWorkout(w); err != nil {
		t.Fatalf("UpsertWorkout: %v", err)
	}

	w.BodyParts = map[string]BodyPartStats{
		"back": {Sets: 6, Reps: 48, VolumeLbs: 7000},
	}
	if err := db.UpsertWorkout(w); err != nil {
		t.Fatalf("second UpsertWorkout: %v", err)
	}

	got, err := db.GetWorkout("hevy-1")
	if err != nil {
		t.Fatalf("GetWorkout: %v", err)
	}
	if len(got.BodyParts) != 1 {
		t.Fatalf("got %d body parts after replace, want 1", len(got.BodyParts))
	}
	if _, ok := got.BodyParts["chest"]; ok {
		t.Error("stale chest row survived the upsert")
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.GetWorkout("missing")
	if !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("err = %v, want ErrWorkoutNotFound", err)
	}
}

func TestListWorkoutsBetween(t *testing.T) {
	db := NewTestDB(t)

	for day, id := range map[int]string{3: "a", 10: "b", 20: "c"} {
		w := &Workout{ID: id, Date: workoutDay(day), Title: id}
		if err := db.UpsertWorkout(w); err != nil {
			t.Fatalf("UpsertWorkout: %v", err)
		}
	}

	// Bounds are inclusive on both ends
	got, err := db.ListWorkoutsBetween(workoutDay(3), workoutDay(10))
	if err != nil {
		t.Fatalf("ListWorkoutsBetween: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d workouts, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("got %q, %q; want a, b in date order", got[0].ID, got[1].ID)
	}
}

func TestMeasurementRoundTrip(t *testing.T) {
	db := NewTestDB(t)

	m := &Measurement{
		ID:           "scan-1",
		Date:         workoutDay(1),
		Kind:         MeasurementDEXA,
		LeanLeftArm:  8.4,
		LeanRightArm: 8.6,
		LeanTrunk:    61.2,
		LeanLeftLeg:  20.1,
		LeanRightLeg: 20.3,
		WeightLbs:    185.5,
		BodyFatPct:   16.2,
	}
	if err := db.UpsertMeasurement(m); err != nil {
		t.Fatalf("UpsertMeasurement: %v", err)
	}

	got, err := db.GetMeasurement("scan-1")
	if err != nil {
		t.Fatalf("GetMeasurement: %v", err)
	}
	if got.Kind != MeasurementDEXA {
		t.Errorf("Kind = %q, want dexa", got.Kind)
	}
	if got.SegmentLean(SegmentArms) != 17.0 {
		t.Errorf("arms aggregate = %v, want 17.0", got.SegmentLean(SegmentArms))
	}

	// Updating by ID overwrites in place
	m.LeanTrunk = 62.0
	if err := db.UpsertMeasurement(m); err != nil {
		t.Fatalf("second UpsertMeasurement: %v", err)
	}
	list, err := db.ListMeasurements()
	if err != nil {
		t.Fatalf("ListMeasurements: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d measurements, want 1", len(list))
	}
	if list[0].LeanTrunk != 62.0 {
		t.Errorf("trunk = %v after upsert, want 62.0", list[0].LeanTrunk)
	}
}

func TestActivityRoundTrip(t *testing.T) {
	db := NewTestDB(t)

	a := &Activity{
		ID:              "strava-1",
		Date:            workoutDay(2),
		Name:            "Tempo Run",
		DistanceMiles:   4.1,
		DurationSeconds: 2010,
		Splits: []MileSplit{
			{Mile: 1, Seconds: 495},
			{Mile: 2, Seconds: 488},
			{Mile: 3, Seconds: 482},
			{Mile: 4, Seconds: 490},
		},
	}
	if err := db.UpsertActivity(a); err != nil {
		t.Fatalf("UpsertActivity: %v", err)
	}

	got, err := db.GetActivity("strava-1")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}
	if got.Name != "Tempo Run" || got.DistanceMiles != 4.1 {
		t.Errorf("got %q/%v miles, want Tempo Run/4.1", got.Name, got.DistanceMiles)
	}
	if len(got.Splits) != 4 {
		t.Fatalf("got %d splits, want 4", len(got.Splits))
	}
	for i, s := range got.Splits {
		if s.Mile != i+1 {
			t.Errorf("split %d has mile %d, want ordered by mile", i, s.Mile)
		}
	}
}
