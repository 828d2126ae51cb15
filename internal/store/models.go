package store

import "time"

// Segment identifies an anatomical region used to localize muscle mass and
// training volume. Five individual segments plus two derived aggregates.
type Segment string

const (
	SegmentLeftArm  Segment = "leftArm"
	SegmentRightArm Segment = "rightArm"
	SegmentTrunk    Segment = "trunk"
	SegmentLeftLeg  Segment = "leftLeg"
	SegmentRightLeg Segment = "rightLeg"
	SegmentArms     Segment = "arms" // leftArm + rightArm
	SegmentLegs     Segment = "legs" // leftLeg + rightLeg
)

// IndividualSegments are the five directly measured segments
var IndividualSegments = []Segment{
	SegmentLeftArm,
	SegmentRightArm,
	SegmentTrunk,
	SegmentLeftLeg,
	SegmentRightLeg,
}

// AllSegments includes the derived arms/legs aggregates
var AllSegments = []Segment{
	SegmentLeftArm,
	SegmentRightArm,
	SegmentTrunk,
	SegmentLeftLeg,
	SegmentRightLeg,
	SegmentArms,
	SegmentLegs,
}

// MeasurementKind discriminates the source of a body-composition snapshot
type MeasurementKind string

const (
	MeasurementBIA  MeasurementKind = "bia"  // impedance scale, manual or OCR entry
	MeasurementDEXA MeasurementKind = "dexa" // DEXA scan import
)

// Measurement is a point-in-time body-composition snapshot with per-segment
// lean mass in pounds. A zero segment value means "unknown", not zero mass.
type Measurement struct {
	ID           string          `db:"id"`
	Date         time.Time       `db:"date"` // calendar day
	Kind         MeasurementKind `db:"kind"`
	LeanLeftArm  float64         `db:"lean_left_arm"`
	LeanRightArm float64         `db:"lean_right_arm"`
	LeanTrunk    float64         `db:"lean_trunk"`
	LeanLeftLeg  float64         `db:"lean_left_leg"`
	LeanRightLeg float64         `db:"lean_right_leg"`
	WeightLbs    float64         `db:"weight_lbs"`
	BodyFatPct   float64         `db:"body_fat_pct"`
}

// SegmentLean returns the lean mass in pounds for a segment.
// The arms/legs aggregates are derived from their left/right halves.
func (m Measurement) SegmentLean(seg Segment) float64 {
	switch seg {
	case SegmentLeftArm:
		return m.LeanLeftArm
	case SegmentRightArm:
		return m.LeanRightArm
	case SegmentTrunk:
		return m.LeanTrunk
	case SegmentLeftLeg:
		return m.LeanLeftLeg
	case SegmentRightLeg:
		return m.LeanRightLeg
	case SegmentArms:
		return m.LeanLeftArm + m.LeanRightArm
	case SegmentLegs:
		return m.LeanLeftLeg + m.LeanRightLeg
	}
	return 0
}

// SetType classifies a strength-training set
type SetType string

const (
	SetNormal  SetType = "normal"
	SetWarmup  SetType = "warmup"
	SetDropset SetType = "dropset"
	SetFailure SetType = "failure"
)

// WorkoutSet is a single set within an exercise
type WorkoutSet struct {
	WeightLbs float64 `db:"weight_lbs"`
	Reps      int     `db:"reps"`
	Type      SetType `db:"set_type"`
}

// ExerciseSets is the detailed per-set breakdown for one exercise in a workout
type ExerciseSets struct {
	Name string
	Sets []WorkoutSet
}

// BodyPartStats aggregates a workout's training load for one body-part tag.
// Volume is pass-through from the source's own aggregation, not recomputed.
type BodyPartStats struct {
	Sets      int     `db:"sets"`
	Reps      int     `db:"reps"`
	VolumeLbs float64 `db:"volume_lbs"`
}

// Workout is one strength-training session
type Workout struct {
	ID              string    `db:"id"`
	Date            time.Time `db:"date"`
	Title           string    `db:"title"`
	TotalSets       int       `db:"total_sets"`
	TotalReps       int       `db:"total_reps"`
	DurationMinutes int       `db:"duration_minutes"`
	BodyParts       map[string]BodyPartStats
	Exercises       []ExerciseSets // optional detailed breakdown
}

// MileSplit is the time spent on one mile of a run.
// Splits are ordered by mile index starting at 1.
type MileSplit struct {
	Mile    int     `db:"mile"`
	Seconds float64 `db:"seconds"`
}

// Activity is one run
type Activity struct {
	ID              string    `db:"id"`
	Date            time.Time `db:"date"`
	Name            string    `db:"name"`
	DistanceMiles   float64   `db:"distance_miles"`
	DurationSeconds int       `db:"duration_seconds"`
	Splits          []MileSplit
}

// EventCategory tags a calendar event
type EventCategory string

const (
	CategoryDeepWork EventCategory = "deep_work"
	CategoryShip     EventCategory = "ship"
	CategoryFitness  EventCategory = "fitness"
	CategoryLearn    EventCategory = "learn"
	CategoryLife     EventCategory = "life"
	CategoryOther    EventCategory = "other"
)

// EventCategories lists all categories in display order
var EventCategories = []EventCategory{
	CategoryDeepWork,
	CategoryShip,
	CategoryFitness,
	CategoryLearn,
	CategoryLife,
	CategoryOther,
}

// CalendarEvent is a scheduled span of calendar days.
// Start and end are both inclusive and start <= end always holds.
type CalendarEvent struct {
	ID        string        `db:"id"`
	Owner     string        `db:"owner"`
	StartDate time.Time     `db:"start_date"` // calendar day
	EndDate   time.Time     `db:"end_date"`   // calendar day, inclusive
	Title     string        `db:"title"`
	Category  EventCategory `db:"category"`
	Notes     string        `db:"notes"`
	CreatedAt time.Time     `db:"created_at"`
}

// StravaTokens holds the stored Strava API credentials (singleton row)
type StravaTokens struct {
	AthleteID    int64     `db:"athlete_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}
