package service

import (
	"sort"
	"time"

	"fitdash/internal/analysis"
	"fitdash/internal/store"
)

// QueryService assembles analysis views from stored data
type QueryService struct {
	store       *store.DB
	windowWeeks int
}

// NewQueryService creates a query service with the configured correlation
// window
func NewQueryService(db *store.DB, windowWeeks int) *QueryService {
	return &QueryService{store: db, windowWeeks: windowWeeks}
}

// SegmentTrend is one segment's latest lean mass and its change over the
// selected trend period
type SegmentTrend struct {
	Segment   store.Segment
	LatestLbs float64
	DeltaLbs  float64
	HasDelta  bool
}

// DashboardData is everything the dashboard screen renders
type DashboardData struct {
	LatestMeasurement *store.Measurement
	SegmentTrends     []SegmentTrend
	TrendPeriod       analysis.TrendPeriod

	WorkoutCount  int
	ActivityCount int
	LastWorkout   time.Time
	LastActivity  time.Time

	// WeeklyVolume is total lifting volume per ISO week, oldest first,
	// for the trailing 12 weeks
	WeeklyVolume []float64

	VolumeBySegment map[store.Segment]analysis.SegmentVolume
}

// Dashboard assembles the dashboard view
func (q *QueryService) Dashboard(period analysis.TrendPeriod, now time.Time) (*DashboardData, error) {
	data := &DashboardData{TrendPeriod: period}

	measurements, err := q.store.ListMeasurements()
	if err != nil {
		return nil, err
	}

	if len(measurements) > 0 {
		// Newest first for trend comparison
		desc := make([]store.Measurement, len(measurements))
		copy(desc, measurements)
		sort.Slice(desc, func(i, j int) bool {
			return desc[i].Date.After(desc[j].Date)
		})

		latest := desc[0]
		data.LatestMeasurement = &latest

		baseline := analysis.ComparisonMeasurement(desc, period, now)
		for _, seg := range store.IndividualSegments {
			trend := SegmentTrend{
				Segment:   seg,
				LatestLbs: latest.SegmentLean(seg),
			}
			if baseline != nil {
				trend.DeltaLbs = latest.SegmentLean(seg) - baseline.SegmentLean(seg)
				trend.HasDelta = true
			}
			data.SegmentTrends = append(data.SegmentTrends, trend)
		}
	}

	workouts, err := q.store.ListWorkouts()
	if err != nil {
		return nil, err
	}
	data.WorkoutCount = len(workouts)
	if len(workouts) > 0 {
		data.LastWorkout = workouts[len(workouts)-1].Date
	}

	activities, err := q.store.ListActivities()
	if err != nil {
		return nil, err
	}
	data.ActivityCount = len(activities)
	if len(activities) > 0 {
		data.LastActivity = activities[len(activities)-1].Date
	}

	data.WeeklyVolume = weeklyVolume(workouts, now, 12)

	windowStart := now.AddDate(0, 0, -q.windowWeeks*7)
	var recent []store.Workout
	for _, w := range workouts {
		if !w.Date.Before(windowStart) {
			recent = append(recent, w)
		}
	}
	data.VolumeBySegment = analysis.AggregateVolumeBySegment(recent)

	return data, nil
}

// weeklyVolume buckets total workout volume into trailing whole weeks,
// oldest bucket first
func weeklyVolume(workouts []store.Workout, now time.Time, weeks int) []float64 {
	buckets := make([]float64, weeks)
	start := now.AddDate(0, 0, -weeks*7)

	for _, w := range workouts {
		if w.Date.Before(start) || w.Date.After(now) {
			continue
		}
		idx := int(w.Date.Sub(start).Hours() / (24 * 7))
		if idx < 0 || idx >= weeks {
			continue
		}
		for _, stats := range w.BodyParts {
			buckets[idx] += stats.VolumeLbs
		}
	}

	return buckets
}

// InsightsData is everything the insights screen renders
type InsightsData struct {
	Correlations []analysis.CorrelationResult
	Balance      []analysis.BalanceAnalysis
	Insights     []analysis.Insight
}

// Insights runs the correlation engine over the full history and derives
// balance and insight views from it
func (q *QueryService) Insights() (*InsightsData, error) {
	measurements, err := q.store.ListMeasurements()
	if err != nil {
		return nil, err
	}
	workouts, err := q.store.ListWorkouts()
	if err != nil {
		return nil, err
	}

	data := &InsightsData{}
	data.Correlations = analysis.Correlate(measurements, workouts, q.windowWeeks)
	if len(data.Correlations) > 0 {
		data.Balance = analysis.AnalyzeBalance(data.Correlations[0])
	}
	data.Insights = analysis.AllInsights(data.Correlations)

	return data, nil
}

// RecordsData is everything the records screen renders
type RecordsData struct {
	Lifting []analysis.ExerciseMilestones
	Running map[string][]analysis.RunningMilestone
}

// Records computes lifting and running personal records from the full
// stored history
func (q *QueryService) Records() (*RecordsData, error) {
	workouts, err := q.store.ListWorkouts()
	if err != nil {
		return nil, err
	}
	activities, err := q.store.ListActivities()
	if err != nil {
		return nil, err
	}

	return &RecordsData{
		Lifting: analysis.LiftingMilestones(workouts),
		Running: analysis.RunningMilestones(activities),
	}, nil
}
