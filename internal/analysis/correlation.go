package analysis

import (
	"math"
	"sort"
	"time"

	"fitdash/internal/store"
)

// Correlation window constraints
const (
	// DefaultWindowWeeks is the analysis window when none is configured
	DefaultWindowWeeks = 4

	// minWindowDays rejects windows too short to separate signal from
	// measurement noise
	minWindowDays = 14

	// noiseFloorLbs rejects windows whose summed absolute segment change
	// is indistinguishable from scale noise
	noiseFloorLbs = 0.3
)

// SegmentEfficiency relates training volume to muscle gained for one segment.
// Ratios are 0 when the segment lost mass or didn't change: "not applicable"
// rather than a negative rate.
type SegmentEfficiency struct {
	Segment           store.Segment
	VolumePerLbGained float64
	SetsPerLbGained   float64
	WeeksToGain1Lb    float64
}

// MeasurementPeriod is the time window between two consecutive measurements
type MeasurementPeriod struct {
	StartDate    time.Time
	EndDate      time.Time
	Start        store.Measurement
	End          store.Measurement
	DurationDays int
}

// CorrelationResult joins one measurement window with the training volume
// inside it and the efficiency metrics derived from both
type CorrelationResult struct {
	Period          MeasurementPeriod
	Workouts        []store.Workout
	MuscleChanges   []SegmentChange
	VolumeBySegment map[store.Segment]SegmentVolume
	Efficiency      []SegmentEfficiency

	// TotalMuscleGain sums positive segment changes only; losses are not
	// netted against gains
	TotalMuscleGain float64
	TotalVolume     float64
	TotalSets       int
}

// Correlate pairs consecutive measurements into windows, joins each with the
// workouts inside it, and computes efficiency metrics. Windows shorter than
// the duration floor, longer than twice the configured window, or below the
// change noise floor are silently skipped. Results are sorted by end date
// descending (most recent first).
func Correlate(measurements []store.Measurement, workouts []store.Workout, windowWeeks int) []CorrelationResult {
	if windowWeeks <= 0 {
		windowWeeks = DefaultWindowWeeks
	}

	sorted := make([]store.Measurement, len(measurements))
	copy(sorted, measurements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if len(sorted) < 2 {
		return nil
	}

	maxWindowDays := windowWeeks * 7 * 2
	var results []CorrelationResult

	for i := 1; i < len(sorted); i++ {
		start := sorted[i-1]
		end := sorted[i]

		durationDays := daysBetween(start.Date, end.Date)
		if durationDays < minWindowDays || durationDays > maxWindowDays {
			continue
		}

		changes := MuscleChanges(start, end)

		var totalChange float64
		for _, c := range changes {
			totalChange += math.Abs(c.ChangeLbs)
		}
		if totalChange < noiseFloorLbs {
			continue
		}

		var periodWorkouts []store.Workout
		for _, w := range workouts {
			if !w.Date.Before(start.Date) && !w.Date.After(end.Date) {
				periodWorkouts = append(periodWorkouts, w)
			}
		}

		volumeBySegment := AggregateVolumeBySegment(periodWorkouts)
		efficiency := calculateEfficiency(changes, volumeBySegment, durationDays)

		var totalMuscleGain float64
		for _, c := range changes {
			if c.ChangeLbs > 0 {
				totalMuscleGain += c.ChangeLbs
			}
		}

		var totalVolume float64
		var totalSets int
		for _, sv := range volumeBySegment {
			totalVolume += sv.TotalVolumeLbs
			totalSets += sv.TotalSets
		}

		results = append(results, CorrelationResult{
			Period: MeasurementPeriod{
				StartDate:    start.Date,
				EndDate:      end.Date,
				Start:        start,
				End:          end,
				DurationDays: durationDays,
			},
			Workouts:        periodWorkouts,
			MuscleChanges:   changes,
			VolumeBySegment: volumeBySegment,
			Efficiency:      efficiency,
			TotalMuscleGain: totalMuscleGain,
			TotalVolume:     totalVolume,
			TotalSets:       totalSets,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Period.EndDate.After(results[j].Period.EndDate)
	})

	return results
}

// calculateEfficiency computes volume-to-gain ratios for the five individual
// segments. Segments that lost mass or stayed flat get zero ratios.
func calculateEfficiency(changes []SegmentChange, volumeBySegment map[store.Segment]SegmentVolume, durationDays int) []SegmentEfficiency {
	durationWeeks := float64(durationDays) / 7

	efficiency := make([]SegmentEfficiency, 0, len(changes))
	for _, change := range changes {
		e := SegmentEfficiency{Segment: change.Segment}

		if change.ChangeLbs > 0 {
			sv := volumeBySegment[change.Segment]
			e.VolumePerLbGained = sv.TotalVolumeLbs / change.ChangeLbs
			e.SetsPerLbGained = float64(sv.TotalSets) / change.ChangeLbs
			e.WeeksToGain1Lb = durationWeeks / change.ChangeLbs
		}

		efficiency = append(efficiency, e)
	}

	return efficiency
}

// daysBetween returns the number of calendar days from a to b
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
