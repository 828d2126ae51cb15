package analysis

import "fitdash/internal/store"

// SegmentChange is the lean-mass delta for one segment between two measurements
type SegmentChange struct {
	Segment       store.Segment
	StartLbs      float64
	EndLbs        float64
	ChangeLbs     float64
	ChangePercent float64
}

// MuscleChanges computes per-segment lean-mass deltas between two
// measurements ordered start before end. Covers the five individual
// segments only; zero start mass yields a zero percent change.
func MuscleChanges(start, end store.Measurement) []SegmentChange {
	changes := make([]SegmentChange, 0, len(store.IndividualSegments))

	for _, seg := range store.IndividualSegments {
		startLbs := start.SegmentLean(seg)
		endLbs := end.SegmentLean(seg)
		changeLbs := endLbs - startLbs

		var changePercent float64
		if startLbs > 0 {
			changePercent = changeLbs / startLbs * 100
		}

		changes = append(changes, SegmentChange{
			Segment:       seg,
			StartLbs:      startLbs,
			EndLbs:        endLbs,
			ChangeLbs:     changeLbs,
			ChangePercent: changePercent,
		})
	}

	return changes
}
