package analysis

import (
	"strings"

	"fitdash/internal/store"
)

// Split ratios for body parts that load more than one segment
const (
	shoulderTrunkShare = 0.6
	shoulderArmsShare  = 0.4
)

// bodyPartSegments maps a lifting body-part tag to the segments it loads.
// Tags not listed here contribute no volume anywhere.
var bodyPartSegments = map[string][]store.Segment{
	"chest":      {store.SegmentTrunk},
	"back":       {store.SegmentTrunk},
	"core":       {store.SegmentTrunk},
	"shoulders":  {store.SegmentTrunk, store.SegmentArms},
	"biceps":     {store.SegmentLeftArm, store.SegmentRightArm},
	"triceps":    {store.SegmentLeftArm, store.SegmentRightArm},
	"forearms":   {store.SegmentLeftArm, store.SegmentRightArm},
	"quadriceps": {store.SegmentLeftLeg, store.SegmentRightLeg},
	"hamstrings": {store.SegmentLeftLeg, store.SegmentRightLeg},
	"glutes":     {store.SegmentLeftLeg, store.SegmentRightLeg},
	"calves":     {store.SegmentLeftLeg, store.SegmentRightLeg},
}

// SegmentVolume accumulates training load attributed to one segment
type SegmentVolume struct {
	Segment        store.Segment
	TotalSets      int
	TotalReps      int
	TotalVolumeLbs float64
	WorkoutCount   int
}

// distributeVolume splits a body part's volume across the segments it loads.
// The returned map contains exactly the segments the body part maps to
// (aggregates included); unrecognized tags yield an empty map. Only volume
// is split fractionally; sets and reps are credited whole to every key.
func distributeVolume(bodyPart string, volume float64) map[store.Segment]float64 {
	tag := strings.ToLower(bodyPart)
	segments := bodyPartSegments[tag]
	if len(segments) == 0 {
		return nil
	}

	// Shoulders split 60% trunk, 40% arms
	if tag == "shoulders" {
		return map[store.Segment]float64{
			store.SegmentTrunk:    volume * shoulderTrunkShare,
			store.SegmentLeftArm:  volume * shoulderArmsShare / 2,
			store.SegmentRightArm: volume * shoulderArmsShare / 2,
			store.SegmentArms:     volume * shoulderArmsShare,
		}
	}

	// Paired body parts split evenly between left and right
	if segments[0] == store.SegmentLeftArm {
		return map[store.Segment]float64{
			store.SegmentLeftArm:  volume / 2,
			store.SegmentRightArm: volume / 2,
			store.SegmentArms:     volume,
		}
	}
	if segments[0] == store.SegmentLeftLeg {
		return map[store.Segment]float64{
			store.SegmentLeftLeg:  volume / 2,
			store.SegmentRightLeg: volume / 2,
			store.SegmentLegs:     volume,
		}
	}

	// Single segment
	return map[store.Segment]float64{segments[0]: volume}
}

// AggregateVolumeBySegment folds workouts into per-segment totals.
// A workout touching a segment through several body parts counts once
// toward that segment's workout count.
func AggregateVolumeBySegment(workouts []store.Workout) map[store.Segment]SegmentVolume {
	result := make(map[store.Segment]SegmentVolume, len(store.AllSegments))
	seen := make(map[store.Segment]map[string]struct{}, len(store.AllSegments))
	for _, seg := range store.AllSegments {
		result[seg] = SegmentVolume{Segment: seg}
		seen[seg] = make(map[string]struct{})
	}

	for _, workout := range workouts {
		for bodyPart, stats := range workout.BodyParts {
			for seg, volume := range distributeVolume(bodyPart, stats.VolumeLbs) {
				sv := result[seg]
				sv.TotalVolumeLbs += volume
				sv.TotalSets += stats.Sets
				sv.TotalReps += stats.Reps
				result[seg] = sv
				seen[seg][workout.ID] = struct{}{}
			}
		}
	}

	for _, seg := range store.AllSegments {
		sv := result[seg]
		sv.WorkoutCount = len(seen[seg])
		result[seg] = sv
	}

	return result
}
