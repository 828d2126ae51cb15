package analysis

import (
	"testing"

	"fitdash/internal/store"
)

func balanceInput(volumes map[store.Segment]float64, changes map[store.Segment]float64) CorrelationResult {
	result := CorrelationResult{
		VolumeBySegment: make(map[store.Segment]SegmentVolume),
	}
	for seg, v := range volumes {
		result.VolumeBySegment[seg] = SegmentVolume{Segment: seg, TotalVolumeLbs: v}
	}
	for _, seg := range store.IndividualSegments {
		result.MuscleChanges = append(result.MuscleChanges, SegmentChange{
			Segment:   seg,
			ChangeLbs: changes[seg],
		})
	}
	return result
}

func TestAnalyzeBalanceStatusBoundaries(t *testing.T) {
	// Equal volume everywhere; gains tuned to land ratios exactly on and
	// around the thresholds. Each segment gets 20% volume share; with a
	// 5 lb total gain, 1 lb of gain is a 20% gain share and ratio 1.0.
	tests := []struct {
		name     string
		gainLbs  float64
		want     BalanceStatus
		totalGap float64
	}{
		{"ratio exactly 1.2 stays balanced", 1.2, BalanceBalanced, 0},
		{"ratio above 1.2 overperforms", 1.25, BalanceOverperforming, 0},
		{"ratio exactly 0.8 stays balanced", 0.8, BalanceBalanced, 0},
		{"ratio below 0.8 underperforms", 0.75, BalanceUnderperforming, 0},
		{"ratio 1.0 is balanced", 1.0, BalanceBalanced, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volumes := map[store.Segment]float64{}
			for _, seg := range store.IndividualSegments {
				volumes[seg] = 1000
			}
			// leftArm carries the probed gain; the rest share the remainder
			// evenly so total gain is exactly 5 lbs
			rest := (5.0 - tt.gainLbs) / 4
			changes := map[store.Segment]float64{
				store.SegmentLeftArm:  tt.gainLbs,
				store.SegmentRightArm: rest,
				store.SegmentTrunk:    rest,
				store.SegmentLeftLeg:  rest,
				store.SegmentRightLeg: rest,
			}

			analyses := AnalyzeBalance(balanceInput(volumes, changes))

			for _, a := range analyses {
				if a.Segment != store.SegmentLeftArm {
					continue
				}
				if !closeTo(a.BalanceRatio, tt.gainLbs) {
					t.Fatalf("balanceRatio = %v, want %v", a.BalanceRatio, tt.gainLbs)
				}
				if a.Status != tt.want {
					t.Errorf("status = %q, want %q", a.Status, tt.want)
				}
			}
		})
	}
}

func TestAnalyzeBalanceZeroVolume(t *testing.T) {
	volumes := map[store.Segment]float64{
		store.SegmentTrunk: 1000,
	}
	changes := map[store.Segment]float64{
		store.SegmentTrunk:   1.0,
		store.SegmentLeftArm: 0.5,
	}

	analyses := AnalyzeBalance(balanceInput(volumes, changes))

	for _, a := range analyses {
		if a.Segment == store.SegmentLeftArm && a.BalanceRatio != 0 {
			t.Errorf("zero-volume segment ratio = %v, want 0", a.BalanceRatio)
		}
	}
}

func TestAnalyzeBalanceNegativeGainClamped(t *testing.T) {
	volumes := map[store.Segment]float64{}
	for _, seg := range store.IndividualSegments {
		volumes[seg] = 1000
	}
	changes := map[store.Segment]float64{
		store.SegmentTrunk:   2.0,
		store.SegmentLeftArm: -1.0,
	}

	analyses := AnalyzeBalance(balanceInput(volumes, changes))

	for _, a := range analyses {
		if a.Segment == store.SegmentLeftArm && a.MuscleGainShare != 0 {
			t.Errorf("losing segment gain share = %v, want 0", a.MuscleGainShare)
		}
		if a.Segment == store.SegmentTrunk && !closeTo(a.MuscleGainShare, 100) {
			t.Errorf("trunk gain share = %v, want 100", a.MuscleGainShare)
		}
	}
}
