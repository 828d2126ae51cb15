package analysis

import "fitdash/internal/store"

// BalanceStatus tags how a segment's muscle gain compares to the training
// volume it received
type BalanceStatus string

const (
	BalanceUnderperforming BalanceStatus = "underperforming"
	BalanceBalanced        BalanceStatus = "balanced"
	BalanceOverperforming  BalanceStatus = "overperforming"
)

// Status thresholds: strictly above/below, so a ratio of exactly 1.2 or 0.8
// is still balanced
const (
	overperformRatio  = 1.2
	underperformRatio = 0.8
)

// BalanceAnalysis compares one segment's share of training volume against its
// share of muscle gain within a single correlation window
type BalanceAnalysis struct {
	Segment         store.Segment
	VolumeShare     float64
	MuscleGainShare float64
	BalanceRatio    float64
	Status          BalanceStatus
}

// AnalyzeBalance produces one BalanceAnalysis per individual segment for a
// correlation window. Shares are percentages over the five individual
// segments; the arms/legs aggregates are excluded so nothing is double
// counted.
func AnalyzeBalance(result CorrelationResult) []BalanceAnalysis {
	var totalVolume float64
	for _, seg := range store.IndividualSegments {
		totalVolume += result.VolumeBySegment[seg].TotalVolumeLbs
	}

	var totalGain float64
	for _, c := range result.MuscleChanges {
		if c.ChangeLbs > 0 {
			totalGain += c.ChangeLbs
		}
	}

	analyses := make([]BalanceAnalysis, 0, len(store.IndividualSegments))
	for _, c := range result.MuscleChanges {
		a := BalanceAnalysis{Segment: c.Segment, Status: BalanceBalanced}

		if totalVolume > 0 {
			a.VolumeShare = result.VolumeBySegment[c.Segment].TotalVolumeLbs / totalVolume * 100
		}

		gain := c.ChangeLbs
		if gain < 0 {
			gain = 0
		}
		if totalGain > 0 {
			a.MuscleGainShare = gain / totalGain * 100
		}

		if a.VolumeShare > 0 {
			a.BalanceRatio = a.MuscleGainShare / a.VolumeShare
		}

		switch {
		case a.BalanceRatio > overperformRatio:
			a.Status = BalanceOverperforming
		case a.BalanceRatio < underperformRatio:
			a.Status = BalanceUnderperforming
		}

		analyses = append(analyses, a)
	}

	return analyses
}
