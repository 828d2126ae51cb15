package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"fitdash/internal/store"
)

// InsightSeverity orders insights from informational to actionable
type InsightSeverity string

const (
	SeverityInfo    InsightSeverity = "info"
	SeverityTip     InsightSeverity = "tip"
	SeverityWarning InsightSeverity = "warning"
)

// InsightType identifies which generator produced an insight
type InsightType string

const (
	InsightVolumeEfficiency InsightType = "volume-efficiency"
	InsightBodyPartBalance  InsightType = "body-part-balance"
	InsightPeriodization    InsightType = "periodization"
)

// Insight is a human-readable, severity-tagged recommendation derived from
// correlation and balance analysis
type Insight struct {
	Type           InsightType
	Severity       InsightSeverity
	Title          string
	Description    string
	Recommendation string
	Metrics        map[string]float64
}

// Volume-efficiency category boundaries in volume-lbs per lb of muscle gained
const (
	efficiencyExcellent = 25000.0
	efficiencyGood      = 40000.0
	efficiencyAverage   = 60000.0
)

// Gain-rate thresholds in lbs per week
const (
	strongGainRate = 0.5
	lowGainRate    = 0.1
)

// VolumeEfficiencyInsights rates a window's volume-to-gain ratio and its
// weekly gain rate. Windows with no gain or no volume produce nothing.
func VolumeEfficiencyInsights(result CorrelationResult) []Insight {
	var insights []Insight

	if result.TotalMuscleGain == 0 || result.TotalVolume == 0 {
		return insights
	}

	volumePerLb := result.TotalVolume / result.TotalMuscleGain

	var category string
	var severity InsightSeverity
	var detail string

	switch {
	case volumePerLb < efficiencyExcellent:
		category = "Excellent"
		severity = SeverityInfo
		detail = "This is excellent efficiency, typical of newer lifters."
	case volumePerLb < efficiencyGood:
		category = "Good"
		severity = SeverityTip
		detail = "This is good intermediate-level efficiency."
	case volumePerLb < efficiencyAverage:
		category = "Average"
		severity = SeverityTip
		detail = "This is typical for advanced lifters."
	default:
		category = "Needs Improvement"
		severity = SeverityWarning
		detail = "Consider increasing nutrition (calories/protein) or volume frequency."
	}

	insights = append(insights, Insight{
		Type:     InsightVolumeEfficiency,
		Severity: severity,
		Title:    "Efficiency: " + category,
		Description: fmt.Sprintf(
			"You gained %.1f lbs of muscle with %.0fk lbs of volume (%.0fk lbs per lb gained). %s",
			result.TotalMuscleGain, result.TotalVolume/1000, volumePerLb/1000, detail),
		Metrics: map[string]float64{
			"volumePerLbGained": volumePerLb,
			"totalMuscleGain":   result.TotalMuscleGain,
			"totalVolume":       result.TotalVolume,
		},
	})

	durationWeeks := float64(result.Period.DurationDays) / 7
	gainPerWeek := result.TotalMuscleGain / durationWeeks

	if gainPerWeek > strongGainRate {
		insights = append(insights, Insight{
			Type:     InsightVolumeEfficiency,
			Severity: SeverityInfo,
			Title:    "Strong Muscle Gain Rate",
			Description: fmt.Sprintf(
				"You're gaining %.2f lbs per week. This is a strong rate; maintain your current training and nutrition.",
				gainPerWeek),
			Metrics: map[string]float64{"gainPerWeek": gainPerWeek},
		})
	} else if gainPerWeek < lowGainRate {
		insights = append(insights, Insight{
			Type:     InsightVolumeEfficiency,
			Severity: SeverityWarning,
			Title:    "Low Muscle Gain Rate",
			Description: fmt.Sprintf(
				"You're gaining %.2f lbs per week. Consider increasing calories, protein, or training volume to improve muscle growth.",
				gainPerWeek),
			Metrics: map[string]float64{"gainPerWeek": gainPerWeek},
		})
	}

	return insights
}

// BalanceInsights flags under/overperforming segments and left/right
// asymmetry in muscle-gain share
func BalanceInsights(balance []BalanceAnalysis) []Insight {
	var insights []Insight

	var under, over []BalanceAnalysis
	bySegment := make(map[store.Segment]BalanceAnalysis, len(balance))
	for _, b := range balance {
		bySegment[b.Segment] = b
		switch b.Status {
		case BalanceUnderperforming:
			under = append(under, b)
		case BalanceOverperforming:
			over = append(over, b)
		}
	}

	if len(under) > 0 {
		names := segmentList(under)
		insights = append(insights, Insight{
			Type:     InsightBodyPartBalance,
			Severity: SeverityWarning,
			Title:    "Body Parts Underperforming",
			Description: fmt.Sprintf(
				"%s received %.0f%% of volume but only %.0f%% of muscle growth. Try increasing %s training frequency or intensity.",
				names, under[0].VolumeShare, under[0].MuscleGainShare, names),
			Recommendation: fmt.Sprintf("Add 1-2 extra sets per week for %s.", names),
			Metrics: map[string]float64{
				"volumeShare":     under[0].VolumeShare,
				"muscleGainShare": under[0].MuscleGainShare,
				"balanceRatio":    under[0].BalanceRatio,
			},
		})
	}

	if len(over) > 0 {
		names := segmentList(over)
		insights = append(insights, Insight{
			Type:     InsightBodyPartBalance,
			Severity: SeverityInfo,
			Title:    "Body Parts Overperforming",
			Description: fmt.Sprintf(
				"%s received %.0f%% of volume but delivered %.0f%% of muscle growth. Excellent response to training.",
				names, over[0].VolumeShare, over[0].MuscleGainShare),
			Metrics: map[string]float64{
				"volumeShare":     over[0].VolumeShare,
				"muscleGainShare": over[0].MuscleGainShare,
				"balanceRatio":    over[0].BalanceRatio,
			},
		})
	}

	insights = append(insights, sideImbalanceInsights(bySegment)...)

	return insights
}

// sideGapPoints is the left/right muscle-gain-share gap, in percentage
// points, that triggers a unilateral-work suggestion
const sideGapPoints = 5.0

func sideImbalanceInsights(bySegment map[store.Segment]BalanceAnalysis) []Insight {
	var insights []Insight

	pairs := []struct {
		left, right store.Segment
		limb        string
		title       string
	}{
		{store.SegmentLeftArm, store.SegmentRightArm, "arm", "Arm"},
		{store.SegmentLeftLeg, store.SegmentRightLeg, "leg", "Leg"},
	}

	for _, p := range pairs {
		left, okL := bySegment[p.left]
		right, okR := bySegment[p.right]
		if !okL || !okR {
			continue
		}

		gap := math.Abs(left.MuscleGainShare - right.MuscleGainShare)
		if gap <= sideGapPoints {
			continue
		}

		insights = append(insights, Insight{
			Type:     InsightBodyPartBalance,
			Severity: SeverityTip,
			Title:    fmt.Sprintf("Left-Right %s Imbalance", p.title),
			Description: fmt.Sprintf(
				"Left and right %s muscle growth differs by %.1f%%. Consider single-%s exercises to even out growth.",
				p.limb, gap, p.limb),
		})
	}

	return insights
}

// Periodization thresholds
const (
	declineTriggerPercent = -30.0
	improveTriggerPercent = 20.0
	inconsistencyCV       = 0.5
	inconsistencyMeanGain = 0.5
	nextPhaseMinWeeks     = 4.0
	nextPhaseMinGain      = 0.5
)

// PeriodizationInsights looks across chronological correlation windows for
// trends in total muscle gain: decline, improvement, inconsistency, and
// readiness for a new training phase. Needs at least two windows.
func PeriodizationInsights(results []CorrelationResult) []Insight {
	var insights []Insight

	if len(results) < 2 {
		return insights
	}

	sorted := make([]CorrelationResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Period.EndDate.Before(sorted[j].Period.EndDate)
	})

	// Trailing up-to-3 windows drive the trend comparison
	recent := sorted
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	gains := make([]float64, len(recent))
	for i, r := range recent {
		gains[i] = r.TotalMuscleGain
	}

	first := gains[0]
	last := gains[len(gains)-1]
	var changePercent float64
	if first > 0 {
		changePercent = (last - first) / first * 100
	}

	if changePercent < declineTriggerPercent {
		insights = append(insights, Insight{
			Type:     InsightPeriodization,
			Severity: SeverityWarning,
			Title:    "Declining Muscle Gain",
			Description: fmt.Sprintf(
				"Your muscle gain rate has declined %.0f%% over the past %d periods. Consider a deload week, increase training volume, or adjust nutrition.",
				math.Abs(changePercent), len(sorted)),
			Recommendation: "Implement a deload week (reduce volume 40-50%) followed by 1-2 weeks of progressive overload.",
			Metrics: map[string]float64{
				"recentGain":     last,
				"previousGain":   first,
				"declinePercent": changePercent,
			},
		})
	}

	if changePercent > improveTriggerPercent && first > 0 {
		insights = append(insights, Insight{
			Type:     InsightPeriodization,
			Severity: SeverityInfo,
			Title:    "Improving Muscle Gain",
			Description: fmt.Sprintf(
				"Your muscle gain rate has improved %.0f%% over the past %d periods. Your current approach is working well.",
				changePercent, len(sorted)),
			Metrics: map[string]float64{
				"recentGain":         last,
				"previousGain":       first,
				"improvementPercent": changePercent,
			},
		})
	}

	mean := 0.0
	for _, g := range gains {
		mean += g
	}
	mean /= float64(len(gains))

	variance := 0.0
	for _, g := range gains {
		variance += (g - mean) * (g - mean)
	}
	variance /= float64(len(gains))
	stdDev := math.Sqrt(variance)

	if mean > inconsistencyMeanGain && stdDev/mean > inconsistencyCV {
		insights = append(insights, Insight{
			Type:     InsightPeriodization,
			Severity: SeverityTip,
			Title:    "Inconsistent Muscle Gain",
			Description: fmt.Sprintf(
				"Your muscle gain varies widely (%.2f lbs std dev). Ensure consistency in nutrition, sleep, and training frequency.",
				stdDev),
		})
	}

	lastPeriod := sorted[len(sorted)-1]
	durationWeeks := float64(lastPeriod.Period.DurationDays) / 7
	if durationWeeks >= nextPhaseMinWeeks && lastPeriod.TotalMuscleGain > nextPhaseMinGain {
		insights = append(insights, Insight{
			Type:     InsightPeriodization,
			Severity: SeverityInfo,
			Title:    "Ready for Next Phase",
			Description: fmt.Sprintf(
				"You've completed a %.0f-week training cycle with positive results. Consider progressive overload: increase weight 5%%, volume 10%%, or change exercise selection.",
				durationWeeks),
			Recommendation: "Add 1-2 more reps, 5 lbs more weight, or 2-3 more sets to your main lifts for the next cycle.",
		})
	}

	return insights
}

// AllInsights runs every generator over a set of correlation windows. The
// most recent window drives the efficiency and balance insights; the full
// chronological set drives periodization.
func AllInsights(results []CorrelationResult) []Insight {
	if len(results) == 0 {
		return nil
	}

	// Correlate returns most recent first
	latest := results[0]

	var insights []Insight
	insights = append(insights, VolumeEfficiencyInsights(latest)...)
	insights = append(insights, BalanceInsights(AnalyzeBalance(latest))...)
	insights = append(insights, PeriodizationInsights(results)...)
	return insights
}

// SegmentDisplayName renders a segment identifier for humans
func SegmentDisplayName(seg store.Segment) string {
	switch seg {
	case store.SegmentLeftArm:
		return "Left Arm"
	case store.SegmentRightArm:
		return "Right Arm"
	case store.SegmentTrunk:
		return "Trunk"
	case store.SegmentLeftLeg:
		return "Left Leg"
	case store.SegmentRightLeg:
		return "Right Leg"
	case store.SegmentArms:
		return "Arms"
	case store.SegmentLegs:
		return "Legs"
	}
	return string(seg)
}

func segmentList(analyses []BalanceAnalysis) string {
	names := make([]string, len(analyses))
	for i, a := range analyses {
		names[i] = SegmentDisplayName(a.Segment)
	}
	return strings.Join(names, ", ")
}
