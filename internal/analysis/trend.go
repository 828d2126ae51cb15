package analysis

import (
	"fmt"
	"time"

	"fitdash/internal/store"
)

// TrendPeriod selects how far back a trend comparison reaches
type TrendPeriod string

const (
	Trend7Days  TrendPeriod = "7"
	Trend30Days TrendPeriod = "30"
	Trend90Days TrendPeriod = "90"
	TrendYTD    TrendPeriod = "YTD"
)

// TrendPeriods lists the selectable periods in display order
var TrendPeriods = []TrendPeriod{Trend7Days, Trend30Days, Trend90Days, TrendYTD}

// Label renders the period for display
func (p TrendPeriod) Label() string {
	if p == TrendYTD {
		return "YTD"
	}
	return string(p) + "d"
}

// cutoff returns the earliest date the period reaches back to
func (p TrendPeriod) cutoff(now time.Time) time.Time {
	if p == TrendYTD {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	days := map[TrendPeriod]int{Trend7Days: 7, Trend30Days: 30, Trend90Days: 90}[p]
	return now.AddDate(0, 0, -days)
}

// ComparisonMeasurement picks the measurement to diff the latest one against
// for a trend period: the newest measurement at or before the period cutoff,
// falling back to the oldest when the whole history is inside the period.
// Measurements must be sorted newest first. Returns nil when there is
// nothing to compare against.
func ComparisonMeasurement(measurements []store.Measurement, period TrendPeriod, now time.Time) *store.Measurement {
	if len(measurements) < 2 {
		return nil
	}

	cutoff := period.cutoff(now)

	for i := 1; i < len(measurements); i++ {
		if !measurements[i].Date.After(cutoff) {
			return &measurements[i]
		}
	}

	return &measurements[len(measurements)-1]
}

// FormatTrendValue renders a signed one-decimal delta; zero renders as a dash
func FormatTrendValue(diff float64) string {
	if diff == 0 {
		return "—"
	}
	if diff > 0 {
		return fmt.Sprintf("+%.1f", diff)
	}
	return fmt.Sprintf("%.1f", diff)
}
