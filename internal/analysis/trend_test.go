package analysis

import (
	"testing"
	"time"

	"fitdash/internal/store"
)

func TestComparisonMeasurement(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	measurementAt := func(id string, daysAgo int) store.Measurement {
		return store.Measurement{
			ID:   id,
			Date: now.AddDate(0, 0, -daysAgo),
			Kind: store.MeasurementBIA,
		}
	}

	tests := []struct {
		name         string
		measurements []store.Measurement // newest first
		period       TrendPeriod
		want         string // ID, "" for nil
	}{
		{
			name: "newest at or before cutoff wins",
			measurements: []store.Measurement{
				measurementAt("m3", 0),
				measurementAt("m2", 10),
				measurementAt("m1", 40),
			},
			period: Trend7Days,
			want:   "m2",
		},
		{
			name: "entry exactly on cutoff counts",
			measurements: []store.Measurement{
				measurementAt("m3", 0),
				measurementAt("m2", 30),
				measurementAt("m1", 60),
			},
			period: Trend30Days,
			want:   "m2",
		},
		{
			name: "all inside period falls back to oldest",
			measurements: []store.Measurement{
				measurementAt("m3", 0),
				measurementAt("m2", 5),
				measurementAt("m1", 20),
			},
			period: Trend90Days,
			want:   "m1",
		},
		{
			name: "ytd reaches back to january first",
			measurements: []store.Measurement{
				measurementAt("m3", 0),
				{ID: "m2", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
				{ID: "m1", Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
			},
			period: TrendYTD,
			want:   "m2",
		},
		{
			name: "single measurement has nothing to compare",
			measurements: []store.Measurement{
				measurementAt("m1", 3),
			},
			period: Trend7Days,
			want:   "",
		},
		{
			name:         "empty history",
			measurements: nil,
			period:       Trend30Days,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComparisonMeasurement(tt.measurements, tt.period, now)

			if tt.want == "" {
				if got != nil {
					t.Fatalf("ComparisonMeasurement() = %q, want nil", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("ComparisonMeasurement() = nil, want %q", tt.want)
			}
			if got.ID != tt.want {
				t.Errorf("ComparisonMeasurement() = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestFormatTrendValue(t *testing.T) {
	tests := []struct {
		diff float64
		want string
	}{
		{1.25, "+1.2"},
		{-0.8, "-0.8"},
		{0, "—"},
	}

	for _, tt := range tests {
		if got := FormatTrendValue(tt.diff); got != tt.want {
			t.Errorf("FormatTrendValue(%v) = %q, want %q", tt.diff, got, tt.want)
		}
	}
}
