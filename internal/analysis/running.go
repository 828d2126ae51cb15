package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fitdash/internal/store"
)

// RaceDistance is a canonical race distance with its length in miles
type RaceDistance struct {
	Key   string
	Label string
	Miles float64
}

// RaceDistances lists the canonical distances in ascending order
var RaceDistances = []RaceDistance{
	{"1mi", "1 Mile", 1},
	{"2mi", "2 Miles", 2},
	{"5k", "5K", 3.10686},
	{"5mi", "5 Miles", 5},
	{"10k", "10K", 6.21371},
	{"10mi", "10 Miles", 10},
	{"half", "Half Marathon", 13.1094},
	{"marathon", "Marathon", 26.2188},
}

// RunningMilestone is one of the top-3 fastest estimated times for a
// canonical distance
type RunningMilestone struct {
	Distance     RaceDistance
	Rank         int
	TimeSeconds  float64
	Date         time.Time
	ActivityID   string
	ActivityName string
}

// RunningMilestones estimates, for each canonical distance, the fastest time
// within every activity long enough to cover it, then keeps the top 3 per
// distance with ranks 1 to 3. Results are grouped by distance key.
func RunningMilestones(activities []store.Activity) map[string][]RunningMilestone {
	estimates := make(map[string][]RunningMilestone, len(RaceDistances))

	for _, dist := range RaceDistances {
		for _, activity := range activities {
			if activity.DistanceMiles < dist.Miles {
				continue
			}
			seconds, ok := estimateSplitTime(activity.Splits, dist.Miles)
			if !ok {
				continue
			}
			estimates[dist.Key] = append(estimates[dist.Key], RunningMilestone{
				Distance:     dist,
				TimeSeconds:  seconds,
				Date:         activity.Date,
				ActivityID:   activity.ID,
				ActivityName: activity.Name,
			})
		}
	}

	for key, list := range estimates {
		sort.Slice(list, func(i, j int) bool {
			return list[i].TimeSeconds < list[j].TimeSeconds
		})
		if len(list) > 3 {
			list = list[:3]
		}
		for i := range list {
			list[i].Rank = i + 1
		}
		estimates[key] = list
	}

	return estimates
}

// estimateSplitTime sums whole-mile split durations up to the target distance
// and extrapolates the fractional remainder at that final mile's pace.
// Returns false when the splits don't reach the target.
func estimateSplitTime(splits []store.MileSplit, miles float64) (float64, bool) {
	if len(splits) == 0 {
		return 0, false
	}

	wholeMiles := int(math.Floor(miles))
	remainder := miles - float64(wholeMiles)

	needed := wholeMiles
	if remainder > 0 {
		needed++
	}
	if len(splits) < needed {
		return 0, false
	}

	// Splits are ordered by mile index starting at 1
	var total float64
	for i := 0; i < wholeMiles; i++ {
		total += splits[i].Seconds
	}
	if remainder > 0 {
		total += remainder * splits[wholeMiles].Seconds
	}

	return total, true
}

// FormatRaceTime renders seconds as h:mm:ss or m:ss
func FormatRaceTime(seconds float64) string {
	total := int(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
