package strava

import "time"

// MetersPerMile converts Strava's metric distances to miles
const MetersPerMile = 1609.344

// Activity represents a Strava activity summary from the API
type Activity struct {
	ID             int64     `json:"id"`
	Athlete        Athlete   `json:"athlete"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	SportType      string    `json:"sport_type"`
	StartDate      time.Time `json:"start_date"`
	StartDateLocal time.Time `json:"start_date_local"`
	Timezone       string    `json:"timezone"`
	Distance       float64   `json:"distance"`     // meters
	MovingTime     int       `json:"moving_time"`  // seconds
	ElapsedTime    int       `json:"elapsed_time"` // seconds
	AverageSpeed   float64   `json:"average_speed"` // m/s
}

// IsRun reports whether the activity is a running activity
func (a Activity) IsRun() bool {
	return a.Type == "Run" || a.SportType == "Run" || a.SportType == "TrailRun"
}

// DistanceMiles converts the activity distance to miles
func (a Activity) DistanceMiles() float64 {
	return a.Distance / MetersPerMile
}

// Athlete represents a Strava athlete (minimal info in activity response)
type Athlete struct {
	ID int64 `json:"id"`
}

// DetailedActivity is the full activity record, including per-mile splits
type DetailedActivity struct {
	Activity
	SplitsStandard []Split `json:"splits_standard"`
}

// Split is one standard (mile) split within an activity
type Split struct {
	Split       int     `json:"split"`        // 1-based index
	Distance    float64 `json:"distance"`     // meters
	ElapsedTime int     `json:"elapsed_time"` // seconds
	MovingTime  int     `json:"moving_time"`  // seconds
}

// FullMileSplits returns the moving-time durations of the complete mile
// splits in order. Strava's final split covers the leftover partial mile,
// so any split much shorter than a mile is dropped.
func (d DetailedActivity) FullMileSplits() []float64 {
	var splits []float64
	for _, s := range d.SplitsStandard {
		// Tolerate GPS jitter on nominally full miles
		if s.Distance < MetersPerMile*0.98 {
			continue
		}
		splits = append(splits, float64(s.MovingTime))
	}
	return splits
}
