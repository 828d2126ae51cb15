package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"fitdash/internal/store"
)

// measurementRecord is one entry in an import file. Dates are calendar
// days; kind is "bia" or "dexa" and defaults to bia.
type measurementRecord struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Kind         string  `json:"kind"`
	LeanLeftArm  float64 `json:"lean_left_arm"`
	LeanRightArm float64 `json:"lean_right_arm"`
	LeanTrunk    float64 `json:"lean_trunk"`
	LeanLeftLeg  float64 `json:"lean_left_leg"`
	LeanRightLeg float64 `json:"lean_right_leg"`
	WeightLbs    float64 `json:"weight_lbs"`
	BodyFatPct   float64 `json:"body_fat_pct"`
}

// ImportMeasurements loads body-composition measurements from a JSON file
// (an array of records) and upserts them into the store. Records without an
// ID get one assigned, so re-importing the same file with IDs is idempotent.
// Returns the number of measurements stored.
func ImportMeasurements(db *store.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []measurementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	stored := 0
	for i, r := range records {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return stored, fmt.Errorf("record %d: parsing date %q: %w", i, r.Date, err)
		}

		kind := store.MeasurementKind(r.Kind)
		switch kind {
		case store.MeasurementBIA, store.MeasurementDEXA:
		case "":
			kind = store.MeasurementBIA
		default:
			return stored, fmt.Errorf("record %d: unknown kind %q", i, r.Kind)
		}

		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}

		m := &store.Measurement{
			ID:           id,
			Date:         date,
			Kind:         kind,
			LeanLeftArm:  r.LeanLeftArm,
			LeanRightArm: r.LeanRightArm,
			LeanTrunk:    r.LeanTrunk,
			LeanLeftLeg:  r.LeanLeftLeg,
			LeanRightLeg: r.LeanRightLeg,
			WeightLbs:    r.WeightLbs,
			BodyFatPct:   r.BodyFatPct,
		}
		if err := db.UpsertMeasurement(m); err != nil {
			return stored, fmt.Errorf("record %d: %w", i, err)
		}
		stored++
	}

	return stored, nil
}
