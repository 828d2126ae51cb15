package service

import (
	"os"
	"path/filepath"
	"testing"

	"fitdash/internal/store"
)

func TestImportMeasurements(t *testing.T) {
	db := store.NewTestDB(t)

	path := filepath.Join(t.TempDir(), "measurements.json")
	content := `[
		{"id": "dexa-1", "date": "2026-01-15", "kind": "dexa",
		 "lean_left_arm": 8.4, "lean_right_arm": 8.6, "lean_trunk": 61.2,
		 "lean_left_leg": 20.1, "lean_right_leg": 20.3,
		 "weight_lbs": 185.5, "body_fat_pct": 16.2},
		{"date": "2026-02-01",
		 "lean_left_arm": 8.5, "lean_right_arm": 8.7, "lean_trunk": 61.8,
		 "lean_left_leg": 20.2, "lean_right_leg": 20.4}
	]`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	n, err := ImportMeasurements(db, path)
	if err != nil {
		t.Fatalf("ImportMeasurements: %v", err)
	}
	if n != 2 {
		t.Errorf("stored %d measurements, want 2", n)
	}

	got, err := db.GetMeasurement("dexa-1")
	if err != nil {
		t.Fatalf("GetMeasurement: %v", err)
	}
	if got.Kind != store.MeasurementDEXA {
		t.Errorf("Kind = %q, want dexa", got.Kind)
	}
	if got.LeanTrunk != 61.2 {
		t.Errorf("LeanTrunk = %v, want 61.2", got.LeanTrunk)
	}

	list, err := db.ListMeasurements()
	if err != nil {
		t.Fatalf("ListMeasurements: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d measurements, want 2", len(list))
	}
	// Missing kind defaults to bia; missing ID gets assigned
	if list[1].Kind != store.MeasurementBIA {
		t.Errorf("defaulted kind = %q, want bia", list[1].Kind)
	}
	if list[1].ID == "" {
		t.Error("missing ID was not assigned")
	}
}

func TestImportMeasurementsRejectsBadInput(t *testing.T) {
	db := store.NewTestDB(t)
	dir := t.TempDir()

	badDate := filepath.Join(dir, "bad-date.json")
	os.WriteFile(badDate, []byte(`[{"date": "Jan 15", "lean_trunk": 60}]`), 0600)
	if _, err := ImportMeasurements(db, badDate); err == nil {
		t.Error("expected error for unparseable date")
	}

	badKind := filepath.Join(dir, "bad-kind.json")
	os.WriteFile(badKind, []byte(`[{"date": "2026-01-15", "kind": "caliper"}]`), 0600)
	if _, err := ImportMeasurements(db, badKind); err == nil {
		t.Error("expected error for unknown kind")
	}

	if _, err := ImportMeasurements(db, filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
