package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// dateLayout is the calendar-day storage format used across all tables
const dateLayout = "2006-01-02"

// UpsertMeasurement inserts or replaces a measurement by ID
func (db *DB) UpsertMeasurement(m *Measurement) error {
	_, err := db.Exec(`
		INSERT INTO measurements (
			id, date, kind, lean_left_arm, lean_right_arm, lean_trunk,
			lean_left_leg, lean_right_leg, weight_lbs, body_fat_pct
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			kind = excluded.kind,
			lean_left_arm = excluded.lean_left_arm,
			lean_right_arm = excluded.lean_right_arm,
			lean_trunk = excluded.lean_trunk,
			lean_left_leg = excluded.lean_left_leg,
			lean_right_leg = excluded.lean_right_leg,
			weight_lbs = excluded.weight_lbs,
			body_fat_pct = excluded.body_fat_pct
	`,
		m.ID, m.Date.Format(dateLayout), string(m.Kind),
		m.LeanLeftArm, m.LeanRightArm, m.LeanTrunk, m.LeanLeftLeg, m.LeanRightLeg,
		m.WeightLbs, m.BodyFatPct,
	)
	return err
}

// GetMeasurement retrieves a measurement by ID
func (db *DB) GetMeasurement(id string) (*Measurement, error) {
	row := db.QueryRow(`
		SELECT id, date, kind, lean_left_arm, lean_right_arm, lean_trunk,
			lean_left_leg, lean_right_leg, weight_lbs, body_fat_pct
		FROM measurements
		WHERE id = ?
	`, id)

	m, err := scanMeasurement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMeasurementNotFound
	}
	return m, err
}

// ListMeasurements retrieves all measurements ordered by date ascending
func (db *DB) ListMeasurements() ([]Measurement, error) {
	rows, err := db.Query(`
		SELECT id, date, kind, lean_left_arm, lean_right_arm, lean_trunk,
			lean_left_leg, lean_right_leg, weight_lbs, body_fat_pct
		FROM measurements
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, *m)
	}
	return measurements, rows.Err()
}

// DeleteMeasurement removes a measurement by ID
func (db *DB) DeleteMeasurement(id string) error {
	result, err := db.Exec(`DELETE FROM measurements WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row rowScanner) (*Measurement, error) {
	var m Measurement
	var date, kind string

	err := row.Scan(
		&m.ID, &date, &kind, &m.LeanLeftArm, &m.LeanRightArm, &m.LeanTrunk,
		&m.LeanLeftLeg, &m.LeanRightLeg, &m.WeightLbs, &m.BodyFatPct,
	)
	if err != nil {
		return nil, err
	}

	m.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing measurement date %q: %w", date, err)
	}
	m.Kind = MeasurementKind(kind)
	return &m, nil
}
