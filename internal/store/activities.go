package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertActivity inserts or replaces a running activity and its mile splits
func (db *DB) UpsertActivity(a *Activity) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO activities (id, date, name, distance_miles, duration_seconds)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			name = excluded.name,
			distance_miles = excluded.distance_miles,
			duration_seconds = excluded.duration_seconds
	`, a.ID, a.Date.Format(dateLayout), a.Name, a.DistanceMiles, a.DurationSeconds)
	if err != nil {
		return fmt.Errorf("upserting activity: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM activity_splits WHERE activity_id = ?`, a.ID); err != nil {
		return fmt.Errorf("clearing splits: %w", err)
	}

	for _, split := range a.Splits {
		_, err := tx.Exec(`
			INSERT INTO activity_splits (activity_id, mile, seconds)
			VALUES (?, ?, ?)
		`, a.ID, split.Mile, split.Seconds)
		if err != nil {
			return fmt.Errorf("inserting split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetActivity retrieves an activity by ID including splits
func (db *DB) GetActivity(id string) (*Activity, error) {
	row := db.QueryRow(`
		SELECT id, date, name, distance_miles, duration_seconds
		FROM activities
		WHERE id = ?
	`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := db.loadSplits([]*Activity{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// ListActivities retrieves all activities ordered by date ascending,
// with splits ordered by mile
func (db *DB) ListActivities() ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, date, name, distance_miles, duration_seconds
		FROM activities
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadSplits(activities); err != nil {
		return nil, err
	}

	result := make([]Activity, len(activities))
	for i, a := range activities {
		result[i] = *a
	}
	return result, nil
}

func (db *DB) loadSplits(activities []*Activity) error {
	if len(activities) == 0 {
		return nil
	}

	byID := make(map[string]*Activity, len(activities))
	placeholders := ""
	args := make([]any, len(activities))
	for i, a := range activities {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args[i] = a.ID
		byID[a.ID] = a
	}

	rows, err := db.Query(`
		SELECT activity_id, mile, seconds
		FROM activity_splits
		WHERE activity_id IN (`+placeholders+`)
		ORDER BY activity_id, mile
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var activityID string
		var split MileSplit
		if err := rows.Scan(&activityID, &split.Mile, &split.Seconds); err != nil {
			return err
		}
		if a := byID[activityID]; a != nil {
			a.Splits = append(a.Splits, split)
		}
	}
	return rows.Err()
}

func scanActivity(row rowScanner) (*Activity, error) {
	var a Activity
	var date string

	err := row.Scan(&a.ID, &date, &a.Name, &a.DistanceMiles, &a.DurationSeconds)
	if err != nil {
		return nil, err
	}

	a.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing activity date %q: %w", date, err)
	}
	return &a, nil
}
