package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertWorkout inserts or replaces a workout together with its body-part
// aggregates and detailed set breakdown
func (db *DB) UpsertWorkout(w *Workout) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO workouts (id, date, title, total_sets, total_reps, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			title = excluded.title,
			total_sets = excluded.total_sets,
			total_reps = excluded.total_reps,
			duration_minutes = excluded.duration_minutes
	`, w.ID, w.Date.Format(dateLayout), w.Title, w.TotalSets, w.TotalReps, w.DurationMinutes)
	if err != nil {
		return fmt.Errorf("upserting workout: %w", err)
	}

	// Replace child rows wholesale
	if _, err := tx.Exec(`DELETE FROM workout_body_parts WHERE workout_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing body parts: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM workout_sets WHERE workout_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing sets: %w", err)
	}

	for bodyPart, stats := range w.BodyParts {
		_, err := tx.Exec(`
			INSERT INTO workout_body_parts (workout_id, body_part, sets, reps, volume_lbs)
			VALUES (?, ?, ?, ?, ?)
		`, w.ID, bodyPart, stats.Sets, stats.Reps, stats.VolumeLbs)
		if err != nil {
			return fmt.Errorf("inserting body part %q: %w", bodyPart, err)
		}
	}

	for _, exercise := range w.Exercises {
		for i, set := range exercise.Sets {
			_, err := tx.Exec(`
				INSERT INTO workout_sets (workout_id, exercise, set_index, weight_lbs, reps, set_type)
				VALUES (?, ?, ?, ?, ?, ?)
			`, w.ID, exercise.Name, i, set.WeightLbs, set.Reps, string(set.Type))
			if err != nil {
				return fmt.Errorf("inserting set: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID including child rows
func (db *DB) GetWorkout(id string) (*Workout, error) {
	row := db.QueryRow(`
		SELECT id, date, title, total_sets, total_reps, duration_minutes
		FROM workouts
		WHERE id = ?
	`, id)

	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := db.loadWorkoutChildren([]*Workout{w}); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkouts retrieves all workouts ordered by date ascending,
// including body-part aggregates and detailed sets
func (db *DB) ListWorkouts() ([]Workout, error) {
	return db.listWorkouts(`
		SELECT id, date, title, total_sets, total_reps, duration_minutes
		FROM workouts
		ORDER BY date ASC, id ASC
	`)
}

// ListWorkoutsBetween retrieves workouts with start <= date <= end, ascending
func (db *DB) ListWorkoutsBetween(start, end time.Time) ([]Workout, error) {
	return db.listWorkouts(`
		SELECT id, date, title, total_sets, total_reps, duration_minutes
		FROM workouts
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`, start.Format(dateLayout), end.Format(dateLayout))
}

func (db *DB) listWorkouts(query string, args ...any) ([]Workout, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []*Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadWorkoutChildren(workouts); err != nil {
		return nil, err
	}

	result := make([]Workout, len(workouts))
	for i, w := range workouts {
		result[i] = *w
	}
	return result, nil
}

// loadWorkoutChildren populates BodyParts and Exercises for the given workouts
func (db *DB) loadWorkoutChildren(workouts []*Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	byID := make(map[string]*Workout, len(workouts))
	placeholders := ""
	args := make([]any, len(workouts))
	for i, w := range workouts {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args[i] = w.ID
		byID[w.ID] = w
		w.BodyParts = make(map[string]BodyPartStats)
	}

	rows, err := db.Query(`
		SELECT workout_id, body_part, sets, reps, volume_lbs
		FROM workout_body_parts
		WHERE workout_id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var workoutID, bodyPart string
		var stats BodyPartStats
		if err := rows.Scan(&workoutID, &bodyPart, &stats.Sets, &stats.Reps, &stats.VolumeLbs); err != nil {
			return err
		}
		if w := byID[workoutID]; w != nil {
			w.BodyParts[bodyPart] = stats
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	setRows, err := db.Query(`
		SELECT workout_id, exercise, weight_lbs, reps, set_type
		FROM workout_sets
		WHERE workout_id IN (`+placeholders+`)
		ORDER BY workout_id, exercise, set_index
	`, args...)
	if err != nil {
		return err
	}
	defer setRows.Close()

	for setRows.Next() {
		var workoutID, exercise, setType string
		var set WorkoutSet
		if err := setRows.Scan(&workoutID, &exercise, &set.WeightLbs, &set.Reps, &setType); err != nil {
			return err
		}
		set.Type = SetType(setType)

		w := byID[workoutID]
		if w == nil {
			continue
		}
		if n := len(w.Exercises); n > 0 && w.Exercises[n-1].Name == exercise {
			w.Exercises[n-1].Sets = append(w.Exercises[n-1].Sets, set)
		} else {
			w.Exercises = append(w.Exercises, ExerciseSets{Name: exercise, Sets: []WorkoutSet{set}})
		}
	}
	return setRows.Err()
}

func scanWorkout(row rowScanner) (*Workout, error) {
	var w Workout
	var date string

	err := row.Scan(&w.ID, &date, &w.Title, &w.TotalSets, &w.TotalReps, &w.DurationMinutes)
	if err != nil {
		return nil, err
	}

	w.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing workout date %q: %w", date, err)
	}
	return &w, nil
}
