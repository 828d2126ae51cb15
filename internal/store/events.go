package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateEvent inserts a new calendar event, assigning an ID if empty
func (db *DB) CreateEvent(ctx context.Context, e *CalendarEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO calendar_events (id, owner, start_date, end_date, title, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.ID, e.Owner, e.StartDate.Format(dateLayout), e.EndDate.Format(dateLayout),
		e.Title, string(e.Category), e.Notes, e.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetEvent retrieves a calendar event by ID
func (db *DB) GetEvent(ctx context.Context, id string) (*CalendarEvent, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, owner, start_date, end_date, title, category, notes, created_at
		FROM calendar_events
		WHERE id = ?
	`, id)

	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	return e, err
}

// ListEvents retrieves all events for an owner ordered by start date.
// An empty owner lists events for all owners.
func (db *DB) ListEvents(ctx context.Context, owner string) ([]CalendarEvent, error) {
	query := `
		SELECT id, owner, start_date, end_date, title, category, notes, created_at
		FROM calendar_events
	`
	var args []any
	if owner != "" {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY start_date ASC, created_at ASC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// UpdateEventRange moves an event to a new inclusive [start, end] span
func (db *DB) UpdateEventRange(ctx context.Context, id string, newStart, newEnd time.Time) error {
	if newEnd.Before(newStart) {
		return fmt.Errorf("invalid range: end %s before start %s",
			newEnd.Format(dateLayout), newStart.Format(dateLayout))
	}

	result, err := db.ExecContext(ctx, `
		UPDATE calendar_events SET start_date = ?, end_date = ? WHERE id = ?
	`, newStart.Format(dateLayout), newEnd.Format(dateLayout), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// DeleteEvent removes a calendar event by ID
func (db *DB) DeleteEvent(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

func scanEvent(row rowScanner) (*CalendarEvent, error) {
	var e CalendarEvent
	var start, end, category, createdAt string

	err := row.Scan(&e.ID, &e.Owner, &start, &end, &e.Title, &category, &e.Notes, &createdAt)
	if err != nil {
		return nil, err
	}

	e.StartDate, err = time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parsing event start date %q: %w", start, err)
	}
	e.EndDate, err = time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parsing event end date %q: %w", end, err)
	}
	e.Category = EventCategory(category)

	// created_at may come from either RFC3339 writes or SQLite's default
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		e.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	}
	return &e, nil
}
