package calendar

import (
	"context"
	"fmt"
	"time"

	"fitdash/internal/store"
)

// DragType distinguishes the three gesture kinds
type DragType int

const (
	DragMove DragType = iota
	DragResizeStart
	DragResizeEnd
)

// Persistence is the storage boundary the drag session commits through
type Persistence interface {
	UpdateEventRange(ctx context.Context, id string, newStart, newEnd time.Time) error
	ListEvents(ctx context.Context, owner string) ([]store.CalendarEvent, error)
}

// Outcome reports what a released drag did
type Outcome int

const (
	// OutcomeNone means there was no active drag to release
	OutcomeNone Outcome = iota
	// OutcomeClicked means the pointer never moved to another day; the
	// event should be opened, not mutated
	OutcomeClicked
	// OutcomeCommitted means the new date range was persisted
	OutcomeCommitted
)

// Session is the single active drag interaction over a set of calendar
// events. Only one drag can be in flight at a time; starting a new one
// replaces any stale state.
type Session struct {
	persist Persistence
	owner   string
	events  []store.CalendarEvent

	active    bool
	dragType  DragType
	original  store.CalendarEvent
	deltaDays int
}

// NewSession creates a drag session over the owner's events. Call Refresh
// to load them.
func NewSession(persist Persistence, owner string) *Session {
	return &Session{persist: persist, owner: owner}
}

// Refresh reloads the in-memory event list from persistence
func (s *Session) Refresh(ctx context.Context) error {
	events, err := s.persist.ListEvents(ctx, s.owner)
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}
	s.events = events
	return nil
}

// Events returns the current in-memory event list
func (s *Session) Events() []store.CalendarEvent {
	return s.events
}

// Dragging reports whether a drag is in flight, and for which event
func (s *Session) Dragging() (string, bool) {
	if !s.active {
		return "", false
	}
	return s.original.ID, true
}

// Start begins a drag on an event. Any previous preview delta is discarded.
// Returns false if the event is unknown.
func (s *Session) Start(eventID string, dragType DragType) bool {
	for _, e := range s.events {
		if e.ID == eventID {
			s.active = true
			s.dragType = dragType
			s.original = e
			s.deltaDays = 0
			return true
		}
	}
	return false
}

// Move recomputes the preview delta from the day the pointer is over.
// Resize deltas are clamped so the previewed range always keeps
// start <= end. A no-op when no drag is active.
func (s *Session) Move(target time.Time) {
	if !s.active {
		return
	}

	switch s.dragType {
	case DragMove:
		s.deltaDays = daysBetween(s.original.StartDate, target)

	case DragResizeStart:
		delta := daysBetween(s.original.StartDate, target)
		max := daysBetween(s.original.StartDate, s.original.EndDate)
		if delta > max {
			delta = max
		}
		s.deltaDays = delta

	case DragResizeEnd:
		delta := daysBetween(s.original.EndDate, target)
		min := daysBetween(s.original.EndDate, s.original.StartDate)
		if delta < min {
			delta = min
		}
		s.deltaDays = delta
	}
}

// MoveTo is Move driven by grid cell coordinates. Cells outside any day
// (gutter, offset, past month end) leave the preview unchanged.
func (s *Session) MoveTo(grid GridLayout, x, y int) {
	target, ok := grid.DateAt(x, y)
	if !ok {
		return
	}
	s.Move(target)
}

// PreviewRange returns the event's dates with the in-flight delta applied,
// for rendering the drag preview. Falls back to the stored dates when the
// event isn't the one being dragged.
func (s *Session) PreviewRange(e store.CalendarEvent) (time.Time, time.Time) {
	if !s.active || e.ID != s.original.ID {
		return e.StartDate, e.EndDate
	}
	start, end := s.appliedRange()
	return start, end
}

// Release ends the drag. A zero delta is a click: the event is returned for
// opening and persistence is never touched. Otherwise the new range is
// committed and the event list refreshed. The session returns to idle on
// every path; a failed commit leaves the stored dates untouched and is
// reported to the caller.
func (s *Session) Release(ctx context.Context) (Outcome, store.CalendarEvent, error) {
	if !s.active {
		return OutcomeNone, store.CalendarEvent{}, nil
	}

	event := s.original
	defer s.reset()

	if s.deltaDays == 0 {
		return OutcomeClicked, event, nil
	}

	newStart, newEnd := s.appliedRange()
	if err := s.persist.UpdateEventRange(ctx, event.ID, newStart, newEnd); err != nil {
		return OutcomeNone, event, fmt.Errorf("updating event range: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		return OutcomeCommitted, event, err
	}
	return OutcomeCommitted, event, nil
}

// Cancel discards the drag without touching persistence
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.active = false
	s.dragType = DragMove
	s.original = store.CalendarEvent{}
	s.deltaDays = 0
}

// appliedRange applies the preview delta per gesture: move shifts both
// dates, resizes shift only their edge
func (s *Session) appliedRange() (time.Time, time.Time) {
	start := s.original.StartDate
	end := s.original.EndDate

	switch s.dragType {
	case DragMove:
		start = start.AddDate(0, 0, s.deltaDays)
		end = end.AddDate(0, 0, s.deltaDays)
	case DragResizeStart:
		start = start.AddDate(0, 0, s.deltaDays)
	case DragResizeEnd:
		end = end.AddDate(0, 0, s.deltaDays)
	}

	return start, end
}

// daysBetween counts calendar days from a to b, negative when b precedes a
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
