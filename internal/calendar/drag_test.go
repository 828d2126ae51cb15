package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitdash/internal/store"
)

type fakePersistence struct {
	events      []store.CalendarEvent
	updateCalls int
	updateErr   error
}

func (f *fakePersistence) UpdateEventRange(ctx context.Context, id string, newStart, newEnd time.Time) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			f.events[i].StartDate = newStart
			f.events[i].EndDate = newEnd
			return nil
		}
	}
	return store.ErrEventNotFound
}

func (f *fakePersistence) ListEvents(ctx context.Context, owner string) ([]store.CalendarEvent, error) {
	out := make([]store.CalendarEvent, len(f.events))
	copy(out, f.events)
	return out, nil
}

func date(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func newTestSession(t *testing.T) (*Session, *fakePersistence) {
	t.Helper()
	persist := &fakePersistence{
		events: []store.CalendarEvent{
			{ID: "e1", StartDate: date(10), EndDate: date(12), Title: "Build week"},
		},
	}
	s := NewSession(persist, "")
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return s, persist
}

func TestDragMoveCommits(t *testing.T) {
	s, persist := newTestSession(t)

	if !s.Start("e1", DragMove) {
		t.Fatal("Start returned false for known event")
	}
	s.Move(date(13))

	outcome, _, err := s.Release(context.Background())
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}

	e := persist.events[0]
	if !e.StartDate.Equal(date(13)) || !e.EndDate.Equal(date(15)) {
		t.Errorf("moved to [%v, %v], want [Mar 13, Mar 15]", e.StartDate, e.EndDate)
	}

	if _, active := s.Dragging(); active {
		t.Error("session still active after release")
	}
}

func TestZeroDeltaIsClickNotUpdate(t *testing.T) {
	s, persist := newTestSession(t)

	s.Start("e1", DragMove)
	s.Move(date(10)) // same day as the event start

	outcome, event, err := s.Release(context.Background())
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if outcome != OutcomeClicked {
		t.Errorf("outcome = %v, want clicked", outcome)
	}
	if event.ID != "e1" {
		t.Errorf("clicked event = %q, want e1", event.ID)
	}
	if persist.updateCalls != 0 {
		t.Errorf("persistence called %d times on a zero-delta release, want 0", persist.updateCalls)
	}
}

func TestResizeStartClampedToEnd(t *testing.T) {
	s, persist := newTestSession(t)

	s.Start("e1", DragResizeStart)
	s.Move(date(20)) // past the Mar 12 end date

	outcome, _, err := s.Release(context.Background())
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}

	e := persist.events[0]
	if e.StartDate.After(e.EndDate) {
		t.Errorf("committed start %v after end %v", e.StartDate, e.EndDate)
	}
	if !e.StartDate.Equal(date(12)) {
		t.Errorf("start clamped to %v, want Mar 12", e.StartDate)
	}
	if !e.EndDate.Equal(date(12)) {
		t.Errorf("end = %v, want Mar 12 unchanged", e.EndDate)
	}
}

func TestResizeEndClampedToStart(t *testing.T) {
	s, persist := newTestSession(t)

	s.Start("e1", DragResizeEnd)
	s.Move(date(2)) // before the Mar 10 start date

	outcome, _, err := s.Release(context.Background())
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", outcome)
	}

	e := persist.events[0]
	if e.EndDate.Before(e.StartDate) {
		t.Errorf("committed end %v before start %v", e.EndDate, e.StartDate)
	}
	if !e.EndDate.Equal(date(10)) {
		t.Errorf("end clamped to %v, want Mar 10", e.EndDate)
	}
}

func TestResizeEndExtends(t *testing.T) {
	s, persist := newTestSession(t)

	s.Start("e1", DragResizeEnd)
	s.Move(date(15))

	if _, _, err := s.Release(context.Background()); err != nil {
		t.Fatalf("Release: %v", err)
	}

	e := persist.events[0]
	if !e.StartDate.Equal(date(10)) || !e.EndDate.Equal(date(15)) {
		t.Errorf("resized to [%v, %v], want [Mar 10, Mar 15]", e.StartDate, e.EndDate)
	}
}

func TestCancelDiscardsPreview(t *testing.T) {
	s, persist := newTestSession(t)

	s.Start("e1", DragMove)
	s.Move(date(20))
	s.Cancel()

	if persist.updateCalls != 0 {
		t.Errorf("persistence called %d times after cancel, want 0", persist.updateCalls)
	}
	if _, active := s.Dragging(); active {
		t.Error("session still active after cancel")
	}

	// Releasing after cancel is a no-op
	outcome, _, err := s.Release(context.Background())
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if outcome != OutcomeNone {
		t.Errorf("outcome after cancel = %v, want none", outcome)
	}
}

func TestCommitFailureKeepsOriginalDates(t *testing.T) {
	s, persist := newTestSession(t)
	persist.updateErr = errors.New("database locked")

	s.Start("e1", DragMove)
	s.Move(date(14))

	outcome, _, err := s.Release(context.Background())
	if err == nil {
		t.Fatal("expected error from failed commit")
	}
	if outcome != OutcomeNone {
		t.Errorf("outcome = %v, want none on failure", outcome)
	}

	// In-memory list still holds the original range
	e := s.Events()[0]
	if !e.StartDate.Equal(date(10)) || !e.EndDate.Equal(date(12)) {
		t.Errorf("events mutated to [%v, %v] despite failed commit", e.StartDate, e.EndDate)
	}
	if _, active := s.Dragging(); active {
		t.Error("session still active after failed release")
	}
}

func TestPreviewRangeAppliesDelta(t *testing.T) {
	s, _ := newTestSession(t)

	s.Start("e1", DragMove)
	s.Move(date(11))

	start, end := s.PreviewRange(s.Events()[0])
	if !start.Equal(date(11)) || !end.Equal(date(13)) {
		t.Errorf("preview = [%v, %v], want [Mar 11, Mar 13]", start, end)
	}

	// Other events render their stored dates
	other := store.CalendarEvent{ID: "e2", StartDate: date(1), EndDate: date(2)}
	start, end = s.PreviewRange(other)
	if !start.Equal(date(1)) || !end.Equal(date(2)) {
		t.Errorf("unrelated event preview = [%v, %v], want stored dates", start, end)
	}
}

func TestMoveToIgnoresNonDayCells(t *testing.T) {
	s, _ := newTestSession(t)
	g := NewGridLayout(2026, DefaultLabelWidth+TotalColumns, 12)

	s.Start("e1", DragMove)

	marchRow := g.Rows[2]
	col, _ := g.ColumnOf(date(14))
	s.MoveTo(g, g.LabelWidth+col, marchRow.Top)

	// Pointer wanders into the gutter; preview stays at Mar 14
	s.MoveTo(g, 0, marchRow.Top)

	start, _ := s.PreviewRange(s.Events()[0])
	if !start.Equal(date(14)) {
		t.Errorf("preview start = %v, want Mar 14 retained", start)
	}
}
