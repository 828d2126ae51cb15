package calendar

import (
	"testing"
	"time"

	"fitdash/internal/store"
)

func TestNewGridLayoutRows(t *testing.T) {
	g := NewGridLayout(2026, 4+TotalColumns*2, 24)

	// January 2026 starts on a Thursday
	jan := g.Rows[0]
	if jan.Offset != 4 {
		t.Errorf("January offset = %d, want 4", jan.Offset)
	}
	if jan.DaysInMonth != 31 {
		t.Errorf("January days = %d, want 31", jan.DaysInMonth)
	}

	feb := g.Rows[1]
	if feb.DaysInMonth != 28 {
		t.Errorf("February 2026 days = %d, want 28", feb.DaysInMonth)
	}

	// Rows tile the height without gaps
	top := 0
	for i, row := range g.Rows {
		if row.Top != top {
			t.Errorf("row %d top = %d, want %d", i, row.Top, top)
		}
		top += row.Height
	}
	if top != 24 {
		t.Errorf("rows cover %d cells of height, want 24", top)
	}
}

func TestDateAtRoundTrip(t *testing.T) {
	g := NewGridLayout(2026, DefaultLabelWidth+TotalColumns, 12)

	dates := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	for _, want := range dates {
		col, ok := g.ColumnOf(want)
		if !ok {
			t.Fatalf("ColumnOf(%v) not in grid", want)
		}
		row := g.Rows[int(want.Month())-1]

		got, ok := g.DateAt(g.LabelWidth+col, row.Top)
		if !ok {
			t.Fatalf("DateAt for %v returned no date", want)
		}
		if !got.Equal(want) {
			t.Errorf("DateAt round trip = %v, want %v", got, want)
		}
	}
}

func TestDateAtRejectsNonDayCells(t *testing.T) {
	g := NewGridLayout(2026, DefaultLabelWidth+TotalColumns, 12)

	// Month label gutter
	if _, ok := g.DateAt(0, 0); ok {
		t.Error("gutter cell mapped to a date")
	}

	// January 2026 starts Thursday: columns 0-3 are offset cells
	if _, ok := g.DateAt(g.LabelWidth, g.Rows[0].Top); ok {
		t.Error("offset cell before day 1 mapped to a date")
	}

	// Column past February's last day
	feb := g.Rows[1]
	pastEnd := feb.Offset + feb.DaysInMonth
	if _, ok := g.DateAt(g.LabelWidth+pastEnd, feb.Top); ok {
		t.Error("cell past month end mapped to a date")
	}

	// Below the last row
	if _, ok := g.DateAt(g.LabelWidth, 100); ok {
		t.Error("cell below the grid mapped to a date")
	}
}

func TestAssignLanesStacksOverlaps(t *testing.T) {
	row := MonthRow{Month: time.March, Offset: 0, DaysInMonth: 31}
	date := func(day int) time.Time {
		return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	}

	events := []store.CalendarEvent{
		{ID: "a", StartDate: date(1), EndDate: date(5)},
		{ID: "b", StartDate: date(3), EndDate: date(8)},
		{ID: "c", StartDate: date(6), EndDate: date(10)},
	}

	strips := AssignLanes(row, 2026, events)
	if len(strips) != 3 {
		t.Fatalf("got %d strips, want 3", len(strips))
	}

	lanes := map[string]int{}
	for _, s := range strips {
		lanes[s.Event.ID] = s.Lane
	}

	if lanes["a"] != 0 {
		t.Errorf("a lane = %d, want 0", lanes["a"])
	}
	if lanes["b"] != 1 {
		t.Errorf("b overlaps a, lane = %d, want 1", lanes["b"])
	}
	// c overlaps b but not a, so it drops back to lane 0
	if lanes["c"] != 0 {
		t.Errorf("c lane = %d, want 0", lanes["c"])
	}

	if got := MaxLanes(strips); got != 2 {
		t.Errorf("MaxLanes = %d, want 2", got)
	}
}

func TestAssignLanesClipsToMonth(t *testing.T) {
	row := MonthRow{Month: time.March, Offset: 0, DaysInMonth: 31}

	events := []store.CalendarEvent{
		{
			ID:        "spans",
			StartDate: time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "elsewhere",
			StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	strips := AssignLanes(row, 2026, events)
	if len(strips) != 1 {
		t.Fatalf("got %d strips, want 1", len(strips))
	}
	if strips[0].StartColumn != 0 {
		t.Errorf("clipped start column = %d, want 0", strips[0].StartColumn)
	}
	if strips[0].EndColumn != 2 {
		t.Errorf("end column = %d, want 2", strips[0].EndColumn)
	}
}
