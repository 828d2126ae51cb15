// Package calendar models a year-at-a-glance event grid and the drag
// interactions that reschedule events on it. Twelve month rows share a
// 37-column day grid (offset for the weekday the month starts on), with a
// label gutter on the left. The geometry maps pointer cells to calendar
// dates and back; the drag session turns pointer gestures into committed
// date-range changes.
package calendar

import (
	"sort"
	"time"

	"fitdash/internal/store"
)

// TotalColumns is 31 days plus up to 6 leading weekday-offset cells, enough
// for any month to start on any weekday
const TotalColumns = 37

// DefaultLabelWidth is the month-name gutter width in cells
const DefaultLabelWidth = 4

// MonthRow is the geometry of one month's row within the grid
type MonthRow struct {
	Month       time.Month
	Offset      int // weekday of day 1, 0=Sunday
	DaysInMonth int
	Top         int // first y cell of the row, inclusive
	Height      int
}

// GridLayout positions twelve month rows inside a rectangle of terminal
// cells. X grows right, Y grows down, origin at the grid's top-left.
type GridLayout struct {
	Year       int
	Width      int
	LabelWidth int
	Rows       [12]MonthRow
}

// NewGridLayout lays out a year grid in a width x height cell rectangle.
// Row heights divide the vertical space evenly; any remainder goes to the
// earliest rows.
func NewGridLayout(year, width, height int) GridLayout {
	g := GridLayout{Year: year, Width: width, LabelWidth: DefaultLabelWidth}

	rowHeight := height / 12
	if rowHeight < 1 {
		rowHeight = 1
	}
	extra := height - rowHeight*12
	if extra < 0 {
		extra = 0
	}

	top := 0
	for i := 0; i < 12; i++ {
		first := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		h := rowHeight
		if i < extra {
			h++
		}
		g.Rows[i] = MonthRow{
			Month:       first.Month(),
			Offset:      int(first.Weekday()),
			DaysInMonth: daysInMonth(year, first.Month()),
			Top:         top,
			Height:      h,
		}
		top += h
	}

	return g
}

// columnWidth is the width of one day column in cells
func (g GridLayout) columnWidth() int {
	w := (g.Width - g.LabelWidth) / TotalColumns
	if w < 1 {
		w = 1
	}
	return w
}

// DateAt inverts the grid geometry: locate the month row containing y, then
// the day column from the x offset past the label gutter. Returns false for
// the gutter, offset cells before day 1, and cells past the month's end.
func (g GridLayout) DateAt(x, y int) (time.Time, bool) {
	if x < g.LabelWidth {
		return time.Time{}, false
	}

	row, ok := g.rowAt(y)
	if !ok {
		return time.Time{}, false
	}

	column := (x - g.LabelWidth) / g.columnWidth()
	if column >= TotalColumns {
		return time.Time{}, false
	}

	day := column - row.Offset
	if day < 0 || day >= row.DaysInMonth {
		return time.Time{}, false
	}

	return time.Date(g.Year, row.Month, day+1, 0, 0, 0, 0, time.UTC), true
}

// ColumnOf returns the grid column for a date, or false if the date falls
// outside the grid's year
func (g GridLayout) ColumnOf(date time.Time) (int, bool) {
	if date.Year() != g.Year {
		return 0, false
	}
	row := g.Rows[int(date.Month())-1]
	return row.Offset + date.Day() - 1, true
}

func (g GridLayout) rowAt(y int) (MonthRow, bool) {
	for _, row := range g.Rows {
		if y >= row.Top && y < row.Top+row.Height {
			return row, true
		}
	}
	return MonthRow{}, false
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EventStrip is one event's horizontal placement within a month row.
// Columns are inclusive grid columns; Lane is the vertical stacking slot
// for overlapping events.
type EventStrip struct {
	Event       store.CalendarEvent
	Lane        int
	StartColumn int
	EndColumn   int
}

// AssignLanes places a month's events into horizontal strips, stacking
// overlapping spans into parallel lanes. Events are considered in start-date
// order, longer spans first on ties, and each takes the lowest free lane.
// Events not touching the month are skipped; spans are clipped to it.
func AssignLanes(row MonthRow, year int, events []store.CalendarEvent) []EventStrip {
	monthStart := time.Date(year, row.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, row.Month, row.DaysInMonth, 0, 0, 0, 0, time.UTC)

	sorted := make([]store.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		di := sorted[i].EndDate.Sub(sorted[i].StartDate)
		dj := sorted[j].EndDate.Sub(sorted[j].StartDate)
		return di > dj
	})

	// occupied[lane][column]
	var occupied []map[int]bool
	var strips []EventStrip

	for _, e := range sorted {
		if e.EndDate.Before(monthStart) || e.StartDate.After(monthEnd) {
			continue
		}

		start := e.StartDate
		if start.Before(monthStart) {
			start = monthStart
		}
		end := e.EndDate
		if end.After(monthEnd) {
			end = monthEnd
		}

		startCol := row.Offset + start.Day() - 1
		endCol := row.Offset + end.Day() - 1

		lane := 0
		for {
			if lane == len(occupied) {
				occupied = append(occupied, make(map[int]bool))
			}
			free := true
			for c := startCol; c <= endCol; c++ {
				if occupied[lane][c] {
					free = false
					break
				}
			}
			if free {
				break
			}
			lane++
		}
		for c := startCol; c <= endCol; c++ {
			occupied[lane][c] = true
		}

		strips = append(strips, EventStrip{
			Event:       e,
			Lane:        lane,
			StartColumn: startCol,
			EndColumn:   endCol,
		})
	}

	return strips
}

// MaxLanes reports how many stacking lanes a set of strips needs
func MaxLanes(strips []EventStrip) int {
	max := 0
	for _, s := range strips {
		if s.Lane+1 > max {
			max = s.Lane + 1
		}
	}
	return max
}
