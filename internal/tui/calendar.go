package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitdash/internal/calendar"
	"fitdash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Grid geometry. Each day column is two terminal cells wide; the grid sits
// below the app header, nav bar, and screen title.
const (
	calColumnWidth = 2
	calGridWidth   = calendar.DefaultLabelWidth + calendar.TotalColumns*calColumnWidth
	calGridHeight  = 36 // 12 month rows of three lines each

	gridOriginX = 0
	gridOriginY = 6
)

// CalendarModel is the year-at-a-glance calendar screen. Events are drawn as
// colored strips on their month rows and can be dragged to reschedule: grab
// the middle of a strip to move it, either end to resize it.
type CalendarModel struct {
	session  *calendar.Session
	year     int
	grid     calendar.GridLayout
	loaded   bool
	err      error
	status   string
	selected *store.CalendarEvent
}

// NewCalendarModel creates a new calendar model for the current year
func NewCalendarModel(session *calendar.Session) CalendarModel {
	year := time.Now().Year()
	return CalendarModel{
		session: session,
		year:    year,
		grid:    calendar.NewGridLayout(year, calGridWidth, calGridHeight),
	}
}

// Init initializes the calendar screen
func (m CalendarModel) Init() tea.Cmd {
	return m.loadEvents
}

func (m CalendarModel) loadEvents() tea.Msg {
	err := m.session.Refresh(context.Background())
	return calendarEventsMsg{err: err}
}

type calendarEventsMsg struct {
	err error
}

// Update handles messages
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarEventsMsg:
		m.loaded = true
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.loadEvents
		case "[", "left":
			m.setYear(m.year - 1)
		case "]", "right":
			m.setYear(m.year + 1)
		case "esc":
			if _, dragging := m.session.Dragging(); dragging {
				m.session.Cancel()
				m.status = "Drag cancelled"
			} else {
				m.selected = nil
			}
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *CalendarModel) setYear(year int) {
	m.year = year
	m.grid = calendar.NewGridLayout(year, calGridWidth, calGridHeight)
	m.session.Cancel()
}

func (m CalendarModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	gx := msg.X - gridOriginX
	gy := msg.Y - gridOriginY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.startDrag(gx, gy)

	case tea.MouseActionMotion:
		if _, dragging := m.session.Dragging(); dragging {
			m.session.MoveTo(m.grid, gx, gy)
		}

	case tea.MouseActionRelease:
		outcome, event, err := m.session.Release(context.Background())
		switch {
		case err != nil:
			m.status = errorStyle.Render(fmt.Sprintf("Reschedule failed: %v", err))
		case outcome == calendar.OutcomeClicked:
			m.selected = &event
			m.status = ""
		case outcome == calendar.OutcomeCommitted:
			m.selected = nil
			m.status = fmt.Sprintf("Rescheduled %q", event.Title)
		}
	}

	return m, nil
}

// startDrag hit-tests the pressed cell against the event strips and begins a
// drag. Pressing a strip's first column resizes its start, the last column
// its end, anywhere between moves the whole event.
func (m *CalendarModel) startDrag(gx, gy int) {
	row, lane, ok := m.laneAt(gy)
	if !ok || gx < calendar.DefaultLabelWidth {
		return
	}
	column := (gx - calendar.DefaultLabelWidth) / calColumnWidth

	strips := calendar.AssignLanes(row, m.year, m.session.Events())
	for _, strip := range strips {
		if strip.Lane != lane || column < strip.StartColumn || column > strip.EndColumn {
			continue
		}

		dragType := calendar.DragMove
		if strip.EndColumn > strip.StartColumn {
			switch column {
			case strip.StartColumn:
				dragType = calendar.DragResizeStart
			case strip.EndColumn:
				dragType = calendar.DragResizeEnd
			}
		}

		m.session.Start(strip.Event.ID, dragType)
		return
	}
}

// laneAt maps a grid y cell to its month row and lane index. The first line
// of each month row holds the day numbers; lanes start on the second.
func (m CalendarModel) laneAt(gy int) (calendar.MonthRow, int, bool) {
	for _, row := range m.grid.Rows {
		if gy >= row.Top && gy < row.Top+row.Height {
			lane := gy - row.Top - 1
			if lane < 0 {
				return calendar.MonthRow{}, 0, false
			}
			return row, lane, true
		}
	}
	return calendar.MonthRow{}, 0, false
}

// View renders the calendar screen
func (m CalendarModel) View() string {
	if !m.loaded {
		return "\n  Loading calendar..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var sections []string
	sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Calendar %d", m.year)))
	sections = append(sections, m.renderGrid())
	sections = append(sections, m.renderLegend())

	if m.selected != nil {
		sections = append(sections, m.renderSelected())
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	help := statusStyle.Render("Drag events to reschedule, drag an edge to resize, click to open. '['/']' change year, 'r' refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderGrid draws the twelve month rows: a day-number line followed by the
// event lanes. Dragged events render at their previewed dates.
func (m CalendarModel) renderGrid() string {
	preview := m.previewEvents()
	today := time.Now()
	draggedID, dragging := m.session.Dragging()

	var lines []string
	for _, row := range m.grid.Rows {
		lines = append(lines, m.renderDayLine(row, today))

		strips := calendar.AssignLanes(row, m.year, preview)
		for lane := 0; lane < row.Height-1; lane++ {
			lines = append(lines, m.renderLaneLine(row, strips, lane, draggedID, dragging))
		}
	}

	return strings.Join(lines, "\n")
}

// previewEvents returns the event list with the in-flight drag delta applied
func (m CalendarModel) previewEvents() []store.CalendarEvent {
	events := m.session.Events()
	preview := make([]store.CalendarEvent, len(events))
	for i, e := range events {
		start, end := m.session.PreviewRange(e)
		e.StartDate = start
		e.EndDate = end
		preview[i] = e
	}
	return preview
}

func (m CalendarModel) renderDayLine(row calendar.MonthRow, today time.Time) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("%-*s", calendar.DefaultLabelWidth, row.Month.String()[:3])))

	dayStyle := lipgloss.NewStyle().Foreground(mutedColor)
	todayStyle := lipgloss.NewStyle().Foreground(textColor).Bold(true).Underline(true)

	for col := 0; col < calendar.TotalColumns; col++ {
		day := col - row.Offset + 1
		if day < 1 || day > row.DaysInMonth {
			b.WriteString(strings.Repeat(" ", calColumnWidth))
			continue
		}

		cell := fmt.Sprintf("%*d", calColumnWidth, day)
		isToday := today.Year() == m.year && today.Month() == row.Month && today.Day() == day
		if isToday {
			b.WriteString(todayStyle.Render(cell))
		} else {
			b.WriteString(dayStyle.Render(cell))
		}
	}

	return b.String()
}

func (m CalendarModel) renderLaneLine(row calendar.MonthRow, strips []calendar.EventStrip, lane int, draggedID string, dragging bool) string {
	// cells[column] holds the rendered text for that day column
	cells := make([]string, calendar.TotalColumns)
	for i := range cells {
		cells[i] = strings.Repeat(" ", calColumnWidth)
	}

	for _, strip := range strips {
		if strip.Lane != lane {
			continue
		}

		style, ok := categoryStyles[strip.Event.Category]
		if !ok {
			style = categoryStyles[store.CategoryOther]
		}
		if dragging && strip.Event.ID == draggedID {
			style = style.Bold(true)
		}

		label := stripCells(strip, calColumnWidth)
		for col := strip.StartColumn; col <= strip.EndColumn && col < calendar.TotalColumns; col++ {
			cells[col] = style.Render(label[col-strip.StartColumn])
		}
	}

	return strings.Repeat(" ", calendar.DefaultLabelWidth) + strings.Join(cells, "")
}

// stripCells lays the event title over a bar spanning the strip's width and
// chops it into one cell string per day column
func stripCells(strip calendar.EventStrip, colWidth int) []string {
	columns := strip.EndColumn - strip.StartColumn + 1
	width := columns * colWidth

	runes := []rune(strip.Event.Title)
	if len(runes) > width {
		runes = runes[:width]
	}
	for len(runes) < width {
		runes = append(runes, '▒')
	}

	cells := make([]string, columns)
	for i := 0; i < columns; i++ {
		cells[i] = string(runes[i*colWidth : (i+1)*colWidth])
	}
	return cells
}

func (m CalendarModel) renderLegend() string {
	var parts []string
	for _, cat := range store.EventCategories {
		parts = append(parts, categoryStyles[cat].Render("▒ "+categoryLabel(cat)))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func categoryLabel(cat store.EventCategory) string {
	switch cat {
	case store.CategoryDeepWork:
		return "Deep Work"
	case store.CategoryShip:
		return "Ship"
	case store.CategoryFitness:
		return "Fitness"
	case store.CategoryLearn:
		return "Learn"
	case store.CategoryLife:
		return "Life"
	default:
		return "Other"
	}
}

func (m CalendarModel) renderSelected() string {
	e := m.selected
	title := cardTitleStyle.Render(e.Title)

	style, ok := categoryStyles[e.Category]
	if !ok {
		style = categoryStyles[store.CategoryOther]
	}

	lines := []string{
		RenderMetric("Dates", fmt.Sprintf("%s - %s",
			e.StartDate.Format("Jan 2"), e.EndDate.Format("Jan 2")), ""),
		RenderMetric("Category", style.Render(categoryLabel(e.Category)), ""),
	}
	if e.Notes != "" {
		lines = append(lines, RenderMetric("Notes", e.Notes, ""))
	}
	lines = append(lines, "")
	lines = append(lines, helpDescStyle.Render("esc to close"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
