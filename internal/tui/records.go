package tui

import (
	"fmt"
	"strings"

	"fitdash/internal/analysis"
	"fitdash/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RecordsModel is the personal records screen model
type RecordsModel struct {
	queryService *service.QueryService
	data         *service.RecordsData
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewRecordsModel creates a new records model
func NewRecordsModel(qs *service.QueryService, width, height int) RecordsModel {
	m := RecordsModel{
		queryService: qs,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the records screen
func (m RecordsModel) Init() tea.Cmd {
	return m.loadData
}

func (m RecordsModel) loadData() tea.Msg {
	data, err := m.queryService.Records()
	return recordsDataMsg{data: data, err: err}
}

type recordsDataMsg struct {
	data *service.RecordsData
	err  error
}

// Update handles messages
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the records screen
func (m RecordsModel) View() string {
	if m.loading {
		return "\n  Loading records..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m RecordsModel) renderContent() string {
	if m.data == nil || (len(m.data.Lifting) == 0 && len(m.data.Running) == 0) {
		return "No records yet. Press 's' to sync your training history."
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Personal Records"))
	sections = append(sections, "")

	if len(m.data.Lifting) > 0 {
		sections = append(sections, m.renderLifting())
	}
	if len(m.data.Running) > 0 {
		sections = append(sections, m.renderRunning())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RecordsModel) renderLifting() string {
	var lines []string

	lines = append(lines, m.sectionHeader("Lifting"))
	lines = append(lines, m.liftingTableHeader())

	for _, ex := range m.data.Lifting {
		lines = append(lines, m.formatLiftingRow(ex))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m RecordsModel) renderRunning() string {
	var lines []string

	lines = append(lines, m.sectionHeader("Running"))

	any := false
	for _, dist := range analysis.RaceDistances {
		milestones := m.data.Running[dist.Key]
		if len(milestones) == 0 {
			continue
		}
		any = true

		lines = append(lines, lipgloss.NewStyle().Foreground(primaryColor).Render("  "+dist.Label))
		for _, ms := range milestones {
			lines = append(lines, fmt.Sprintf("    %d. %8s  %s  %s",
				ms.Rank,
				analysis.FormatRaceTime(ms.TimeSeconds),
				ms.Date.Format("Jan 2, 2006"),
				helpDescStyle.Render(truncateName(ms.ActivityName, 30)),
			))
		}
		lines = append(lines, "")
	}

	if !any {
		lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("  No runs with mile splits yet."))
	}

	return strings.Join(lines, "\n")
}

func (m RecordsModel) sectionHeader(title string) string {
	titleLen := len([]rune(title))
	dividerLen := 60 - titleLen - 4
	if dividerLen < 0 {
		dividerLen = 0
	}
	divider := strings.Repeat("─", dividerLen)
	return sectionTitleStyle.Render(fmt.Sprintf("── %s %s", title, divider))
}

func (m RecordsModel) liftingTableHeader() string {
	header := fmt.Sprintf("  %-24s  %14s  %10s  %12s  %14s",
		"Exercise", "Heaviest", "Est 1RM", "Best Set", "Best Session")
	return lipgloss.NewStyle().Foreground(primaryColor).Render(header)
}

func (m RecordsModel) formatLiftingRow(ex analysis.ExerciseMilestones) string {
	heaviest := "-"
	if ex.HeaviestWeight.Value > 0 {
		heaviest = fmt.Sprintf("%.0f lb x %d", ex.HeaviestWeight.Value, ex.HeaviestWeight.Reps)
	}
	oneRM := "-"
	if ex.Best1RM.Value > 0 {
		oneRM = fmt.Sprintf("%.0f lb", ex.Best1RM.Value)
	}
	bestSet := "-"
	if ex.BestSetVolume.Value > 0 {
		bestSet = fmt.Sprintf("%.0f lb", ex.BestSetVolume.Value)
	}
	bestSession := "-"
	if ex.BestSessionVolume.Value > 0 {
		bestSession = fmt.Sprintf("%.0f lb", ex.BestSessionVolume.Value)
	}

	return fmt.Sprintf("  %-24s  %14s  %10s  %12s  %14s",
		truncateName(ex.Exercise, 24),
		heaviest,
		oneRM,
		bestSet,
		bestSession,
	)
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
