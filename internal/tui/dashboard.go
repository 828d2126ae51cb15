package tui

import (
	"fmt"
	"time"

	"fitdash/internal/analysis"
	"fitdash/internal/service"
	"fitdash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	period       analysis.TrendPeriod
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		period:       analysis.Trend30Days,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.Dashboard(m.period, time.Now())
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		case "t":
			m.period = nextPeriod(m.period)
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// nextPeriod cycles through the trend periods in display order
func nextPeriod(p analysis.TrendPeriod) analysis.TrendPeriod {
	for i, cur := range analysis.TrendPeriods {
		if cur == p {
			return analysis.TrendPeriods[(i+1)%len(analysis.TrendPeriods)]
		}
	}
	return analysis.TrendPeriods[0]
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available. Press 's' to sync."
	}

	var sections []string

	// Top row: lean mass and training summary side by side
	leanCard := m.renderLeanMassCard()
	trainingCard := m.renderTrainingCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, leanCard, "  ", trainingCard)
	sections = append(sections, topRow)

	// Weekly volume chart
	if hasVolume(m.data.WeeklyVolume) {
		sections = append(sections, m.renderVolumeChart())
	}

	// Segment volume over the correlation window
	if len(m.data.VolumeBySegment) > 0 {
		sections = append(sections, m.renderSegmentVolume())
	}

	help := statusStyle.Render("Press 't' to change trend period, 'r' to refresh, 's' to sync")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderLeanMassCard() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Lean Mass (vs %s)", m.period.Label()))

	if m.data.LatestMeasurement == nil {
		content := "No measurements yet.\nImport them with 'fitdash import'."
		return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
	}

	var lines []string
	for _, trend := range m.data.SegmentTrends {
		delta := ""
		if trend.HasDelta {
			delta = analysis.FormatTrendValue(trend.DeltaLbs)
		}
		lines = append(lines, RenderMetric(
			analysis.SegmentDisplayName(trend.Segment),
			fmt.Sprintf("%.1f lbs", trend.LatestLbs),
			delta,
		))
	}

	mes := m.data.LatestMeasurement
	lines = append(lines, "")
	footer := fmt.Sprintf("Measured %s (%s)", mes.Date.Format("Jan 2"), mes.Kind)
	if mes.WeightLbs > 0 {
		footer += fmt.Sprintf(", %.1f lbs", mes.WeightLbs)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTrainingCard() string {
	title := cardTitleStyle.Render("Training")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", m.data.WorkoutCount), ""),
		RenderMetric("Runs", fmt.Sprintf("%d", m.data.ActivityCount), ""),
	}
	if !m.data.LastWorkout.IsZero() {
		lines = append(lines, RenderMetric("Last lift", m.data.LastWorkout.Format("Jan 2"), ""))
	}
	if !m.data.LastActivity.IsZero() {
		lines = append(lines, RenderMetric("Last run", m.data.LastActivity.Format("Jan 2"), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderVolumeChart() string {
	title := cardTitleStyle.Render("Weekly Volume - Trailing 12 Weeks")

	graph := asciigraph.Plot(m.data.WeeklyVolume,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderSegmentVolume() string {
	title := cardTitleStyle.Render("Volume by Segment - Current Window")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %6s  %6s  %12s  %8s",
		"Segment", "Sets", "Reps", "Volume", "Sessions"))

	rows := []string{header}
	for _, seg := range store.IndividualSegments {
		sv, ok := m.data.VolumeBySegment[seg]
		if !ok {
			continue
		}
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %6d  %6d  %9.0f lb  %8d",
			analysis.SegmentDisplayName(seg),
			sv.TotalSets,
			sv.TotalReps,
			sv.TotalVolumeLbs,
			sv.WorkoutCount,
		)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func hasVolume(weeks []float64) bool {
	for _, v := range weeks {
		if v > 0 {
			return true
		}
	}
	return false
}
