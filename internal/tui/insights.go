package tui

import (
	"fmt"

	"fitdash/internal/analysis"
	"fitdash/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InsightsModel is the insights screen model
type InsightsModel struct {
	queryService *service.QueryService
	data         *service.InsightsData
	loading      bool
	err          error
}

// NewInsightsModel creates a new insights model
func NewInsightsModel(qs *service.QueryService) InsightsModel {
	return InsightsModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the insights screen
func (m InsightsModel) Init() tea.Cmd {
	return m.loadData
}

func (m InsightsModel) loadData() tea.Msg {
	data, err := m.queryService.Insights()
	if err != nil {
		return insightsDataMsg{err: err}
	}
	return insightsDataMsg{data: data}
}

type insightsDataMsg struct {
	data *service.InsightsData
	err  error
}

// Update handles messages
func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the insights screen
func (m InsightsModel) View() string {
	if m.loading {
		return "\n  Loading insights..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || len(m.data.Correlations) == 0 {
		return "\n  Not enough data yet. Insights need at least two\n" +
			"  measurements with workouts logged between them."
	}

	var sections []string

	sections = append(sections, m.renderWindowSummary())

	if len(m.data.Insights) > 0 {
		sections = append(sections, m.renderInsights())
	}

	if len(m.data.Balance) > 0 {
		sections = append(sections, m.renderBalanceTable())
	}

	help := statusStyle.Render("Press 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWindowSummary shows the most recent correlation window
func (m InsightsModel) renderWindowSummary() string {
	latest := m.data.Correlations[0]
	p := latest.Period

	title := cardTitleStyle.Render(fmt.Sprintf("Latest Window: %s to %s (%d days)",
		p.StartDate.Format("Jan 2"), p.EndDate.Format("Jan 2"), p.DurationDays))

	perLb := "-"
	if latest.TotalMuscleGain > 0 {
		perLb = fmt.Sprintf("%.0f lbs", latest.TotalVolume/latest.TotalMuscleGain)
	}

	lines := []string{
		RenderMetric("Muscle gained", fmt.Sprintf("%.1f lbs", latest.TotalMuscleGain), ""),
		RenderMetric("Total volume", fmt.Sprintf("%.0f lbs", latest.TotalVolume), ""),
		RenderMetric("Total sets", fmt.Sprintf("%d", latest.TotalSets), ""),
		RenderMetric("Workouts", fmt.Sprintf("%d", len(latest.Workouts)), ""),
		RenderMetric("Volume per lb", perLb, ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m InsightsModel) renderInsights() string {
	title := cardTitleStyle.Render("Insights")

	var lines []string
	for i, insight := range m.data.Insights {
		if i > 0 {
			lines = append(lines, "")
		}

		style, ok := severityStyles[insight.Severity]
		if !ok {
			style = lipgloss.NewStyle().Foreground(mutedColor)
		}

		lines = append(lines, style.Bold(true).Render(severityMarker(insight.Severity)+insight.Title))
		lines = append(lines, insight.Description)
		if insight.Recommendation != "" {
			lines = append(lines, helpDescStyle.Render("→ "+insight.Recommendation))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(76).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func severityMarker(s analysis.InsightSeverity) string {
	switch s {
	case analysis.SeverityWarning:
		return "! "
	case analysis.SeverityTip:
		return "* "
	default:
		return "• "
	}
}

func (m InsightsModel) renderBalanceTable() string {
	title := cardTitleStyle.Render("Volume vs Gain Balance")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %8s  %8s  %6s  %-16s",
		"Segment", "Vol %", "Gain %", "Ratio", "Status"))

	rows := []string{header}
	for _, b := range m.data.Balance {
		status := string(b.Status)
		row := fmt.Sprintf("%-12s  %7.1f%%  %7.1f%%  %6.2f  %-16s",
			analysis.SegmentDisplayName(b.Segment),
			b.VolumeShare,
			b.MuscleGainShare,
			b.BalanceRatio,
			status,
		)

		switch b.Status {
		case analysis.BalanceOverperforming:
			rows = append(rows, tableRowStyle.Render(successStyle.Render(row)))
		case analysis.BalanceUnderperforming:
			rows = append(rows, tableRowStyle.Render(warningStyle.Render(row)))
		default:
			rows = append(rows, tableRowStyle.Render(row))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
