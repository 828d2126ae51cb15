package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Insights"},
		{"3", "Records"},
		{"4", "Calendar"},
		{"5 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	dashSection := m.renderSection("Dashboard", []keyHelp{
		{"t", "Cycle trend period (7d / 30d / 90d / YTD)"},
		{"r", "Refresh data"},
	})
	sections = append(sections, dashSection)

	recordsSection := m.renderSection("Records", []keyHelp{
		{"j / k or arrows", "Scroll"},
		{"r", "Refresh records"},
	})
	sections = append(sections, recordsSection)

	calSection := m.renderSection("Calendar", []keyHelp{
		{"mouse drag", "Move an event; drag an edge to resize"},
		{"click", "Open event details"},
		{"[ / ]", "Previous / next year"},
		{"esc", "Cancel drag or close details"},
		{"r", "Reload events"},
	})
	sections = append(sections, calSection)

	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	sections = append(sections, m.renderMetricsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"Lean Mass", "Per-segment lean tissue from BIA or DEXA measurements, in pounds."},
		{"Volume", "Weight x reps summed across working sets, in pounds."},
		{"Volume per lb", "Training volume spent per pound of muscle gained. Lower = more efficient."},
		{"Balance Ratio", "A segment's share of muscle gain divided by its share of volume."},
		{"Est 1RM", "One-rep max estimated from your best set (Epley formula)."},
		{"Race Times", "Fastest estimated times over standard distances, built from mile splits."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
