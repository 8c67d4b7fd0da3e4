package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants for the heatmap.
const (
	cellWidth        = 2 // Character width per cell (block + space)
	dayLabelWidth    = 4
	minTerminalWidth = dayLabelWidth + (weeksInGrid * cellWidth)
	blockChar        = "▄" // Lower half-height block for compact squares
)

// Intensity buckets for a day's submission count. The same mapping feeds the
// grid cells and the legend.
const (
	intensityEmpty = iota
	intensityLow
	intensityMedium
	intensityHigh
	intensityPeak
)

// intensityFor maps a submission count to its intensity bucket:
// 0, 1-2, 3-4, 5-9, 10+.
func intensityFor(count int) int {
	switch {
	case count == 0:
		return intensityEmpty
	case count <= 2:
		return intensityLow
	case count <= 4:
		return intensityMedium
	case count <= 9:
		return intensityHigh
	default:
		return intensityPeak
	}
}

// intensityColor returns the active theme's color for an intensity bucket.
// The theme is the only thing the surrounding application's dark/light flag
// influences; the bucketing itself never changes.
func intensityColor(level int) string {
	colors := []string{
		CurrentTheme.ContribNone,
		CurrentTheme.ContribLow,
		CurrentTheme.ContribMed,
		CurrentTheme.ContribHigh,
		CurrentTheme.ContribHigher,
	}

	if level >= 0 && level < len(colors) {
		return colors[level]
	}
	return CurrentTheme.ContribNone
}

// Heatmap renders a built calendar grid as a GitHub-style contribution graph.
type Heatmap struct {
	weeks      [][]CalendarDay
	monthOrder []string
	title      string
	showLegend bool
}

// NewHeatmap creates a heatmap from the output of BuildCalendarGrid.
func NewHeatmap(weeks [][]CalendarDay, monthOrder []string) *Heatmap {
	return &Heatmap{
		weeks:      weeks,
		monthOrder: monthOrder,
		title:      "Submission Activity",
		showLegend: true,
	}
}

// Render generates the complete heatmap as a string.
func (h *Heatmap) Render() string {
	var output strings.Builder

	output.WriteString(h.renderTitle() + "\n\n")
	output.WriteString(h.renderMonthLabels() + "\n")
	output.WriteString(h.renderGrid())

	if h.showLegend {
		output.WriteString("\n" + h.renderLegend() + "\n")
	}

	return output.String()
}

// RenderResponsive renders the heatmap or a width warning based on terminal width.
func (h *Heatmap) RenderResponsive(terminalWidth int) string {
	if terminalWidth < minTerminalWidth {
		return renderWidthWarning(terminalWidth, minTerminalWidth)
	}
	return h.Render()
}

func (h *Heatmap) renderTitle() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Blue)).
		Render(h.title)
}

// renderMonthLabels generates the month name row across the top of the grid.
// The twelve rotated abbreviations are spread evenly over the 53 week columns.
func (h *Heatmap) renderMonthLabels() string {
	totalWidth := weeksInGrid * cellWidth
	labelChars := make([]rune, totalWidth)
	for i := range labelChars {
		labelChars[i] = ' '
	}

	for idx, name := range h.monthOrder {
		week := idx * weeksInGrid / len(h.monthOrder)
		pos := week * cellWidth
		for i, ch := range name {
			if pos+i < len(labelChars) {
				labelChars[pos+i] = ch
			}
		}
	}

	styled := lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Render(string(labelChars))

	return strings.Repeat(" ", dayLabelWidth) + styled
}

// renderGrid generates all 7 day rows. Weeks run left to right, days top to
// bottom starting on Sunday.
func (h *Heatmap) renderGrid() string {
	var rows []string

	dayLabels := []string{"", "Mon", "", "Wed", "", "Fri", ""}

	for day := 0; day < daysPerWeek; day++ {
		var row strings.Builder

		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(CurrentTheme.Gray)).
			Width(dayLabelWidth).
			Render(dayLabels[day])
		row.WriteString(label)

		for _, week := range h.weeks {
			row.WriteString(renderCell(week[day].Submissions))
		}

		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

// renderCell creates a single contribution cell colored by intensity.
func renderCell(count int) string {
	color := intensityColor(intensityFor(count))

	block := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(blockChar)

	return block + " " // Block + space for horizontal separation
}

// renderLegend creates the "Less -> More" color scale indicator.
// It walks the same intensity buckets as the grid cells.
func (h *Heatmap) renderLegend() string {
	var parts []string

	parts = append(parts, lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Render("Less "))

	for level := intensityEmpty; level <= intensityPeak; level++ {
		cell := lipgloss.NewStyle().
			Foreground(lipgloss.Color(intensityColor(level))).
			Render(blockChar + " ")
		parts = append(parts, cell)
	}

	parts = append(parts, lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Render("More"))

	return strings.Repeat(" ", dayLabelWidth) + strings.Join(parts, "")
}

// renderWidthWarning displays a helpful message when the terminal is too narrow.
// The message adapts to the available width.
func renderWidthWarning(currentWidth, minWidth int) string {
	maxBoxWidth := currentWidth - 4 // Leave margin for box border

	message := "Increase terminal width to view the submission grid"
	detail := fmt.Sprintf("Need %d columns, have %d", minWidth, currentWidth)

	if maxBoxWidth < len(message) {
		if maxBoxWidth < 30 {
			message = "Terminal too narrow"
			detail = ""
		} else if maxBoxWidth < 50 {
			message = "Increase width for grid"
			detail = ""
		}
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Blue)).
		Padding(1, 2).
		Width(maxBoxWidth).
		Align(lipgloss.Center)

	content := lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Bold(true).
		Render(message)

	if detail != "" {
		detailStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(CurrentTheme.Subtle)).
			Render(detail)
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", detailStyle)
	}

	return style.Render(content)
}
