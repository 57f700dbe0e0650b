package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// topTotals is how many keyword totals the summary lists.
const topTotals = 10

// Summary renders a short human-readable overview of report for a terminal.
func Summary(report *Report) string {
	var lines []string

	lines = append(lines, titleStyle.Render(fmt.Sprintf("Analysis of %s", report.Source)))
	lines = append(lines,
		field("paragraphs", fmt.Sprint(report.Paragraphs)),
		field("words", fmt.Sprint(report.WordCount)),
	)

	stop := report.StopWords
	lines = append(lines, sectionStyle.Render("Stop words"),
		field("language", stop.Language),
		field("set size", fmt.Sprint(stop.SetSize)),
		field("removed", fmt.Sprintf("%d of %d (%d%%)", stop.Removed, stop.Total, stop.Percentage)),
		field("used", strings.Join(stop.Used, ", ")),
	)

	lines = append(lines, sectionStyle.Render("Keyword totals"))
	for i, total := range report.Totals {
		if i == topTotals {
			lines = append(lines, fmt.Sprintf("… %d more", len(report.Totals)-topTotals))
			break
		}
		lines = append(lines, field(total.Keyword, fmt.Sprint(total.Count)))
	}

	lines = append(lines, sectionStyle.Render("Satellites"))
	if len(report.Satellites) == 0 {
		lines = append(lines, "none")
	}
	for _, pair := range report.Satellites {
		lines = append(lines, field(pair.Keyword+" → "+pair.Satellite, fmt.Sprint(pair.Ratio)))
	}

	if len(report.Skips) > 0 {
		lines = append(lines, sectionStyle.Render("Skipped"))
		for _, skip := range report.Skips {
			name := skip.Keyword
			if skip.Satellite != "" {
				name += "/" + skip.Satellite
			}
			lines = append(lines, skipStyle.Render(fmt.Sprintf("%s: %s", name, skip.Reason)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// Note is a plain-text digest of report, short enough for a document note.
func Note(report *Report) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Paragraphs: %d, words: %d\n", report.Paragraphs, report.WordCount)
	fmt.Fprintf(&builder, "Stop words (%s): %d of %d removed (%d%%)\n",
		report.StopWords.Language, report.StopWords.Removed, report.StopWords.Total, report.StopWords.Percentage)
	for _, pair := range report.Satellites {
		fmt.Fprintf(&builder, "%s / %s: %v\n", pair.Keyword, pair.Satellite, pair.Ratio)
	}
	return strings.TrimSuffix(builder.String(), "\n")
}
