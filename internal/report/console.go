package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	kbc "github.com/jamesainslie/go-kbc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)
)

// Render formats r for a terminal: a header line followed by the filtered
// and non-filtered scores side by side.
func Render(r kbc.Results) string {
	header := titleStyle.Render(fmt.Sprintf("%s  (n=%d)", r.EvaluatedFile, r.N))

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Filtered", r.N, r.Filtered),
		panel("Non-filtered", r.N, r.NonFiltered),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels)
}

func panel(title string, n int, s kbc.Scores) string {
	rows := [][2]string{
		{fmt.Sprintf("Hits@%d heads", n), fmt.Sprint(s.HitsAtN.Heads)},
		{fmt.Sprintf("Hits@%d tails", n), fmt.Sprint(s.HitsAtN.Tails)},
		{fmt.Sprintf("Hits@%d all", n), fmt.Sprint(s.HitsAtN.All)},
		{"Mean rank heads", fmt.Sprint(s.MeanRank.Heads)},
		{"Mean rank tails", fmt.Sprint(s.MeanRank.Tails)},
		{"Mean rank all", fmt.Sprint(s.MeanRank.All)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	lines := []string{titleStyle.Render(title)}
	for _, row := range rows {
		label := labelStyle.Render(row[0] + strings.Repeat(" ", width-len(row[0])))
		lines = append(lines, label+"  "+valueStyle.Render(row[1]))
	}
	if s.MeanRank.IgnoredHeads > 0 || s.MeanRank.IgnoredTails > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("missing: %d heads, %d tails",
			s.MeanRank.IgnoredHeads, s.MeanRank.IgnoredTails)))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
