package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/ui/theme"
)

// ScoreBar displays a graded score as a horizontal bar with a fraction.
type ScoreBar struct {
	Correct int
	Total   int
	Width   int
}

// NewScoreBar creates a score bar.
func NewScoreBar(correct, total, width int) ScoreBar {
	return ScoreBar{Correct: correct, Total: total, Width: width}
}

// View renders the bar.
func (s ScoreBar) View() string {
	label := fmt.Sprintf("Score: %d/%d", s.Correct, s.Total)
	labelStr := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label)

	barWidth := s.Width - lipgloss.Width(labelStr) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	var pct float64
	if s.Total > 0 {
		pct = float64(s.Correct) / float64(s.Total)
	}

	filled := int(float64(barWidth) * pct)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fillColor := theme.Error
	switch {
	case pct >= 0.8:
		fillColor = theme.Success
	case pct >= 0.5:
		fillColor = theme.Accent
	}

	bar := lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	return labelStr + "  " + bar
}
