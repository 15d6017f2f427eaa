package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/ui/theme"
)

const (
	MinWidth  = 70
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum usable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(msg)
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the top bar: app name left, screen title centered,
// active model ID right.
func RenderHeader(title, model string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  StudyOwl")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(model)

	return barStyle.Width(width).Render(spreadColumns(left, center, right, width-4))
}

// spreadColumns lays three rendered cells across the given inner width,
// keeping the center cell centered and at least one space between cells.
func spreadColumns(left, center, right string, inner int) string {
	if inner < 0 {
		inner = 0
	}
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := (inner-cw)/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := inner - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderFooter draws the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body, and footer into the full terminal frame,
// stretching the body to fill the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
