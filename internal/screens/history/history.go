// Package history shows past graded quiz and practice-test attempts.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/store"
	"github.com/studyowl/studyowl/internal/ui/theme"
)

// HistoryScreen lists recent attempts, newest first.
type HistoryScreen struct {
	attempts []store.Attempt
	loadErr  error
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen and loads recent attempts.
func New(repo store.AttemptRepo) *HistoryScreen {
	h := &HistoryScreen{}
	if repo == nil {
		return h
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h.attempts, h.loadErr = repo.RecentAttempts(ctx, 25)
	return h
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Could not load history: %v", h.loadErr)))
	}
	if len(h.attempts) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No graded attempts yet. Take a quiz first!"))
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%-19s  %-14s  %s", "When", "Kind", "Score")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", 44)))
	b.WriteString("\n")

	for _, a := range h.attempts {
		score := fmt.Sprintf("%d/%d", a.Correct, a.Total)
		style := theme.Incorrect
		if a.Total > 0 && float64(a.Correct)/float64(a.Total) >= 0.5 {
			style = theme.Correct
		}
		b.WriteString(fmt.Sprintf("%-19s  %-14s  %s\n",
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			a.Kind,
			style.Render(score)))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}
