package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/ui/theme"
)

// ChoiceList is an answer selector over a fixed set of options. Unlike a
// menu it carries no actions: the caller reads Chosen after the user
// confirms. Correctness is only revealed when the whole set is graded,
// so the list never colors options by correctness itself.
type ChoiceList struct {
	Options []string
	Labeled bool // prefix options with A) B) C) D)
	Cursor  int
	Chosen  int // -1 until a choice is confirmed
}

// NewChoiceList creates a selector over options.
func NewChoiceList(options []string, labeled bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Labeled: labeled,
		Chosen:  -1,
	}
}

// Update handles keyboard navigation. Enter confirms the current option;
// confirming again overwrites the previous choice.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// HasChoice reports whether the user confirmed an option.
func (c ChoiceList) HasChoice() bool {
	return c.Chosen >= 0 && c.Chosen < len(c.Options)
}

// Value returns the confirmed option text, "" when none is confirmed.
func (c ChoiceList) Value() string {
	if !c.HasChoice() {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		mark := " "
		if i == c.Chosen {
			mark = "●"
		}

		var line string
		if c.Labeled && i < len(labels) {
			line = fmt.Sprintf("%s%s %s)  %s", prefix, mark, labels[i], opt)
		} else {
			line = fmt.Sprintf("%s%s %s", prefix, mark, opt)
		}

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
