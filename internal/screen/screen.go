package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/studyowl/studyowl/internal/ui/layout"
)

// Screen is one full-terminal view managed by the router: the home menu, the
// notes editor, a quiz run, and so on. Update returns the replacement screen
// value, following the bubbletea model convention.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders only the body; the app shell draws the header and footer
	// around it within the given dimensions.
	View(width, height int) string

	// Title is shown in the header while the screen is active.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints in place of
// the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
