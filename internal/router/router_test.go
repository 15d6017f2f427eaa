package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyowl/studyowl/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func TestPushAndPop(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	notes := &fakeScreen{name: "notes"}
	r.Push(notes)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "notes" {
		t.Errorf("active = %q, want notes", r.Active().Title())
	}
	if !notes.initRan {
		t.Error("Init must run on push")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home after pop", r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 after pop at bottom", r.Depth())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	quiz := &fakeScreen{name: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	if r.Active().Title() != "quiz" || !quiz.initRan {
		t.Fatal("PushScreenMsg must push and init the screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("active = %q, want home", r.Active().Title())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "loading"})

	results := &fakeScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 after replace", r.Depth())
	}
	if r.Active().Title() != "results" || !results.initRan {
		t.Fatal("replace must swap the top screen and init the replacement")
	}
}
