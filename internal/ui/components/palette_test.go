package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestMatchHints(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		input string
		limit int
		want  []string
	}{
		"empty lists first hints": {input: "", limit: 2, want: []string{"feed:golfer <name>", "feed:more"}},
		"prefix":                  {input: "upload:s", limit: 5, want: []string{"upload:start <path>", "upload:save"}},
		"arguments ignored":       {input: "swings:sort score", limit: 5, want: []string{"swings:sort <date|score|improvement>"}},
		"no match":                {input: "collab", limit: 5, want: nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, matchHints(tc.input, tc.limit)); diff != "" {
				t.Fatalf("matchHints(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestPaletteSubmitTrimsInput(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p.input.SetValue("  upload:cancel  ")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatal("palette still visible after enter")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "upload:cancel" {
		t.Fatalf("submit = %#v", msg)
	}
}

func TestPaletteTabCompletesHighlightedHint(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p.input.SetValue("upload:s")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "upload:save" {
		t.Fatalf("completed = %q, want upload:save", got)
	}

	p.input.SetValue("swings:so")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "swings:sort " {
		t.Fatalf("completed = %q, want argument slot", got)
	}
}
