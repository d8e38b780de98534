package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nextround/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Fairway).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle   = lipgloss.NewStyle().Foreground(theme.Subtext0)
	cursorStyle = lipgloss.NewStyle().Foreground(theme.Sand).Bold(true)
)

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"feed:golfer <name>",
	"feed:more",
	"swings:sort <date|score|improvement>",
	"swings:compare",
	"swings:clear",
	"upload:start <path>",
	"upload:cancel",
	"upload:save",
	"upload:reset",
	"profile:edit",
	"profile:upgrade",
}

const maxHints = 5

type paletteKeys struct {
	Submit   key.Binding
	Cancel   key.Binding
	Complete key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = paletteKeys{
	Submit:   key.NewBinding(key.WithKeys("enter")),
	Cancel:   key.NewBinding(key.WithKeys("esc")),
	Complete: key.NewBinding(key.WithKeys("tab")),
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
}

// matchHints returns up to limit hints whose command starts with the typed
// command word. Arguments after the first space are ignored.
func matchHints(input string, limit int) []string {
	word, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(input)), " ")
	var out []string
	for _, h := range paletteHints {
		if word != "" && !strings.HasPrefix(h, word) {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}

// command strips the argument placeholders from a hint.
func command(hint string) string {
	word, _, hasArgs := strings.Cut(hint, " ")
	if hasArgs {
		return word + " "
	}
	return word
}

// Palette is a command-palette overlay backed by bubbles/textinput. Tab
// completes the highlighted hint.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	cursor  int
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		matching := matchHints(p.input.Value(), maxHints)
		switch {
		case key.Matches(msg, keys.Cancel):
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case key.Matches(msg, keys.Submit):
			val := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case key.Matches(msg, keys.Complete):
			if p.cursor < len(matching) {
				p.input.SetValue(command(matching[p.cursor]))
				p.input.CursorEnd()
				p.cursor = 0
			}
			return p, nil
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case key.Matches(msg, keys.Down):
			if p.cursor < len(matching)-1 {
				p.cursor++
			}
			return p, nil
		}
		p.cursor = 0
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if matching := matchHints(p.input.Value(), maxHints); len(matching) > 0 {
		sb.WriteString("\n")
		for i, h := range matching {
			if i == p.cursor {
				sb.WriteString(cursorStyle.Render("› "+h) + "\n")
				continue
			}
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
