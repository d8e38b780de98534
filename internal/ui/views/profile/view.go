package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "nextround/internal/modules/profile/dto"
	"nextround/internal/ui/theme"
)

type Port interface {
	GetProfile(ctx context.Context) (profiledto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, name, handicap string) (profiledto.ProfileOutput, error)
	Usage(ctx context.Context) (profiledto.UsageOutput, error)
	Upgrade(ctx context.Context) (profiledto.UpgradeOutput, error)
}

type LoadedMsg struct {
	Profile profiledto.ProfileOutput
	Usage   profiledto.UsageOutput
	Err     error
}

type SavedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

type UpgradedMsg struct {
	Upgrade profiledto.UpgradeOutput
	Err     error
}

const (
	fieldName = iota
	fieldHandicap
)

// Model is the Profile tab: details, stats, subscription and the edit form.
type Model struct {
	port      Port
	profile   profiledto.ProfileOutput
	usage     profiledto.UsageOutput
	inputs    [2]textinput.Model
	focus     int
	editing   bool
	upgrading bool
	spinner   spinner.Model
	status    string
	width     int
	height    int
}

func New(port Port) Model {
	name := textinput.New()
	name.Prompt = "Name      "
	name.CharLimit = 80
	handicap := textinput.New()
	handicap.Prompt = "Handicap  "
	handicap.CharLimit = 6

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Fairway)

	return Model{port: port, inputs: [2]textinput.Model{name, handicap}, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.profile = msg.Profile
		m.usage = msg.Usage

	case SavedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.profile = msg.Profile
		m.editing = false
		m.status = "Profile saved"

	case UpgradedMsg:
		m.upgrading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		if msg.Upgrade.Upgraded {
			m.status = "Welcome to NextRound Pro! Receipt " + msg.Upgrade.ReceiptID
		} else {
			m.status = "Already on NextRound Pro"
		}
		return m, m.Reload()

	case spinner.TickMsg:
		if m.upgrading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "e":
			cmd := m.Edit()
			return m, cmd
		case "u":
			cmd := m.Upgrade()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.blurAll()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focus = (m.focus + 1) % len(m.inputs)
		m.blurAll()
		cmd := m.inputs[m.focus].Focus()
		return m, cmd
	case "enter":
		name, handicap := m.inputs[fieldName].Value(), m.inputs[fieldHandicap].Value()
		port := m.port
		return m, func() tea.Msg {
			out, err := port.UpdateProfile(context.Background(), name, handicap)
			return SavedMsg{Profile: out, Err: err}
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	p := m.profile
	head := theme.Badge.Render(p.Initials) + "  " + theme.Title.Render(p.Name)
	if p.Plan == "pro" {
		head += "  " + theme.Hot.Render("♛ Pro")
	}
	lines := []string{
		head,
		theme.Muted.Render(p.Email),
		theme.Title.Render("Handicap: " + p.Handicap),
		"",
		m.subscription(),
		"",
	}
	if m.editing {
		lines = append(lines, m.inputs[fieldName].View(), m.inputs[fieldHandicap].View(),
			theme.Muted.Render("enter: save changes  tab: next field  esc: cancel"), "")
	}
	lines = append(lines, m.stats(), "")
	if !m.usage.Unlimited {
		lines = append(lines, theme.Muted.Render(fmt.Sprintf("%d of %d free uploads used", m.usage.Used, m.usage.Limit)))
		if m.usage.Low {
			lines = append(lines, theme.Banner.Render("Running Low on Uploads · Upgrade to Pro - $1.99/month"))
		}
	}
	if m.status != "" {
		lines = append(lines, "", theme.Hot.Render(m.status))
	}
	if !m.editing {
		lines = append(lines, "", theme.Muted.Render("e: edit profile  u: upgrade to pro"))
	}
	return strings.Join(lines, "\n")
}

// Reload fetches profile and usage.
func (m Model) Reload() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		p, err := port.GetProfile(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		u, err := port.Usage(ctx)
		return LoadedMsg{Profile: p, Usage: u, Err: err}
	}
}

// Edit opens the form prefilled with the current values.
func (m *Model) Edit() tea.Cmd {
	m.editing = true
	m.status = ""
	m.inputs[fieldName].SetValue(m.profile.Name)
	m.inputs[fieldHandicap].SetValue(m.profile.Handicap)
	m.focus = fieldName
	m.blurAll()
	return m.inputs[fieldName].Focus()
}

// Upgrade runs the simulated checkout.
func (m *Model) Upgrade() tea.Cmd {
	if m.upgrading {
		return nil
	}
	m.upgrading = true
	m.status = "Redirecting to checkout…"
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := port.Upgrade(context.Background())
		return UpgradedMsg{Upgrade: out, Err: err}
	})
}

// Filtering reports whether the edit form holds the keyboard.
func (m Model) Filtering() bool {
	return m.editing
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) subscription() string {
	if m.profile.Plan == "pro" {
		return theme.Hot.Render("NextRound Pro") + theme.Muted.Render("  Active subscription")
	}
	line := theme.Title.Render("Upgrade to Pro") + "  " +
		theme.Muted.Render("Unlimited uploads • Advanced analytics • Priority support") + "  " +
		theme.Badge.Render("$1.99/month")
	if m.upgrading {
		line = m.spinner.View() + " " + line
	}
	return line
}

func (m Model) stats() string {
	cell := func(value, label string) string {
		return lipgloss.NewStyle().Width(18).Render(theme.Title.Render(value) + "\n" + theme.Muted.Render(label))
	}
	p := m.profile
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(fmt.Sprint(p.BestScore), "Best Score"),
		cell(fmt.Sprintf("%+d", p.Improvement), "Improvement"),
		cell(fmt.Sprint(p.AverageScore), "Average Score"),
		cell(fmt.Sprint(p.TotalSwings), "Total Swings"),
	)
}
