package swings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "nextround/internal/modules/profile/dto"
	swingsdomain "nextround/internal/modules/swings/domain"
	swingsdto "nextround/internal/modules/swings/dto"
	"nextround/internal/platform/markdown"
	"nextround/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	ListSwings(ctx context.Context, sort string) ([]swingsdto.SwingOutput, error)
	Stats(ctx context.Context) (swingsdto.StatsOutput, error)
	CompareReport(ctx context.Context, toggles []int) (string, error)
	Usage(ctx context.Context) (profiledto.UsageOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Swings []swingsdto.SwingOutput
	Stats  swingsdto.StatsOutput
	Usage  profiledto.UsageOutput
	Err    error
}

type ComparedMsg struct {
	Markdown string
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type swingItem struct {
	swing swingsdto.SwingOutput
	// badge is the 1-based selection position, 0 when unselected.
	badge int
}

func (i swingItem) Title() string {
	title := fmt.Sprintf("%s  Score: %d  %+d", i.swing.Date, i.swing.Score, i.swing.Improvement)
	if i.badge > 0 {
		title = theme.Badge.Render(fmt.Sprint(i.badge)) + " " + title
	}
	return title
}

func (i swingItem) Description() string {
	n := min(2, len(i.swing.Tips))
	return "Key Tips: " + strings.Join(i.swing.Tips[:n], " • ")
}

func (i swingItem) FilterValue() string { return i.swing.Date }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the My Swings tab. It owns the comparison selection for the
// lifetime of the screen.
type Model struct {
	port      Port
	list      list.Model
	report    viewport.Model
	selection swingsdomain.Selection[int]
	sort      swingsdomain.SortKey
	stats     swingsdto.StatsOutput
	usage     profiledto.UsageOutput
	comparing bool
	status    string
	width     int
	height    int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Fairway).BorderForeground(theme.Fairway)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sky).BorderForeground(theme.Fairway)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text)

	m := Model{port: port, list: l, report: vp, sort: swingsdomain.SortByDate}
	m.list.Title = m.listTitle()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, max(m.height-6, 1))
		m.report.Width = m.width
		m.report.Height = max(m.height-1, 1)

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		m.stats = msg.Stats
		m.usage = msg.Usage
		items := make([]list.Item, 0, len(msg.Swings))
		for _, s := range msg.Swings {
			items = append(items, swingItem{swing: s})
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.refreshBadges()

	case ComparedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.comparing = true
		m.report.SetContent(msg.Markdown)
		m.report.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.comparing {
			if msg.String() == "esc" {
				m.comparing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "enter", " ":
			if item, ok := m.list.SelectedItem().(swingItem); ok {
				m.selection.Toggle(item.swing.ID)
				m.refreshBadges()
			}
			return m, nil
		case "s":
			cmd := m.SortBy(string(m.sort.Next()))
			return m, cmd
		case "c":
			cmd := m.Compare()
			return m, cmd
		}
	}

	if !m.comparing {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.comparing {
		footer := theme.Muted.Render("esc: back  ↑/↓: scroll")
		return lipgloss.JoinVertical(lipgloss.Left, m.report.View(), footer)
	}
	overview := fmt.Sprintf("%s Latest Score   %s This Month   %s Total Swings",
		theme.Title.Render(fmt.Sprint(m.stats.LatestScore)),
		theme.Title.Render(fmt.Sprintf("%+d", m.stats.MonthImprovement)),
		theme.Title.Render(fmt.Sprint(m.stats.Total)),
	)
	lines := []string{overview, m.selectionHint(), m.list.View()}
	if !m.usage.Unlimited {
		lines = append(lines, theme.Banner.Render(fmt.Sprintf("%d of %d free uploads used", m.usage.Used, m.usage.Limit)))
	}
	footer := theme.Muted.Render("enter: select  s: sort  c: compare")
	if m.status != "" {
		footer = theme.Danger.Render(m.status) + "  " + footer
	}
	lines = append(lines, footer)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Reload fetches the history in the current order together with stats and
// upload usage.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd(m.sort)
}

// SortBy switches the ordering. The selection is kept.
func (m *Model) SortBy(key string) tea.Cmd {
	sort := swingsdomain.SortKey(key)
	if err := sort.Validate(); err != nil {
		m.status = err.Error()
		return nil
	}
	m.sort = sort
	m.list.Title = m.listTitle()
	return m.loadCmd(sort)
}

// Compare renders the two selected swings side by side. It does nothing
// until two swings are selected.
func (m *Model) Compare() tea.Cmd {
	if !m.selection.CanCompare() {
		m.status = "Select two swings to compare"
		return nil
	}
	port, toggles, width := m.port, m.selection.Items(), m.width
	return func() tea.Msg {
		md, err := port.CompareReport(context.Background(), toggles)
		if err != nil {
			return ComparedMsg{Err: err}
		}
		rendered, err := markdown.RenderTerminal(md, width, markdown.StyleDark)
		return ComparedMsg{Markdown: rendered, Err: err}
	}
}

func (m *Model) ClearSelection() {
	m.selection.Clear()
	m.refreshBadges()
}

// Filtering reports whether the comparison overlay holds the keyboard.
func (m Model) Filtering() bool {
	return m.comparing
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) listTitle() string {
	labels := map[swingsdomain.SortKey]string{
		swingsdomain.SortByDate:        "Date",
		swingsdomain.SortByScore:       "Score",
		swingsdomain.SortByImprovement: "Progress",
	}
	return "My Swings · Sort by " + labels[m.sort]
}

func (m Model) selectionHint() string {
	switch m.selection.Len() {
	case 0:
		return ""
	case 1:
		return theme.Hot.Render("Select one more swing to compare")
	default:
		return theme.Hot.Render(fmt.Sprintf("Ready to compare! Press c to Compare Selected (%d)", m.selection.Len()))
	}
}

func (m *Model) refreshBadges() {
	for i, item := range m.list.Items() {
		si, ok := item.(swingItem)
		if !ok {
			continue
		}
		badge := m.selection.Position(si.swing.ID)
		if badge != si.badge {
			si.badge = badge
			m.list.SetItem(i, si)
		}
	}
}

func (m Model) loadCmd(sort swingsdomain.SortKey) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		swings, err := m.port.ListSwings(ctx, string(sort))
		if err != nil {
			return LoadedMsg{Err: err}
		}
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		usage, err := m.port.Usage(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Swings: swings, Stats: stats, Usage: usage}
	}
}
