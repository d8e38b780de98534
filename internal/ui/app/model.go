package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	feeddto "nextround/internal/modules/feed/dto"
	profiledto "nextround/internal/modules/profile/dto"
	swingsdto "nextround/internal/modules/swings/dto"
	"nextround/internal/ui/components"
	"nextround/internal/ui/theme"
	feedview "nextround/internal/ui/views/feed"
	profileview "nextround/internal/ui/views/profile"
	swingsview "nextround/internal/ui/views/swings"
	uploadview "nextround/internal/ui/views/upload"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type feedPort interface {
	List(ctx context.Context, page int, golfer string) (feeddto.PageOutput, error)
	ToggleLike(ctx context.Context, postID int) (feeddto.LikeOutput, error)
}

type swingsPort interface {
	ListSwings(ctx context.Context, sort string) ([]swingsdto.SwingOutput, error)
	Stats(ctx context.Context) (swingsdto.StatsOutput, error)
	CompareReport(ctx context.Context, toggles []int) (string, error)
}

type profilePort interface {
	GetProfile(ctx context.Context) (profiledto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, name, handicap string) (profiledto.ProfileOutput, error)
	Usage(ctx context.Context) (profiledto.UsageOutput, error)
	Upgrade(ctx context.Context) (profiledto.UpgradeOutput, error)
}

// noticePort yields user-facing notices raised outside the update loop.
type noticePort interface {
	Next(ctx context.Context) (string, error)
}

type Timing = uploadview.Timing

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabFeed tabID = iota
	tabSwings
	tabUpload
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{
	"Feed", "My Swings", "Upload", "Profile",
}

// ─── async messages ───────────────────────────────────────────────────────────

type noticeMsg struct {
	text string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Select  key.Binding
	Sort    key.Binding
	Compare key.Binding
	More    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		JumpTab: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "like / select / upload")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort swings / save result")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare selected")),
		More:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.Select, k.More, k.Sort, k.Compare},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// the command palette and the notice banner; each tab is a sub-view.
type Model struct {
	notices noticePort
	ctx     context.Context
	stop    context.CancelFunc

	feedView    feedview.Model
	swingsView  swingsview.Model
	uploadView  uploadview.Model
	profileView profileview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	notice    string
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	feed feedPort,
	swings swingsPort,
	upload uploadview.Port,
	profile profilePort,
	notices noticePort,
	timing Timing,
) Model {
	ctx, stop := context.WithCancel(context.Background())
	return Model{
		notices:     notices,
		ctx:         ctx,
		stop:        stop,
		feedView:    feedview.New(feed),
		swingsView:  swingsview.New(swingsPortBridge{swings: swings, profile: profile}),
		uploadView:  uploadview.New(upload, timing),
		profileView: profileview.New(profile),
		activeTab:   tabFeed,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.feedView.Init(),
		m.swingsView.Init(),
		m.uploadView.Init(),
		m.profileView.Init(),
		m.listenNoticeCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		return m, m.propagateSize()

	case noticeMsg:
		if msg.err != nil {
			return m, nil
		}
		m.notice = msg.text
		return m, m.listenNoticeCmd()

	case uploadview.UsageChangedMsg:
		return m, tea.Batch(m.swingsView.Reload(), m.profileView.Reload())

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if !m.subViewFiltering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.JumpTab):
			m.activeTab = tabID(msg.Runes[0] - '1')
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open()
			return m, cmd
		}
	}

	m.notice = ""
	var cmd tea.Cmd
	switch m.activeTab {
	case tabFeed:
		m.feedView, cmd = m.feedView.Update(msg)
	case tabSwings:
		m.swingsView, cmd = m.swingsView.Update(msg)
	case tabUpload:
		m.uploadView, cmd = m.uploadView.Update(msg)
	case tabProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}
	return m, cmd
}

// broadcast hands a non-key message to every tab. Async results must reach
// their view even when another tab is in front.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 4)
	m.feedView, cmds[0] = m.feedView.Update(msg)
	m.swingsView, cmds[1] = m.swingsView.Update(msg)
	m.uploadView, cmds[2] = m.uploadView.Update(msg)
	m.profileView, cmds[3] = m.profileView.Update(msg)
	return tea.Batch(cmds...)
}

// quit abandons any in-flight upload before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.uploadView.Uploading() {
		m.uploadView, _ = m.uploadView.CancelUpload()
	}
	m.stop()
	return m, tea.Quit
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabFeed:
		return m.feedView.View()
	case tabSwings:
		return m.swingsView.View()
	case tabUpload:
		return m.uploadView.View()
	case tabProfile:
		return m.profileView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	bar := theme.Title.Render("⛳ NextRound") + "  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.notice != "" {
		left = theme.Danger.Render("! "+m.notice) + "  " + left
	}
	right := theme.Muted.Render("?:help  1-4/tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	command, rest, _ := strings.Cut(strings.TrimSpace(input), " ")
	rest = strings.TrimSpace(rest)
	m.status = "ready"

	var cmd tea.Cmd
	switch command {
	case "feed:golfer":
		m.activeTab = tabFeed
		cmd = m.feedView.ShowGolfer(rest)
	case "feed:more":
		m.activeTab = tabFeed
		cmd = m.feedView.LoadMore()

	case "swings:sort":
		if rest == "" {
			m.status = "usage: swings:sort <date|score|improvement>"
			return m, nil
		}
		m.activeTab = tabSwings
		cmd = m.swingsView.SortBy(rest)
	case "swings:compare":
		m.activeTab = tabSwings
		cmd = m.swingsView.Compare()
	case "swings:clear":
		m.activeTab = tabSwings
		m.swingsView.ClearSelection()

	case "upload:start":
		if rest == "" {
			m.status = "usage: upload:start <path>"
			return m, nil
		}
		m.activeTab = tabUpload
		m.uploadView, cmd = m.uploadView.StartUpload(rest)
	case "upload:cancel":
		m.activeTab = tabUpload
		m.uploadView, cmd = m.uploadView.CancelUpload()
	case "upload:save":
		m.activeTab = tabUpload
		m.uploadView, cmd = m.uploadView.SaveResult()
	case "upload:reset":
		m.activeTab = tabUpload
		m.uploadView, cmd = m.uploadView.ResetUpload()

	case "profile:edit":
		m.activeTab = tabProfile
		cmd = m.profileView.Edit()
	case "profile:upgrade":
		m.activeTab = tabProfile
		cmd = m.profileView.Upgrade()

	default:
		m.status = "unknown command: " + command
	}
	return m, cmd
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab is taking free text, in
// which case global key bindings yield.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabFeed:
		return m.feedView.Filtering()
	case tabSwings:
		return m.swingsView.Filtering()
	case tabUpload:
		return m.uploadView.Filtering()
	case tabProfile:
		return m.profileView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	return m.broadcast(sz)
}

func (m Model) listenNoticeCmd() tea.Cmd {
	if m.notices == nil {
		return nil
	}
	notices, ctx := m.notices, m.ctx
	return func() tea.Msg {
		text, err := notices.Next(ctx)
		return noticeMsg{text: text, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

// swingsPortBridge adds upload usage from the profile port for the limit
// banner on the swings tab.
type swingsPortBridge struct {
	swings  swingsPort
	profile profilePort
}

func (b swingsPortBridge) ListSwings(ctx context.Context, sort string) ([]swingsdto.SwingOutput, error) {
	return b.swings.ListSwings(ctx, sort)
}
func (b swingsPortBridge) Stats(ctx context.Context) (swingsdto.StatsOutput, error) {
	return b.swings.Stats(ctx)
}
func (b swingsPortBridge) CompareReport(ctx context.Context, toggles []int) (string, error) {
	return b.swings.CompareReport(ctx, toggles)
}
func (b swingsPortBridge) Usage(ctx context.Context) (profiledto.UsageOutput, error) {
	return b.profile.Usage(ctx)
}
