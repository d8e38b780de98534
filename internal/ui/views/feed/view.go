package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	feeddto "nextround/internal/modules/feed/dto"
	"nextround/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, page int, golfer string) (feeddto.PageOutput, error)
	ToggleLike(ctx context.Context, postID int) (feeddto.LikeOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PageLoadedMsg struct {
	Page feeddto.PageOutput
	// Append is set for "load more"; otherwise the list is replaced.
	Append bool
	Err    error
}

type LikedMsg struct {
	Like feeddto.LikeOutput
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type postItem struct {
	post feeddto.PostOutput
}

func (i postItem) Title() string {
	return fmt.Sprintf("[%s] %s  Score: %d", i.post.Initials, i.post.GolferName, i.post.Score)
}

func (i postItem) Description() string {
	heart := "♡"
	if i.post.Liked {
		heart = "♥"
	}
	return fmt.Sprintf("Handicap: %d • %s   %s %d  💬 %d  ★ %.1f",
		i.post.GolferHandicap, i.post.Date, heart, i.post.Likes, i.post.Comments, i.post.Rating)
}

func (i postItem) FilterValue() string { return i.post.GolferName }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Feed tab: a paged list of posts with likes.
type Model struct {
	port    Port
	list    list.Model
	spinner spinner.Model
	page    int
	hasMore bool
	golfer  string
	loading bool
	status  string
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Fairway).BorderForeground(theme.Fairway)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sky).BorderForeground(theme.Fairway)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Social Feed"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Fairway)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(1, "", false), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, max(m.height-6, 1))

	case PageLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.page = msg.Page.Page
		m.hasMore = msg.Page.HasMore
		m.golfer = msg.Page.Golfer
		m.status = ""
		var items []list.Item
		if msg.Append {
			items = m.list.Items()
		}
		for _, p := range msg.Page.Posts {
			items = append(items, postItem{post: p})
		}
		cmds = append(cmds, m.list.SetItems(items))

	case LikedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		for i, item := range m.list.Items() {
			pi, ok := item.(postItem)
			if !ok || pi.post.ID != msg.Like.PostID {
				continue
			}
			pi.post.Liked = msg.Like.Liked
			pi.post.Likes = msg.Like.Likes
			cmds = append(cmds, m.list.SetItem(i, pi))
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter", " ":
			if item, ok := m.list.SelectedItem().(postItem); ok {
				cmds = append(cmds, m.likeCmd(item.post.ID))
			}
		case "m":
			cmds = append(cmds, m.LoadMore())
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading swings…")
	}
	footer := theme.Muted.Render("enter: like  m: load more  /: filter")
	if m.golfer != "" {
		footer = theme.Badge.Render(m.golfer) + "  " + footer
	}
	if !m.hasMore {
		footer += theme.Muted.Render("  (end of feed)")
	}
	if m.status != "" {
		footer = theme.Danger.Render(m.status) + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer, m.renderTips())
}

// LoadMore appends the next page, if any.
func (m Model) LoadMore() tea.Cmd {
	if !m.hasMore {
		return nil
	}
	return m.loadCmd(m.page+1, m.golfer, true)
}

// ShowGolfer reloads the feed filtered to the golfer closest to name. An
// empty name clears the filter.
func (m Model) ShowGolfer(name string) tea.Cmd {
	return m.loadCmd(1, strings.TrimSpace(name), false)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderTips() string {
	item, ok := m.list.SelectedItem().(postItem)
	if !ok || len(item.post.Tips) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("AI Analysis Tips:"))
	for _, tip := range item.post.Tips {
		b.WriteString("\n  • " + tip)
	}
	return b.String()
}

func (m Model) loadCmd(page int, golfer string, appendPage bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.List(context.Background(), page, golfer)
		return PageLoadedMsg{Page: out, Append: appendPage, Err: err}
	}
}

func (m Model) likeCmd(postID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ToggleLike(context.Background(), postID)
		return LikedMsg{Like: out, Err: err}
	}
}
