package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	uploaddto "nextround/internal/modules/upload/dto"
	"nextround/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port drives the pipeline one step at a time. Every call except Analyze
// happens on the update loop.
type Port interface {
	Snapshot(ctx context.Context) uploaddto.JobOutput
	Quota(ctx context.Context) (uploaddto.QuotaOutput, error)
	Start(ctx context.Context, path string) (uploaddto.JobOutput, error)
	Tick(ctx context.Context, jobID string) uploaddto.TickOutput
	Analyze(ctx context.Context, job uploaddto.JobOutput) (uploaddto.ResultOutput, error)
	Finish(ctx context.Context, jobID string, result uploaddto.ResultOutput) (uploaddto.JobOutput, error)
	Fail(ctx context.Context, jobID string, cause error) uploaddto.JobOutput
	Cancel(ctx context.Context) error
	Reset(ctx context.Context) error
	Save(ctx context.Context) (uploaddto.SaveOutput, error)
	RenderResult(job uploaddto.JobOutput, width int) (string, error)
}

type Timing struct {
	TickInterval    time.Duration
	CompletionDelay time.Duration
}

// ─── messages ────────────────────────────────────────────────────────────────

// Timer messages carry the job id they were scheduled for; a message for any
// other job is dropped.
type progressTickMsg struct{ jobID string }

type completionDueMsg struct{ jobID string }

type analyzedMsg struct {
	jobID  string
	result uploaddto.ResultOutput
	err    error
}

type QuotaLoadedMsg struct {
	Quota uploaddto.QuotaOutput
	Err   error
}

// UsageChangedMsg is emitted after a completed upload or a timeline save so
// that other tabs can refresh.
type UsageChangedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	timing   Timing
	job      uploaddto.JobOutput
	quota    uploaddto.QuotaOutput
	path     textinput.Model
	bar      progress.Model
	spinner  spinner.Model
	result   viewport.Model
	status   string
	statusOK bool
	width    int
	height   int
}

func New(port Port, timing Timing) Model {
	ti := textinput.New()
	ti.Placeholder = "path to swing video (.mp4, .mov)"
	ti.CharLimit = 1024
	ti.Prompt = "› "

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Fairway)

	vp := viewport.New(0, 0)

	return Model{
		port:    port,
		timing:  timing,
		job:     port.Snapshot(context.Background()),
		path:    ti,
		bar:     progress.New(progress.WithSolidFill(string(theme.Fairway)), progress.WithoutPercentage()),
		spinner: sp,
		result:  vp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadQuotaCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(m.width-8, 10)
		m.path.Width = max(m.width-8, 10)
		m.result.Width = m.width
		m.result.Height = max(m.height-3, 1)
		if m.job.Result != nil {
			m.renderResult()
		}
		return m, nil

	case QuotaLoadedMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), false)
			return m, nil
		}
		m.quota = msg.Quota
		return m, nil

	case progressTickMsg:
		if msg.jobID != m.job.ID || m.job.Phase != uploaddto.PhaseUploading {
			return m, nil
		}
		tick := m.port.Tick(context.Background(), msg.jobID)
		m.job = tick.Job
		if tick.More {
			return m, m.tickCmd(msg.jobID)
		}
		return m, nil

	case completionDueMsg:
		if msg.jobID != m.job.ID || m.job.Phase != uploaddto.PhaseUploading {
			return m, nil
		}
		return m, m.analyzeCmd(m.job)

	case analyzedMsg:
		if msg.jobID != m.job.ID {
			return m, nil
		}
		ctx := context.Background()
		if msg.err != nil {
			m.job = m.port.Fail(ctx, msg.jobID, msg.err)
			m.setStatus("Analysis failed: "+msg.err.Error(), false)
			return m, nil
		}
		job, err := m.port.Finish(ctx, msg.jobID, msg.result)
		if err != nil {
			m.setStatus(err.Error(), false)
			return m, nil
		}
		m.job = job
		m.renderResult()
		m.setStatus("Analysis complete", true)
		return m, tea.Batch(m.loadQuotaCmd(), usageChanged)

	case spinner.TickMsg:
		if m.job.Phase != uploaddto.PhaseUploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.path.Focused() {
		switch msg.String() {
		case "esc":
			m.path.Blur()
			return m, nil
		case "enter":
			m.path.Blur()
			return m.StartUpload(m.path.Value())
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd
	}

	switch m.job.Phase {
	case uploaddto.PhaseIdle:
		if msg.String() == "enter" || msg.String() == "u" {
			cmd := m.path.Focus()
			return m, cmd
		}
	case uploaddto.PhaseUploading:
		if msg.String() == "x" {
			return m.CancelUpload()
		}
	case uploaddto.PhaseComplete:
		switch msg.String() {
		case "s":
			return m.SaveResult()
		case "r":
			return m.ResetUpload()
		default:
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.job.Phase {
	case uploaddto.PhaseUploading:
		body = m.viewUploading()
	case uploaddto.PhaseComplete:
		body = m.viewComplete()
	default:
		body = m.viewIdle()
	}
	status := ""
	if m.status != "" {
		if m.statusOK {
			status = theme.Title.Render(m.status)
		} else {
			status = theme.Danger.Render(m.status)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, status)
}

// StartUpload begins a job for path and schedules its two timers.
func (m Model) StartUpload(path string) (Model, tea.Cmd) {
	job, err := m.port.Start(context.Background(), strings.TrimSpace(path))
	if err != nil {
		m.setStatus(err.Error(), false)
		return m, m.loadQuotaCmd()
	}
	m.job = job
	m.path.SetValue("")
	m.setStatus("", true)
	return m, tea.Batch(m.tickCmd(job.ID), m.completionCmd(job.ID), m.spinner.Tick)
}

// CancelUpload abandons the running job. Its pending timers fire into a
// different job id and are dropped.
func (m Model) CancelUpload() (Model, tea.Cmd) {
	if err := m.port.Cancel(context.Background()); err != nil {
		m.setStatus(err.Error(), false)
		return m, nil
	}
	m.job = m.port.Snapshot(context.Background())
	m.setStatus("Upload cancelled", true)
	return m, nil
}

func (m Model) SaveResult() (Model, tea.Cmd) {
	saved, err := m.port.Save(context.Background())
	if err != nil {
		m.setStatus(err.Error(), false)
		return m, nil
	}
	m.job.Saved = true
	m.setStatus(fmt.Sprintf("Saved to timeline as swing #%d", saved.SwingID), true)
	return m, usageChanged
}

func (m Model) ResetUpload() (Model, tea.Cmd) {
	if err := m.port.Reset(context.Background()); err != nil {
		m.setStatus(err.Error(), false)
		return m, nil
	}
	m.job = m.port.Snapshot(context.Background())
	m.result.SetContent("")
	m.setStatus("", true)
	return m, nil
}

// Filtering reports whether the path input holds the keyboard.
func (m Model) Filtering() bool {
	return m.path.Focused()
}

// Uploading reports whether a job is in flight.
func (m Model) Uploading() bool {
	return m.job.Phase == uploaddto.PhaseUploading
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setStatus(s string, ok bool) {
	m.status = s
	m.statusOK = ok
}

func (m *Model) renderResult() {
	out, err := m.port.RenderResult(m.job, m.width)
	if err != nil {
		m.setStatus(err.Error(), false)
		return
	}
	m.result.SetContent(out)
}

func (m Model) header() string {
	title := theme.Title.Render("Upload Swing")
	if m.quota.Unlimited {
		return title + "  " + theme.Badge.Render("Pro")
	}
	return title + "  " + theme.Muted.Render(fmt.Sprintf("%d/%d", m.quota.Used, m.quota.Limit))
}

func (m Model) viewIdle() string {
	lines := []string{""}
	if !m.quota.Unlimited && m.quota.Limit > 0 {
		usage := float64(m.quota.Used) / float64(m.quota.Limit)
		lines = append(lines,
			theme.Title.Render("Upload Usage"),
			m.bar.ViewAs(min(usage, 1)),
			theme.Muted.Render(fmt.Sprintf("%d of %d free uploads used", m.quota.Used, m.quota.Limit)),
			"",
		)
	}
	lines = append(lines,
		theme.Title.Render("Upload Your Golf Swing"),
		theme.Muted.Render("Supports MP4, MOV files up to 100MB"),
		m.path.View(),
		"",
		theme.Muted.Render("Recording Tips: film from the side view, include the full swing from setup to follow-through,"),
		theme.Muted.Render("ensure good lighting and a stable camera position."),
		"",
		theme.Muted.Render("enter: choose file"),
	)
	if !m.quota.Unlimited && m.quota.Limit > 0 && m.quota.Used >= m.quota.Limit-10 {
		lines = append(lines, "", theme.Banner.Render("Running Low on Uploads · Upgrade to Pro - $1.99/month"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewUploading() string {
	return strings.Join([]string{
		"",
		m.spinner.View() + " " + theme.Title.Render("Analyzing Your Swing"),
		theme.Muted.Render(m.job.Media.Name),
		"",
		m.bar.ViewAs(float64(m.job.Progress) / 100),
		theme.Muted.Render(fmt.Sprintf("%d%% complete", m.job.Progress)),
		"",
		theme.Muted.Render("x: cancel"),
	}, "\n")
}

func (m Model) viewComplete() string {
	help := "s: save to timeline  r: upload another  ↑/↓: scroll"
	if m.job.Saved {
		help = "r: upload another  ↑/↓: scroll"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.result.View(), theme.Muted.Render(help))
}

func (m Model) tickCmd(jobID string) tea.Cmd {
	return tea.Tick(m.timing.TickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{jobID: jobID}
	})
}

func (m Model) completionCmd(jobID string) tea.Cmd {
	return tea.Tick(m.timing.CompletionDelay, func(time.Time) tea.Msg {
		return completionDueMsg{jobID: jobID}
	})
}

func (m Model) analyzeCmd(job uploaddto.JobOutput) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		result, err := port.Analyze(context.Background(), job)
		return analyzedMsg{jobID: job.ID, result: result, err: err}
	}
}

func (m Model) loadQuotaCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		q, err := port.Quota(context.Background())
		return QuotaLoadedMsg{Quota: q, Err: err}
	}
}

func usageChanged() tea.Msg { return UsageChangedMsg{} }
