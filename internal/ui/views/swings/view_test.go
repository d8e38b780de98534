package swings

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	profiledto "nextround/internal/modules/profile/dto"
	swingsdto "nextround/internal/modules/swings/dto"
)

type fakePort struct {
	sorts    []string
	compared [][]int
}

func (f *fakePort) ListSwings(_ context.Context, sort string) ([]swingsdto.SwingOutput, error) {
	f.sorts = append(f.sorts, sort)
	return []swingsdto.SwingOutput{
		{ID: 1, Date: "2024-01-15", Score: 85, Tips: []string{"a", "b", "c"}},
		{ID: 2, Date: "2024-01-10", Score: 80, Tips: []string{"d"}},
		{ID: 3, Date: "2024-01-05", Score: 77},
	}, nil
}

func (f *fakePort) Stats(context.Context) (swingsdto.StatsOutput, error) {
	return swingsdto.StatsOutput{LatestScore: 85, MonthImprovement: 10, Total: 3}, nil
}

func (f *fakePort) CompareReport(_ context.Context, toggles []int) (string, error) {
	f.compared = append(f.compared, toggles)
	return "# Swing Comparison", nil
}

func (f *fakePort) Usage(context.Context) (profiledto.UsageOutput, error) {
	return profiledto.UsageOutput{Used: 3, Limit: 50}, nil
}

func loaded(t *testing.T, port *fakePort) Model {
	t.Helper()
	m := New(port)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.Update(m.Reload()())
	return m
}

func badges(m Model) []int {
	var out []int
	for _, item := range m.list.Items() {
		out = append(out, item.(swingItem).badge)
	}
	return out
}

func TestSelectingThirdSwingEvictsFirst(t *testing.T) {
	t.Parallel()
	m := loaded(t, &fakePort{})
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m, _ = m.Update(enter)
	m, _ = m.Update(down)
	m, _ = m.Update(enter)
	if diff := cmp.Diff([]int{1, 2, 0}, badges(m)); diff != "" {
		t.Fatalf("badges mismatch (-want +got):\n%s", diff)
	}
	m, _ = m.Update(down)
	m, _ = m.Update(enter)
	if diff := cmp.Diff([]int{0, 1, 2}, badges(m)); diff != "" {
		t.Fatalf("badges after eviction mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareNeedsTwoSwings(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	m := loaded(t, port)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := m.Compare(); cmd != nil {
		t.Fatal("compare allowed with one swing selected")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cmd := m.Compare()
	if cmd == nil {
		t.Fatal("compare refused with two swings selected")
	}
	m, _ = m.Update(cmd())
	if !m.Filtering() {
		t.Fatal("comparison overlay not shown")
	}
	if diff := cmp.Diff([][]int{{1, 2}}, port.compared); diff != "" {
		t.Fatalf("compare toggles mismatch (-want +got):\n%s", diff)
	}
}

func TestSortCycles(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	m := loaded(t, port)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	cmd()
	if diff := cmp.Diff([]string{"date", "score"}, port.sorts); diff != "" {
		t.Fatalf("sorts mismatch (-want +got):\n%s", diff)
	}
}
