package in_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	uploadin "nextround/internal/modules/upload/adapter/in"
	"nextround/internal/modules/upload/domain"
	"nextround/internal/modules/upload/dto"
	"nextround/internal/modules/upload/service"
	"nextround/internal/modules/upload/usecase"
	"nextround/internal/platform/clock"
	apperrors "nextround/internal/platform/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type seqID struct {
	mu sync.Mutex
	n  int
}

func (s *seqID) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("job-%d", s.n)
}

type stubInspector struct{}

func (stubInspector) Inspect(_ context.Context, path string) (domain.Media, error) {
	return domain.Media{Path: path, Name: path, Size: 2048}, nil
}

type stubQuota struct{ used int }

func (q *stubQuota) Quota(context.Context) (domain.Quota, error) {
	return domain.Quota{Used: q.used, Limit: 50}, nil
}

func (q *stubQuota) RecordUpload(context.Context) error {
	q.used++
	return nil
}

type stubAnalyzer struct{ err error }

func (a stubAnalyzer) Analyze(ctx context.Context, _ domain.Job) (domain.Result, error) {
	if a.err != nil {
		return domain.Result{}, a.err
	}
	return domain.Result{Score: 91, Tips: []string{"a", "b", "c"}, Strengths: []string{"x", "y", "z"}}, ctx.Err()
}

type stubNotifier struct{}

func (stubNotifier) Notify(domain.Notice) {}

type stubTimeline struct{}

func (stubTimeline) Save(context.Context, time.Time, domain.Result) (int, error) { return 4, nil }

func newRunner(quota *stubQuota, analyzer stubAnalyzer, timing uploadin.Timing) (*uploadin.Runner, *usecase.Interactor) {
	svc := service.NewUploadService(
		clock.Fixed(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		&seqID{},
		service.Settings{ProgressStep: 10, MaxMediaBytes: 100 << 20},
		stubInspector{},
		quota,
		analyzer,
		stubNotifier{},
		stubTimeline{},
	)
	uc := usecase.NewInteractor(svc).(*usecase.Interactor)
	return uploadin.NewRunner(uc, timing), uc
}

func TestRunnerDeliversProgressThenCompletion(t *testing.T) {
	quota := &stubQuota{used: 3}
	runner, _ := newRunner(quota, stubAnalyzer{}, uploadin.Timing{TickInterval: time.Millisecond, CompletionDelay: 40 * time.Millisecond})

	var seen []dto.JobOutput
	job, err := runner.Run(context.Background(), "swing.mp4", func(j dto.JobOutput) { seen = append(seen, j) })
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if job.Phase != string(domain.PhaseComplete) || job.Progress != domain.MaxProgress || job.Result == nil || len(job.Result.Tips) != 3 {
		t.Fatalf("unexpected final job %+v", job)
	}
	last := -1
	for _, s := range seen {
		if s.Progress < last {
			t.Fatalf("progress went backwards: %d after %d", s.Progress, last)
		}
		if s.Progress > domain.MaxProgress {
			t.Fatalf("progress exceeded max: %d", s.Progress)
		}
		last = s.Progress
	}
	if seen[len(seen)-1].Phase != string(domain.PhaseComplete) {
		t.Fatalf("last update should be the completed job")
	}
	if quota.used != 4 {
		t.Fatalf("completion should record an upload, used=%d", quota.used)
	}
}

func TestRunnerCancellationReturnsToIdle(t *testing.T) {
	runner, uc := newRunner(&stubQuota{used: 3}, stubAnalyzer{}, uploadin.Timing{TickInterval: time.Millisecond, CompletionDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := runner.Run(ctx, "swing.mp4", func(j dto.JobOutput) {
		if j.Progress >= 30 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if phase := uc.Snapshot(context.Background()).Phase; phase != string(domain.PhaseIdle) {
		t.Fatalf("cancelled job should leave pipeline idle, got %s", phase)
	}
}

func TestRunnerQuotaExceededStartsNothing(t *testing.T) {
	runner, uc := newRunner(&stubQuota{used: 50}, stubAnalyzer{}, uploadin.Timing{TickInterval: time.Millisecond, CompletionDelay: time.Millisecond})
	if _, err := runner.Run(context.Background(), "swing.mp4", nil); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if phase := uc.Snapshot(context.Background()).Phase; phase != string(domain.PhaseIdle) {
		t.Fatalf("phase = %s, want idle", phase)
	}
}

func TestRunnerAnalyzerFailure(t *testing.T) {
	boom := errors.New("analyzer offline")
	runner, uc := newRunner(&stubQuota{used: 3}, stubAnalyzer{err: boom}, uploadin.Timing{TickInterval: time.Millisecond, CompletionDelay: 5 * time.Millisecond})
	if _, err := runner.Run(context.Background(), "swing.mp4", nil); !errors.Is(err, boom) {
		t.Fatalf("expected analyzer error, got %v", err)
	}
	if phase := uc.Snapshot(context.Background()).Phase; phase != string(domain.PhaseIdle) {
		t.Fatalf("phase = %s, want idle", phase)
	}
}

func TestReportRendersFrontmatter(t *testing.T) {
	job := dto.JobOutput{
		ID:     "job-1",
		Media:  dto.MediaOutput{Name: "swing.mp4"},
		Phase:  string(domain.PhaseComplete),
		Result: &dto.ResultOutput{Score: 91, Tips: []string{"Keep head still"}, Strengths: []string{"Tempo"}},
	}
	out, err := uploadin.Report(job)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"---\n", "score: 91", "# Swing Analysis", "- Keep head still", "- Tempo"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if _, err := uploadin.Report(dto.JobOutput{ID: "job-2"}); err == nil {
		t.Fatalf("report without result should fail")
	}
}

func TestCLIReportFormats(t *testing.T) {
	h := uploadin.NewCLIHandler(nil, uploadin.Timing{})
	job := dto.JobOutput{
		ID:     "job-1",
		Result: &dto.ResultOutput{Score: 88, Tips: []string{"Follow through more completely"}},
	}
	text, err := h.Report(job, uploadin.FormatText)
	if err != nil {
		t.Fatalf("text report: %v", err)
	}
	if strings.Contains(text, "---") || !strings.Contains(text, "Score: 88/100") {
		t.Fatalf("unexpected text report:\n%s", text)
	}
	if _, err := h.Report(job, "pdf"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("pdf format err = %v, want ErrInvalidInput", err)
	}
}
