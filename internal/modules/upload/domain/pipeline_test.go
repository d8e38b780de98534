package domain_test

import (
	"errors"
	"testing"
	"time"

	"nextround/internal/modules/upload/domain"
)

var media = domain.Media{Path: "/videos/swing.mp4", Name: "swing.mp4", Size: 1 << 20}

func startedPipeline(t *testing.T, id string) *domain.Pipeline {
	t.Helper()
	p := domain.NewPipeline(10)
	if err := p.Begin(id, media, time.Unix(0, 0)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return p
}

func TestTickClampsAndStops(t *testing.T) {
	t.Parallel()
	p := domain.NewPipeline(30)
	if err := p.Begin("job-1", media, time.Unix(0, 0)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	want := []int{30, 60, 90, 100}
	for _, w := range want {
		if !p.Tick("job-1") {
			t.Fatalf("tick should apply before 100")
		}
		if got := p.Snapshot().Progress; got != w {
			t.Fatalf("progress = %d, want %d", got, w)
		}
	}
	if p.Ticking() || p.Tick("job-1") {
		t.Fatalf("ticks after 100 must be ignored")
	}
	if p.Phase() != domain.PhaseUploading {
		t.Fatalf("reaching 100 must not change phase, got %s", p.Phase())
	}
}

func TestCompleteSnapsProgress(t *testing.T) {
	t.Parallel()
	p := startedPipeline(t, "job-1")
	p.Tick("job-1")
	applied, err := p.Complete("job-1", domain.Result{Score: 88, Tips: []string{"a", "b", "c"}})
	if err != nil || !applied {
		t.Fatalf("complete: applied=%v err=%v", applied, err)
	}
	job := p.Snapshot()
	if job.Phase != domain.PhaseComplete || job.Progress != domain.MaxProgress || job.Result == nil || job.Result.Score != 88 {
		t.Fatalf("unexpected job %+v", job)
	}
}

func TestStaleEventsAreIgnored(t *testing.T) {
	t.Parallel()
	p := startedPipeline(t, "job-1")
	if err := p.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := p.Begin("job-2", media, time.Unix(0, 0)); err != nil {
		t.Fatalf("begin second job: %v", err)
	}
	if p.Tick("job-1") {
		t.Fatalf("tick for old job must be ignored")
	}
	applied, err := p.Complete("job-1", domain.Result{Score: 90, Tips: []string{"x"}})
	if err != nil || applied {
		t.Fatalf("completion for old job must be ignored: applied=%v err=%v", applied, err)
	}
	if job := p.Snapshot(); job.ID != "job-2" || job.Progress != 0 || job.Phase != domain.PhaseUploading {
		t.Fatalf("current job disturbed: %+v", job)
	}
}

func TestInvalidTransitions(t *testing.T) {
	t.Parallel()
	idle := domain.NewPipeline(10)
	if err := idle.Reset(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("reset from idle: %v", err)
	}
	if err := idle.Cancel(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("cancel from idle: %v", err)
	}
	if err := idle.MarkSaved(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("save from idle: %v", err)
	}

	uploading := startedPipeline(t, "job-1")
	if err := uploading.Reset(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("reset from uploading: %v", err)
	}
	if err := uploading.Begin("job-2", media, time.Unix(0, 0)); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("begin from uploading: %v", err)
	}

	if _, err := uploading.Complete("job-1", domain.Result{Score: 80, Tips: []string{"a"}}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := uploading.Complete("job-1", domain.Result{}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("second complete: %v", err)
	}
	if err := uploading.MarkSaved(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := uploading.MarkSaved(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("second save: %v", err)
	}
	if err := uploading.Reset(); err != nil {
		t.Fatalf("reset from complete: %v", err)
	}
	if job := uploading.Snapshot(); job.Phase != domain.PhaseIdle || job.Progress != 0 || job.Result != nil {
		t.Fatalf("reset should clear job, got %+v", job)
	}
}

func TestValidateMedia(t *testing.T) {
	t.Parallel()
	const limit = 100 << 20
	if err := domain.ValidateMedia(domain.Media{Path: "a/SWING.MOV", Size: limit}, limit); err != nil {
		t.Fatalf("mov at limit should pass: %v", err)
	}
	cases := []struct {
		media domain.Media
		want  error
	}{
		{domain.Media{}, domain.ErrNoMedia},
		{domain.Media{Path: "swing.avi", Size: 1}, domain.ErrUnsupportedMedia},
		{domain.Media{Path: "swing.mp4", Size: limit + 1}, domain.ErrMediaTooLarge},
	}
	for _, tc := range cases {
		if err := domain.ValidateMedia(tc.media, limit); !errors.Is(err, tc.want) {
			t.Fatalf("%+v: expected %v, got %v", tc.media, tc.want, err)
		}
	}
}
