// Package domain holds the ingestion pipeline state machine. A Pipeline is
// owned by exactly one goroutine; drivers feed it timer events tagged with
// the job id they were scheduled for, and events for any other job are
// dropped.
package domain

import (
	"errors"
	"fmt"
	"time"
)

const MaxProgress = 100

var (
	ErrQuotaExceeded     = errors.New("upload quota exceeded")
	ErrInvalidTransition = errors.New("invalid pipeline transition")
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseUploading Phase = "uploading"
	PhaseComplete  Phase = "complete"
)

type Result struct {
	Score     int
	Tips      []string
	Strengths []string
}

type Job struct {
	ID        string
	Media     Media
	Phase     Phase
	Progress  int
	StartedAt time.Time
	// Result is set once the job is complete.
	Result *Result
	Saved  bool
}

type Pipeline struct {
	step int
	job  Job
}

func NewPipeline(step int) *Pipeline {
	if step < 1 {
		step = 1
	}
	return &Pipeline{step: step, job: Job{Phase: PhaseIdle}}
}

func (p *Pipeline) Phase() Phase { return p.job.Phase }

// Snapshot returns a copy of the current job.
func (p *Pipeline) Snapshot() Job {
	job := p.job
	if job.Result != nil {
		r := *job.Result
		r.Tips = append([]string(nil), r.Tips...)
		r.Strengths = append([]string(nil), r.Strengths...)
		job.Result = &r
	}
	return job
}

// Begin moves idle to uploading for a new job.
func (p *Pipeline) Begin(id string, media Media, now time.Time) error {
	if p.job.Phase != PhaseIdle {
		return transitionError("start", p.job.Phase)
	}
	if id == "" {
		return fmt.Errorf("job id is required")
	}
	p.job = Job{ID: id, Media: media, Phase: PhaseUploading, StartedAt: now}
	return nil
}

// Ticking reports whether progress ticks are still wanted.
func (p *Pipeline) Ticking() bool {
	return p.job.Phase == PhaseUploading && p.job.Progress < MaxProgress
}

// Tick advances progress by one step for job id, clamped at MaxProgress.
// It reports false when the event was ignored.
func (p *Pipeline) Tick(id string) bool {
	if id != p.job.ID || !p.Ticking() {
		return false
	}
	p.job.Progress += p.step
	if p.job.Progress > MaxProgress {
		p.job.Progress = MaxProgress
	}
	return true
}

// Complete attaches the analysis result for job id. Progress snaps to
// MaxProgress. Events for a job other than the current one are ignored and
// report false.
func (p *Pipeline) Complete(id string, result Result) (bool, error) {
	if id == "" || id != p.job.ID {
		return false, nil
	}
	if p.job.Phase != PhaseUploading {
		return false, transitionError("complete", p.job.Phase)
	}
	p.job.Phase = PhaseComplete
	p.job.Progress = MaxProgress
	p.job.Result = &result
	return true, nil
}

// Reset discards a completed job.
func (p *Pipeline) Reset() error {
	if p.job.Phase != PhaseComplete {
		return transitionError("reset", p.job.Phase)
	}
	p.job = Job{Phase: PhaseIdle}
	return nil
}

// Cancel abandons an in-flight job. Pending timer events for it become
// stale.
func (p *Pipeline) Cancel() error {
	if p.job.Phase != PhaseUploading {
		return transitionError("cancel", p.job.Phase)
	}
	p.job = Job{Phase: PhaseIdle}
	return nil
}

// MarkSaved records that the completed result went to the timeline.
func (p *Pipeline) MarkSaved() error {
	if p.job.Phase != PhaseComplete || p.job.Saved {
		return transitionError("save", p.job.Phase)
	}
	p.job.Saved = true
	return nil
}

func transitionError(action string, from Phase) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, from)
}
