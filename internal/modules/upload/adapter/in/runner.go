package in

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"nextround/internal/modules/upload/dto"
	uploadin "nextround/internal/modules/upload/port/in"
)

type Timing struct {
	TickInterval    time.Duration
	CompletionDelay time.Duration
}

// Runner drives a pipeline outside Bubble Tea. A ticker goroutine and a
// completion goroutine only send events; the Run loop is the single owner
// of the pipeline.
type Runner struct {
	usecase uploadin.Usecase
	timing  Timing
}

func NewRunner(usecase uploadin.Usecase, timing Timing) *Runner {
	return &Runner{usecase: usecase, timing: timing}
}

type runnerEvent struct {
	tick   bool
	result dto.ResultOutput
	err    error
}

// Run uploads path to completion. onProgress, if set, sees every applied
// tick. Cancelling ctx abandons the job and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, path string, onProgress func(dto.JobOutput)) (dto.JobOutput, error) {
	job, err := r.usecase.Start(ctx, dto.StartInput{Path: path})
	if err != nil {
		return dto.JobOutput{}, err
	}
	if onProgress != nil {
		onProgress(job)
	}

	timerCtx, stopTimers := context.WithCancel(ctx)
	defer stopTimers()
	events := make(chan runnerEvent)
	stopTicks := make(chan struct{})
	g, gctx := errgroup.WithContext(timerCtx)

	g.Go(func() error {
		ticker := time.NewTicker(r.timing.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-stopTicks:
				return nil
			case <-ticker.C:
				select {
				case events <- runnerEvent{tick: true}:
				case <-gctx.Done():
					return nil
				}
			}
		}
	})
	g.Go(func() error {
		timer := time.NewTimer(r.timing.CompletionDelay)
		defer timer.Stop()
		select {
		case <-gctx.Done():
			return nil
		case <-timer.C:
		}
		result, err := r.usecase.Analyze(gctx, job)
		select {
		case events <- runnerEvent{result: result, err: err}:
		case <-gctx.Done():
		}
		return nil
	})
	shutdown := func() {
		stopTimers()
		_ = g.Wait()
	}

	ticking := true
	for {
		select {
		case <-ctx.Done():
			shutdown()
			if cancelErr := r.usecase.Cancel(context.WithoutCancel(ctx)); cancelErr != nil {
				return dto.JobOutput{}, errors.Join(ctx.Err(), cancelErr)
			}
			return dto.JobOutput{}, ctx.Err()
		case ev := <-events:
			if ev.tick {
				tick := r.usecase.Tick(ctx, job.ID)
				if onProgress != nil {
					onProgress(tick.Job)
				}
				if !tick.More && ticking {
					ticking = false
					close(stopTicks)
				}
				continue
			}
			shutdown()
			if ev.err != nil {
				r.usecase.Fail(ctx, job.ID, ev.err)
				return dto.JobOutput{}, ev.err
			}
			done, err := r.usecase.Finish(ctx, dto.FinishInput{JobID: job.ID, Result: ev.result})
			if err != nil {
				return dto.JobOutput{}, err
			}
			if onProgress != nil {
				onProgress(done)
			}
			return done, nil
		}
	}
}
