package service

import (
	"context"
	"errors"
	"fmt"

	"nextround/internal/modules/upload/domain"
	uploadout "nextround/internal/modules/upload/port/out"
	"nextround/internal/platform/clock"
	"nextround/internal/platform/id"
	"nextround/internal/platform/logging"
)

var logger = logging.WithPrefix("upload")

type Settings struct {
	ProgressStep  int
	MaxMediaBytes int64
}

// UploadService wraps the pipeline state machine with its collaborators.
// Everything except Analyze must be called from the goroutine that owns the
// service.
type UploadService struct {
	clock     clock.Clock
	idGen     id.Generator
	settings  Settings
	pipeline  *domain.Pipeline
	inspector uploadout.MediaInspector
	quota     uploadout.QuotaProvider
	analyzer  uploadout.Analyzer
	notifier  uploadout.Notifier
	timeline  uploadout.Timeline
}

func NewUploadService(
	clock clock.Clock,
	idGen id.Generator,
	settings Settings,
	inspector uploadout.MediaInspector,
	quota uploadout.QuotaProvider,
	analyzer uploadout.Analyzer,
	notifier uploadout.Notifier,
	timeline uploadout.Timeline,
) *UploadService {
	return &UploadService{
		clock:     clock,
		idGen:     idGen,
		settings:  settings,
		pipeline:  domain.NewPipeline(settings.ProgressStep),
		inspector: inspector,
		quota:     quota,
		analyzer:  analyzer,
		notifier:  notifier,
		timeline:  timeline,
	}
}

func (s *UploadService) Snapshot() domain.Job {
	return s.pipeline.Snapshot()
}

func (s *UploadService) Quota(ctx context.Context) (domain.Quota, error) {
	return s.quota.Quota(ctx)
}

// Inspect resolves and validates a media path without touching the
// pipeline.
func (s *UploadService) Inspect(ctx context.Context, path string) (domain.Media, error) {
	if path == "" {
		return domain.Media{}, domain.ErrNoMedia
	}
	media, err := s.inspector.Inspect(ctx, path)
	if err != nil {
		return domain.Media{}, err
	}
	if err := domain.ValidateMedia(media, s.settings.MaxMediaBytes); err != nil {
		return domain.Media{}, err
	}
	return media, nil
}

// Start begins a new job. A free user at the limit gets ErrQuotaExceeded, a
// notice on the notifier, and an unchanged idle pipeline.
func (s *UploadService) Start(ctx context.Context, path string) (domain.Job, error) {
	if phase := s.pipeline.Phase(); phase != domain.PhaseIdle {
		return domain.Job{}, s.logged(fmt.Errorf("%w: cannot start from %s", domain.ErrInvalidTransition, phase))
	}
	media, err := s.Inspect(ctx, path)
	if err != nil {
		return domain.Job{}, err
	}
	quota, err := s.quota.Quota(ctx)
	if err != nil {
		return domain.Job{}, fmt.Errorf("query quota: %w", err)
	}
	if quota.Exceeded() {
		s.notifier.Notify(domain.Notice{
			Kind:    domain.NoticeQuotaExceeded,
			Message: "Upload limit reached! Upgrade to Pro for unlimited uploads.",
			Quota:   quota,
		})
		logger.Info("upload refused", "used", quota.Used, "limit", quota.Limit)
		return domain.Job{}, fmt.Errorf("%w: %d of %d uploads used", domain.ErrQuotaExceeded, quota.Used, quota.Limit)
	}
	jobID := s.idGen.New()
	if err := s.pipeline.Begin(jobID, media, s.clock.Now()); err != nil {
		return domain.Job{}, s.logged(err)
	}
	logger.Info("upload started", "job", jobID, "media", media.Name, "bytes", media.Size)
	return s.pipeline.Snapshot(), nil
}

// Tick applies one progress tick for jobID. more is false once no further
// ticks are wanted for that job.
func (s *UploadService) Tick(jobID string) (job domain.Job, more bool) {
	if s.pipeline.Tick(jobID) {
		logger.Debug("upload progress", "job", jobID, "progress", s.pipeline.Snapshot().Progress)
	}
	job = s.pipeline.Snapshot()
	return job, job.ID == jobID && s.pipeline.Ticking()
}

// Analyze asks the analysis collaborator for a result. It only reads job,
// so drivers may call it off the owning goroutine.
func (s *UploadService) Analyze(ctx context.Context, job domain.Job) (domain.Result, error) {
	result, err := s.analyzer.Analyze(ctx, job)
	if err != nil {
		return domain.Result{}, fmt.Errorf("analyze job %s: %w", job.ID, err)
	}
	return result, nil
}

// Finish completes jobID with result and counts the upload against the
// quota. A result for a job that is no longer current is dropped and the
// current snapshot returned.
func (s *UploadService) Finish(ctx context.Context, jobID string, result domain.Result) (domain.Job, error) {
	applied, err := s.pipeline.Complete(jobID, result)
	if err != nil {
		return domain.Job{}, s.logged(err)
	}
	if !applied {
		logger.Debug("stale completion ignored", "job", jobID)
		return s.pipeline.Snapshot(), nil
	}
	if err := s.quota.RecordUpload(ctx); err != nil {
		logger.Error("record upload", "job", jobID, "err", err)
	}
	logger.Info("upload complete", "job", jobID, "score", result.Score)
	return s.pipeline.Snapshot(), nil
}

// Fail abandons jobID after its analysis failed.
func (s *UploadService) Fail(jobID string, cause error) domain.Job {
	job := s.pipeline.Snapshot()
	if job.ID == jobID && job.Phase == domain.PhaseUploading {
		_ = s.pipeline.Cancel()
		logger.Warn("upload failed", "job", jobID, "err", cause)
	}
	return s.pipeline.Snapshot()
}

func (s *UploadService) Cancel() error {
	jobID := s.pipeline.Snapshot().ID
	if err := s.pipeline.Cancel(); err != nil {
		return s.logged(err)
	}
	logger.Info("upload cancelled", "job", jobID)
	return nil
}

func (s *UploadService) Reset() error {
	if err := s.pipeline.Reset(); err != nil {
		return s.logged(err)
	}
	return nil
}

// SaveToTimeline adds the completed result to the swing history once.
func (s *UploadService) SaveToTimeline(ctx context.Context) (int, error) {
	job := s.pipeline.Snapshot()
	if job.Phase != domain.PhaseComplete || job.Saved || job.Result == nil {
		return 0, s.logged(fmt.Errorf("%w: cannot save from %s", domain.ErrInvalidTransition, job.Phase))
	}
	swingID, err := s.timeline.Save(ctx, s.clock.Now(), *job.Result)
	if err != nil {
		return 0, err
	}
	if err := s.pipeline.MarkSaved(); err != nil {
		return 0, s.logged(err)
	}
	logger.Info("saved to timeline", "job", job.ID, "swing", swingID)
	return swingID, nil
}

// logged reports invalid transitions at error level; they indicate a driver
// bug rather than something the user did.
func (s *UploadService) logged(err error) error {
	if errors.Is(err, domain.ErrInvalidTransition) {
		logger.Error("pipeline transition rejected", "err", err)
	}
	return err
}
