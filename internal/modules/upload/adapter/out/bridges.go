package out

import (
	"context"
	"time"

	analyzerdto "nextround/internal/modules/analyzer/dto"
	analyzerin "nextround/internal/modules/analyzer/port/in"
	profilein "nextround/internal/modules/profile/port/in"
	swingsdto "nextround/internal/modules/swings/dto"
	swingsin "nextround/internal/modules/swings/port/in"
	"nextround/internal/modules/upload/domain"
	uploadout "nextround/internal/modules/upload/port/out"
	"nextround/internal/platform/catalog"
)

// ProfileQuota reads the upload quota from the profile module.
type ProfileQuota struct {
	profile profilein.Usecase
}

func NewProfileQuota(profile profilein.Usecase) uploadout.QuotaProvider {
	return ProfileQuota{profile: profile}
}

func (q ProfileQuota) Quota(ctx context.Context) (domain.Quota, error) {
	usage, err := q.profile.Usage(ctx)
	if err != nil {
		return domain.Quota{}, err
	}
	return domain.Quota{Used: usage.Used, Limit: usage.Limit, Unlimited: usage.Unlimited}, nil
}

func (q ProfileQuota) RecordUpload(ctx context.Context) error {
	_, err := q.profile.RecordUpload(ctx)
	return err
}

// AnalyzerBridge asks the analyzer module for a result using the configured
// analyzer.
type AnalyzerBridge struct {
	analyzers analyzerin.Usecase
	name      string
	timeout   time.Duration
}

func NewAnalyzerBridge(analyzers analyzerin.Usecase, name string, timeout time.Duration) uploadout.Analyzer {
	return AnalyzerBridge{analyzers: analyzers, name: name, timeout: timeout}
}

func (b AnalyzerBridge) Analyze(ctx context.Context, job domain.Job) (domain.Result, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	out, err := b.analyzers.Analyze(ctx, analyzerdto.AnalyzeInput{
		Analyzer:   b.name,
		JobID:      job.ID,
		MediaName:  job.Media.Name,
		MediaBytes: job.Media.Size,
	})
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Score: out.Score, Tips: out.Tips, Strengths: out.Strengths}, nil
}

// SwingTimeline appends completed analyses to the swing history.
type SwingTimeline struct {
	swings swingsin.Usecase
}

func NewSwingTimeline(swings swingsin.Usecase) uploadout.Timeline {
	return SwingTimeline{swings: swings}
}

func (t SwingTimeline) Save(ctx context.Context, date time.Time, result domain.Result) (int, error) {
	added, err := t.swings.AddSwing(ctx, swingsdto.AddSwingInput{
		Date:  date.Format(catalog.DateLayout),
		Score: result.Score,
		Tips:  result.Tips,
	})
	if err != nil {
		return 0, err
	}
	return added.ID, nil
}
