package usecase

import (
	"context"

	"nextround/internal/modules/upload/domain"
	"nextround/internal/modules/upload/dto"
	uploadin "nextround/internal/modules/upload/port/in"
	"nextround/internal/modules/upload/service"
)

type Interactor struct {
	svc *service.UploadService
}

func NewInteractor(svc *service.UploadService) uploadin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Snapshot(context.Context) dto.JobOutput {
	return toJobOutput(i.svc.Snapshot())
}

func (i *Interactor) Quota(ctx context.Context) (dto.QuotaOutput, error) {
	q, err := i.svc.Quota(ctx)
	if err != nil {
		return dto.QuotaOutput{}, err
	}
	return dto.QuotaOutput{Used: q.Used, Limit: q.Limit, Unlimited: q.Unlimited, Exceeded: q.Exceeded()}, nil
}

func (i *Interactor) Inspect(ctx context.Context, path string) (dto.MediaOutput, error) {
	media, err := i.svc.Inspect(ctx, path)
	if err != nil {
		return dto.MediaOutput{}, err
	}
	return toMediaOutput(media), nil
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.JobOutput, error) {
	job, err := i.svc.Start(ctx, input.Path)
	if err != nil {
		return dto.JobOutput{}, err
	}
	return toJobOutput(job), nil
}

func (i *Interactor) Tick(_ context.Context, jobID string) dto.TickOutput {
	job, more := i.svc.Tick(jobID)
	return dto.TickOutput{Job: toJobOutput(job), More: more}
}

func (i *Interactor) Analyze(ctx context.Context, job dto.JobOutput) (dto.ResultOutput, error) {
	result, err := i.svc.Analyze(ctx, domain.Job{
		ID:    job.ID,
		Media: domain.Media{Path: job.Media.Path, Name: job.Media.Name, Size: job.Media.Bytes},
		Phase: domain.Phase(job.Phase),
	})
	if err != nil {
		return dto.ResultOutput{}, err
	}
	return toResultOutput(result), nil
}

func (i *Interactor) Finish(ctx context.Context, input dto.FinishInput) (dto.JobOutput, error) {
	job, err := i.svc.Finish(ctx, input.JobID, domain.Result{
		Score:     input.Result.Score,
		Tips:      input.Result.Tips,
		Strengths: input.Result.Strengths,
	})
	if err != nil {
		return dto.JobOutput{}, err
	}
	return toJobOutput(job), nil
}

func (i *Interactor) Fail(_ context.Context, jobID string, cause error) dto.JobOutput {
	return toJobOutput(i.svc.Fail(jobID, cause))
}

func (i *Interactor) Cancel(context.Context) error {
	return i.svc.Cancel()
}

func (i *Interactor) Reset(context.Context) error {
	return i.svc.Reset()
}

func (i *Interactor) SaveToTimeline(ctx context.Context) (dto.SaveOutput, error) {
	swingID, err := i.svc.SaveToTimeline(ctx)
	if err != nil {
		return dto.SaveOutput{}, err
	}
	return dto.SaveOutput{SwingID: swingID}, nil
}

func toMediaOutput(m domain.Media) dto.MediaOutput {
	return dto.MediaOutput{Path: m.Path, Name: m.Name, Bytes: m.Size}
}

func toResultOutput(r domain.Result) dto.ResultOutput {
	return dto.ResultOutput{
		Score:     r.Score,
		Tips:      append([]string(nil), r.Tips...),
		Strengths: append([]string(nil), r.Strengths...),
	}
}

func toJobOutput(job domain.Job) dto.JobOutput {
	out := dto.JobOutput{
		ID:       job.ID,
		Media:    toMediaOutput(job.Media),
		Phase:    string(job.Phase),
		Progress: job.Progress,
		Saved:    job.Saved,
	}
	if job.Result != nil {
		r := toResultOutput(*job.Result)
		out.Result = &r
	}
	return out
}
