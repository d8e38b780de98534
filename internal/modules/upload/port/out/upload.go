package out

import (
	"context"
	"time"

	"nextround/internal/modules/upload/domain"
)

type QuotaProvider interface {
	Quota(ctx context.Context) (domain.Quota, error)
	RecordUpload(ctx context.Context) error
}

type Analyzer interface {
	Analyze(ctx context.Context, job domain.Job) (domain.Result, error)
}

// Notifier delivers notices without blocking the caller.
type Notifier interface {
	Notify(notice domain.Notice)
}

type Timeline interface {
	Save(ctx context.Context, date time.Time, result domain.Result) (int, error)
}

// MediaInspector resolves a selected path to its name and size.
type MediaInspector interface {
	Inspect(ctx context.Context, path string) (domain.Media, error)
}
