package out

import (
	"context"

	"nextround/internal/modules/analyzer/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Engine produces an analysis in process.
type Engine interface {
	Analyze(ctx context.Context, request domain.Request) (domain.Result, error)
}

// Host runs analyzers that live in separate plugin binaries.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Analyze(ctx context.Context, manifest domain.Manifest, request domain.Request) (domain.Result, error)
}
