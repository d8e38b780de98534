package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nextround/internal/modules/upload/domain"
	uploadout "nextround/internal/modules/upload/port/out"
)

type FileInspector struct{}

func NewFileInspector() uploadout.MediaInspector {
	return FileInspector{}
}

func (FileInspector) Inspect(_ context.Context, path string) (domain.Media, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Media{}, fmt.Errorf("%w: %v", domain.ErrNoMedia, err)
	}
	if info.IsDir() {
		return domain.Media{}, fmt.Errorf("%w: %s is a directory", domain.ErrNoMedia, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return domain.Media{Path: abs, Name: info.Name(), Size: info.Size()}, nil
}
