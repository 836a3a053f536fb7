package pipeline

import (
	"context"

	"github.com/kurochkinivan/video_sorter/internal/domain"
)

type ManifestParser interface {
	ParseManifest(path string) ([]*domain.ManifestRow, error)
}

type FileCopier interface {
	CopyFile(src, dst string) error
}

type StatusPublisher interface {
	Reset(runID string)
	Update(runID string, percent int, message string)
	Finish(runID string, result *domain.RunResult)
}

// PreRunHook runs before a reconciliation starts. Its error never affects the run.
type PreRunHook interface {
	BeforeRun(ctx context.Context) error
}
