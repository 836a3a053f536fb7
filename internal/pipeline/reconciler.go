package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/video_sorter/internal/domain"
)

const VideoExtension = ".mp4"

const (
	errInvalidManifestType = "Invalid Excel file type."
	errSourceFolderMissing = "Video folder does not exist."
)

// Reconciler copies the videos listed in a manifest into a category/winner tree.
// A run is synchronous; ctx is only used for logging and the pre-run hook.
type Reconciler struct {
	log    *slog.Logger
	parser ManifestParser
	copier FileCopier
	status StatusPublisher
	hook   PreRunHook
	now    func() time.Time
}

// NewReconciler builds a Reconciler. hook may be nil.
func NewReconciler(
	log *slog.Logger,
	parser ManifestParser,
	copier FileCopier,
	status StatusPublisher,
	hook PreRunHook,
) *Reconciler {
	return &Reconciler{
		log:    log,
		parser: parser,
		copier: copier,
		status: status,
		hook:   hook,
		now:    time.Now,
	}
}

func (r *Reconciler) Run(ctx context.Context, req domain.RunRequest) *domain.RunResult {
	runID := uuid.NewString()
	result := domain.NewRunResult(runID, r.now())

	log := r.log.With(
		slog.String("run_id", runID),
		slog.String("manifest", req.ManifestPath),
		slog.String("source_folder", req.SourceFolder),
		slog.String("destination_root", req.DestinationRoot),
	)

	r.status.Reset(runID)
	defer func() { r.status.Finish(runID, result) }()

	r.beforeRun(ctx, log)

	manifest, err := r.prepare(req)
	if err != nil {
		log.ErrorContext(ctx, "run aborted", slog.String("err", err.Error()))
		return result.Abort(err.Error())
	}

	log.InfoContext(ctx, "starting file processing", slog.Int("rows", len(manifest)))

	start := r.now()

	if len(manifest) == 0 {
		r.status.Update(runID, 100, "Manifest has no rows.")
	}

	for i, row := range manifest {
		message := r.processRow(ctx, log, req, row, result)

		processed := i + 1
		r.status.Update(runID, processed*100/len(manifest), message)

		log.DebugContext(ctx, "processed row", slog.Int("row", processed), slog.Int("total", len(manifest)))
	}

	result.TotalRows = len(manifest)
	result.Elapsed = r.now().Sub(start)

	log.InfoContext(ctx, "file processing finished",
		slog.Int("not_found", len(result.NotFound)),
		slog.Int("failed_copies", len(result.FailedCopies)),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result
}

func (r *Reconciler) beforeRun(ctx context.Context, log *slog.Logger) {
	if r.hook == nil {
		return
	}

	if err := r.hook.BeforeRun(ctx); err != nil {
		log.WarnContext(ctx, "pre-run hook failed, ignoring", slog.String("err", err.Error()))
	}
}

func (r *Reconciler) prepare(req domain.RunRequest) ([]*domain.ManifestRow, error) {
	if !strings.HasSuffix(req.ManifestPath, ManifestExtension) {
		return nil, errors.New(errInvalidManifestType)
	}

	if !isDir(req.SourceFolder) {
		return nil, errors.New(errSourceFolderMissing)
	}

	manifest, err := r.parser.ParseManifest(req.ManifestPath)
	if err != nil {
		return nil, err
	}

	return manifest, nil
}

// processRow copies one manifest row and returns the status message describing what happened.
func (r *Reconciler) processRow(
	ctx context.Context,
	log *slog.Logger,
	req domain.RunRequest,
	row *domain.ManifestRow,
	result *domain.RunResult,
) string {
	sourceName := row.OriginalFileName + VideoExtension
	targetName := Sanitize(row.CampaignName) + VideoExtension

	sourcePath := filepath.Join(req.SourceFolder, sourceName)
	targetDir := filepath.Join(req.DestinationRoot, Sanitize(row.Category), Sanitize(row.Winner))
	targetPath := filepath.Join(targetDir, targetName)

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		err = fmt.Errorf("failed to create directory %q: %w", targetDir, err)
		log.ErrorContext(ctx, "failed to prepare destination", slog.String("err", err.Error()))

		result.FailedCopies = append(result.FailedCopies, domain.FailedCopy{
			OriginalFile: sourceName,
			Destination:  targetPath,
			Error:        err.Error(),
		})

		return fmt.Sprintf("Failed to copy: '%s'", sourceName)
	}

	if !isRegularFile(sourcePath) {
		log.DebugContext(ctx, "source file not found", slog.String("source", sourcePath))

		result.NotFound = append(result.NotFound, sourceName)

		return fmt.Sprintf("File not found: '%s'", sourceName)
	}

	if err := r.copier.CopyFile(sourcePath, targetPath); err != nil {
		log.ErrorContext(ctx, "failed to copy file",
			slog.String("source", sourcePath),
			slog.String("destination", targetPath),
			slog.String("err", err.Error()),
		)

		result.FailedCopies = append(result.FailedCopies, domain.FailedCopy{
			OriginalFile: sourceName,
			Destination:  targetPath,
			Error:        err.Error(),
		})

		return fmt.Sprintf("Failed to copy: '%s'", sourceName)
	}

	log.InfoContext(ctx, "copied file", slog.String("source", sourceName), slog.String("destination", targetPath))

	return fmt.Sprintf("Copied: '%s' to '%s'", sourceName, targetName)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
