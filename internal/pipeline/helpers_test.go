package pipeline_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kurochkinivan/video_sorter/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var manifestHeader = []any{"Category", "Winner", "Original File Name", "Campaign Name"}

func createManifest(t *testing.T, header []any, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "manifest.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func createVideo(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

type statusUpdate struct {
	percent int
	message string
}

// recordingStatus keeps every call made to it so tests can inspect progress ordering.
type recordingStatus struct {
	mu       sync.Mutex
	resets   []string
	updates  []statusUpdate
	finished *domain.RunResult
}

func (s *recordingStatus) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resets = append(s.resets, runID)
}

func (s *recordingStatus) Update(_ string, percent int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, statusUpdate{percent: percent, message: message})
}

func (s *recordingStatus) Finish(_ string, result *domain.RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished = result
}

func (s *recordingStatus) lastPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.updates) == 0 {
		return 0
	}

	return s.updates[len(s.updates)-1].percent
}
