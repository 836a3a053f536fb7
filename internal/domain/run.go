package domain

import (
	"encoding/json"
	"time"
)

type RunRequest struct {
	ManifestPath    string `json:"manifest_path"`
	SourceFolder    string `json:"source_folder"`
	DestinationRoot string `json:"destination_root"`
}

// FailedCopy describes a row whose copy raised an error. Precondition failures
// are reported as a single FailedCopy with only Error set.
type FailedCopy struct {
	OriginalFile string `json:"original_file,omitempty"`
	Destination  string `json:"destination,omitempty"`
	Error        string `json:"error"`
}

type RunResult struct {
	RunID        string        `json:"run_id"`
	StartedAt    time.Time     `json:"started_at"`
	NotFound     []string      `json:"not_found"`
	FailedCopies []FailedCopy  `json:"failed_copies"`
	Elapsed      time.Duration `json:"-"`
	TotalRows    int           `json:"total_rows"`
	Aborted      bool          `json:"aborted"`
}

func NewRunResult(runID string, startedAt time.Time) *RunResult {
	return &RunResult{
		RunID:        runID,
		StartedAt:    startedAt,
		NotFound:     []string{},
		FailedCopies: []FailedCopy{},
	}
}

// Abort turns r into a precondition-error result: no rows, one error entry, zero elapsed time.
func (r *RunResult) Abort(msg string) *RunResult {
	r.NotFound = []string{}
	r.FailedCopies = []FailedCopy{{Error: msg}}
	r.Elapsed = 0
	r.TotalRows = 0
	r.Aborted = true

	return r
}

func (r *RunResult) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

func (r *RunResult) MarshalJSON() ([]byte, error) {
	type alias RunResult

	return json.Marshal(struct {
		*alias
		ElapsedSeconds float64 `json:"elapsed_seconds"`
	}{
		alias:          (*alias)(r),
		ElapsedSeconds: r.ElapsedSeconds(),
	})
}
