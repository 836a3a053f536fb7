package domain

import "time"

type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

const (
	MessageNoFilesProcessed = "No files processed yet."
	MessageStarting         = "Starting file processing..."
)

// JobStatus is a point-in-time view of a reconciliation run's progress.
type JobStatus struct {
	RunID           string    `json:"run_id,omitempty"`
	State           Status    `json:"state"`
	PercentComplete int       `json:"percent_complete"`
	StatusMessage   string    `json:"status_message"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func DefaultJobStatus() JobStatus {
	return JobStatus{
		State:         StatusIdle,
		StatusMessage: MessageNoFilesProcessed,
	}
}
