package status

import (
	"sync"
	"time"

	"github.com/kurochkinivan/video_sorter/internal/domain"
)

const DefaultHistory = 100

type run struct {
	status domain.JobStatus
	result *domain.RunResult
}

// Store keeps per-run progress in memory. Snapshot reports the most recently started run.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]*run
	order   []string
	latest  string
	history int
	now     func() time.Time
}

func NewStore(history int) *Store {
	if history <= 0 {
		history = DefaultHistory
	}

	return &Store{
		runs:    make(map[string]*run, history),
		history: history,
		now:     time.Now,
	}
}

func (s *Store) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[runID]; !ok {
		s.order = append(s.order, runID)
		s.evict()
	}

	s.runs[runID] = &run{
		status: domain.JobStatus{
			RunID:         runID,
			State:         domain.StatusProcessing,
			StatusMessage: domain.MessageStarting,
			UpdatedAt:     s.now(),
		},
	}
	s.latest = runID
}

// Update records progress for a run. Percent is clamped to [0, 100] and never decreases.
func (s *Store) Update(runID string, percent int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[runID]
	if !ok {
		return
	}

	percent = min(max(percent, 0), 100)
	if percent > r.status.PercentComplete {
		r.status.PercentComplete = percent
	}

	r.status.StatusMessage = message
	r.status.UpdatedAt = s.now()
}

func (s *Store) Finish(runID string, result *domain.RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[runID]
	if !ok {
		return
	}

	r.result = result
	r.status.State = domain.StatusDone
	r.status.UpdatedAt = s.now()

	if result != nil && result.Aborted {
		r.status.State = domain.StatusError
		if len(result.FailedCopies) > 0 {
			r.status.StatusMessage = result.FailedCopies[0].Error
		}
	}
}

func (s *Store) Snapshot() domain.JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[s.latest]
	if !ok {
		return domain.DefaultJobStatus()
	}

	return r.status
}

func (s *Store) RunSnapshot(runID string) (domain.JobStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[runID]
	if !ok {
		return domain.JobStatus{}, false
	}

	return r.status, true
}

// Result returns the outcome of a finished run.
func (s *Store) Result(runID string) (*domain.RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[runID]
	if !ok || r.result == nil {
		return nil, false
	}

	return r.result, true
}

// evict drops the oldest runs beyond the history limit. Callers hold s.mu.
func (s *Store) evict() {
	for len(s.order) > s.history {
		oldest := s.order[0]
		s.order = s.order[1:]

		delete(s.runs, oldest)
	}
}
