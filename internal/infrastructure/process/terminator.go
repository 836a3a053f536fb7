package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gops "github.com/shirou/gopsutil/v4/process"
)

// Terminator kills every running process with a given executable name, e.g. a
// spreadsheet editor holding a lock on the manifest.
type Terminator struct {
	log  *slog.Logger
	name string
}

func NewTerminator(log *slog.Logger, name string) *Terminator {
	return &Terminator{
		log:  log,
		name: name,
	}
}

func (t *Terminator) BeforeRun(ctx context.Context) error {
	procs, err := gops.ProcessesWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	var errs []error
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || !strings.EqualFold(name, t.name) {
			continue
		}

		if err := p.KillWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to kill %s (pid %d): %w", name, p.Pid, err))
			continue
		}

		t.log.InfoContext(ctx, "terminated process", slog.String("name", name), slog.Int("pid", int(p.Pid)))
	}

	return errors.Join(errs...)
}
