package bfvm

import (
	"context"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/syncs"
)

// Runner executes programs on behalf of callers, applying the configured budgets
// and bounding the number of machines running at once.
type Runner struct {
	logger            logs.Logger
	newSpan           logs.NewSpan
	tap               debugs.Tap
	timeout           time.Duration
	privilegedTimeout time.Duration
	cellWidth         int
	tapOnFailure      bool
	sem               syncs.Semaphore
}

func (Module) Runner(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	timeout bfconfigs.Timeout,
	privilegedTimeout bfconfigs.PrivilegedTimeout,
	cellWidth bfconfigs.CellWidth,
	maxConcurrent bfconfigs.MaxConcurrent,
	tapOnFailure bfconfigs.TapOnFailure,
) *Runner {
	return &Runner{
		logger:            logger,
		newSpan:           newSpan,
		tap:               tap,
		timeout:           time.Duration(timeout),
		privilegedTimeout: time.Duration(privilegedTimeout),
		cellWidth:         int(cellWidth),
		tapOnFailure:      bool(tapOnFailure),
		sem:               syncs.NewSemaphore(int(maxConcurrent)),
	}
}

func (r *Runner) Budget(privileged bool) time.Duration {
	if privileged {
		return r.privilegedTimeout
	}
	return r.timeout
}

func (r *Runner) Run(ctx context.Context, program *Program, input string, privileged bool) (Output, error) {
	ctx, _ = r.newSpan(ctx, "")

	if err := r.sem.Acquire(ctx); err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}
	defer r.sem.Release()

	timeout := r.Budget(privileged)
	m := NewMachine(program, input,
		WithTimeout(timeout),
		WithCellWidth(r.cellWidth),
	)
	r.logger.DebugContext(ctx, "execute",
		"program", program.Name,
		"instructions", len(program.Instructions),
		"input", len(m.Input),
		"timeout", timeout,
		"privileged", privileged,
	)

	if err := m.Run(ctx); err != nil {
		r.logger.WarnContext(ctx, "execution failed",
			"program", program.Name,
			"error", err,
			"pc", m.PC,
			"steps", m.Steps,
			"elapsed", m.Elapsed(),
		)
		if r.tapOnFailure {
			globals := m.Inspect()
			globals["error"] = err.Error()
			r.tap(ctx, "execution failed", globals)
		}
		return nil, logs.WrapSpan(ctx, err)
	}

	r.logger.InfoContext(ctx, "execution done",
		"program", program.Name,
		"steps", m.Steps,
		"elapsed", m.Elapsed(),
		"output", len(m.Output),
	)
	return m.Output, nil
}

type Result struct {
	Output Output
	Err    error
}

// Go runs the program in its own goroutine and delivers the result on the returned channel.
func (r *Runner) Go(ctx context.Context, program *Program, input string, privileged bool) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		output, err := r.Run(ctx, program, input, privileged)
		ch <- Result{
			Output: output,
			Err:    err,
		}
	}()
	return ch
}
