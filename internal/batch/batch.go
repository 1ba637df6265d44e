// Package batch solves many problems concurrently.
//
// Problems are fed through a channel to a bounded set of workers managed by an
// errgroup. By default the batch stops on the first failing problem and the
// shared context is cancelled so that idle workers exit early. With
// ContinueOnError every problem is attempted and failures are kept in the report.
package batch

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-dsa/internal/problem"
	"github.com/askiada/go-dsa/pkg/measure"
)

var (
	ErrNoProblems = errors.New("no problems to solve")
	ErrSkipped    = errors.New("problem not attempted")
)

// Report collects the results of one batch, in input order. Problems that were
// never attempted because the batch stopped early carry ErrSkipped.
type Report struct {
	RunID   uuid.UUID
	Results []Result
	Measure measure.Measure
	Elapsed time.Duration
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	failed := make([]Result, 0)
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}

	return failed
}

type runner struct {
	concurrent      int
	continueOnError bool
	measure         measure.Measure
	logger          *log.Logger
}

// Option configures Run.
type Option func(r *runner)

// Concurrency sets the number of problems solved in parallel.
func Concurrency(concurrent int) Option {
	return func(r *runner) {
		r.concurrent = concurrent
	}
}

// ContinueOnError keeps solving after a problem fails.
func ContinueOnError() Option {
	return func(r *runner) {
		r.continueOnError = true
	}
}

// WithMeasure records durations in m instead of a fresh measure.
func WithMeasure(m measure.Measure) Option {
	return func(r *runner) {
		r.measure = m
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *log.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

type job struct {
	idx     int
	problem problem.Problem
}

// Run solves every problem and returns the report. The returned error is the
// first failure, or nil when ContinueOnError is set.
func Run(ctx context.Context, problems []problem.Problem, opts ...Option) (*Report, error) {
	if len(problems) == 0 {
		return nil, ErrNoProblems
	}

	r := &runner{
		concurrent: 1,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.concurrent <= 0 {
		r.concurrent = 1
	}
	if r.measure == nil {
		r.measure = measure.NewDefaultMeasure()
	}

	report := &Report{
		RunID:   uuid.New(),
		Results: make([]Result, len(problems)),
		Measure: r.measure,
	}
	for idx, p := range problems {
		report.Results[idx] = Result{Problem: p.Name, Algorithm: p.Algorithm, Err: ErrSkipped}
	}

	logger := r.logger.With("run", report.RunID.String())
	start := time.Now()

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(r.concurrent + 1)

	input := make(chan job)
	errGrp.Go(func() error {
		defer close(input)
		for idx, p := range problems {
			select {
			case <-dCtx.Done():
				return errors.Wrap(dCtx.Err(), "unable to queue problems")
			case input <- job{idx: idx, problem: p}:
			}
		}
		return nil
	})

	// starts many workers concurrently
	// each worker stops as soon as an error happens unless errors are tolerated
	for goIdx := 0; goIdx < r.concurrent; goIdx++ {
		localGoIdx := goIdx
		errGrp.Go(func() error {
			return r.work(dCtx, localGoIdx, logger, input, report)
		})
	}

	err := errGrp.Wait()
	report.Elapsed = time.Since(start)

	logger.Info("batch finished", "problems", len(problems), "failed", len(report.Failed()), "elapsed", report.Elapsed)

	return report, err
}

func (r *runner) work(ctx context.Context, goIdx int, logger *log.Logger, input <-chan job, report *Report) error {
	for {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
		case j, ok := <-input:
			if !ok {
				return nil
			}

			res := Solve(ctx, j.problem)
			report.Results[j.idx] = res

			mt := r.measure.AddMetric(string(j.problem.Algorithm))
			if res.Err != nil {
				mt.AddFailure(res.Duration)
				logger.Error("problem failed", "problem", j.problem.Name, "err", res.Err)

				if !r.continueOnError {
					return res.Err
				}

				continue
			}

			mt.AddDuration(res.Duration)
			logger.Debug("problem solved", "problem", j.problem.Name, "algorithm", j.problem.Algorithm, "elapsed", res.Duration)
		}
	}
}
