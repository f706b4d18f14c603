// Package job drives a conversion run end to end: collect, validate,
// resolve, dispatch to the worker pool, aggregate outcomes.
package job

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"webpconv/collector"
	"webpconv/config"
	"webpconv/encoder"
	"webpconv/logger"
	"webpconv/models"
	"webpconv/progress"
	"webpconv/resolver"
	"webpconv/writer"
)

var validate = validator.New()

// writeOut is a seam over the atomic writer so tests can exercise
// write-failure isolation.
var writeOut = writer.AtomicWrite

// Run executes one job and reports everything to sink. Fatal problems
// (bad job config, missing input, unsafe output root) return an error
// before any output is written; per-item failures are isolated into
// Failed outcomes and processing continues. A nil sink discards events.
func Run(ctx context.Context, j models.ConversionJob, sink progress.Sink) (models.JobSummary, error) {
	if sink == nil {
		sink = progress.NopSink{}
	}
	if err := validate.Struct(j); err != nil {
		return models.JobSummary{}, fmt.Errorf("invalid job: %w", err)
	}
	encoder.RegisterDefaults()

	items, err := collector.Collect(j.Inputs)
	if err != nil {
		return models.JobSummary{}, err
	}
	if err := collector.Validate(j.Inputs, j.OutputRoot); err != nil {
		return models.JobSummary{}, err
	}

	logger.Infof("job %s: %d items, policy %s, output %s", j.ID, len(items), j.Policy, j.OutputRoot)

	// Resolution is sequential so rename numbering is assigned
	// deterministically before anything runs in parallel. A resolution
	// failure (unwritable output directory) becomes a Failed outcome.
	res := resolver.New(j.OutputRoot, j.Policy)
	var tasks []models.ResolvedTask
	var preFailed []models.TaskOutcome
	for _, item := range items {
		task, err := res.Resolve(item)
		if err != nil {
			preFailed = append(preFailed, models.TaskOutcome{
				Task:   models.ResolvedTask{Source: item},
				Status: models.StatusFailed,
				Kind:   models.ErrWrite,
				Err:    err,
			})
			continue
		}
		tasks = append(tasks, task)
	}

	total := len(items)
	workers := config.WorkerCount(j.Workers)
	taskCh := make(chan models.ResolvedTask)
	outCh := make(chan models.TaskOutcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				outCh <- runTask(t, j.Quality)
			}
		}()
	}

	// Dispatcher. Cancellation is checked before each dispatch: once
	// signaled nothing new is handed out, in-flight tasks finish, and
	// undispatched items stay out of the summary.
	go func() {
		defer close(taskCh)
		for _, t := range tasks {
			if ctx.Err() != nil {
				return
			}
			select {
			case taskCh <- t:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Single consumer: the only writer to counts and the failure list,
	// and the only caller of the sink, so readers never see a partially
	// updated progress pair.
	var summary models.JobSummary
	completed := 0
	record := func(o models.TaskOutcome) {
		switch o.Status {
		case models.StatusConverted:
			summary.Converted++
		case models.StatusSkipped:
			summary.Skipped++
		case models.StatusFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, o)
		}
		completed++
		sink.Outcome(o)
		sink.Progress(completed, total)
	}

	for _, o := range preFailed {
		record(o)
	}
	for o := range outCh {
		record(o)
	}

	summary.Cancelled = ctx.Err() != nil
	sink.Done(summary)
	logger.Infof("job %s done: %d converted, %d skipped, %d failed", j.ID, summary.Converted, summary.Skipped, summary.Failed)
	return summary, nil
}

// runTask converts one resolved task. Skip tasks never reach the codec.
func runTask(t models.ResolvedTask, quality int) models.TaskOutcome {
	if t.Action == models.ActionSkipExisting {
		return models.TaskOutcome{Task: t, Status: models.StatusSkipped}
	}

	img, err := encoder.DecodeFile(t.Source.AbsolutePath)
	if err != nil {
		return models.TaskOutcome{Task: t, Status: models.StatusFailed, Kind: models.ErrDecode, Err: err}
	}

	data, err := encoder.EncodeWebP(img, quality)
	if err != nil {
		return models.TaskOutcome{Task: t, Status: models.StatusFailed, Kind: models.ErrEncode, Err: err}
	}

	if err := writeOut(t.Destination, data); err != nil {
		return models.TaskOutcome{Task: t, Status: models.StatusFailed, Kind: models.ErrWrite, Err: err}
	}
	return models.TaskOutcome{Task: t, Status: models.StatusConverted}
}
