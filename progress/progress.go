// Package progress defines the one-way reporting boundary between the
// conversion engine and whatever presentation layer consumes it.
package progress

import (
	"webpconv/logger"
	"webpconv/models"
)

// Sink receives events from a running job. The engine calls it from a
// single aggregation goroutine, one event at a time, and never blocks
// on anything beyond the sink's own return; implementations that talk
// to a UI should hand off and return quickly.
type Sink interface {
	// Outcome is called once per finished item, in completion order.
	Outcome(o models.TaskOutcome)
	// Progress is called after each outcome with the running count.
	Progress(completed, total int)
	// Done is called exactly once, after the last outcome.
	Done(summary models.JobSummary)
}

// LogSink reports job events through the package logger.
type LogSink struct{}

func (LogSink) Outcome(o models.TaskOutcome) {
	switch o.Status {
	case models.StatusConverted:
		logger.Infof("converted %s -> %s", o.Task.Source.AbsolutePath, o.Task.Destination)
	case models.StatusSkipped:
		logger.Infof("skipped %s (exists: %s)", o.Task.Source.AbsolutePath, o.Task.Destination)
	case models.StatusFailed:
		logger.Errorf("failed %s (%s): %v", o.Task.Source.AbsolutePath, o.Kind, o.Err)
	}
}

func (LogSink) Progress(completed, total int) {
	logger.Debugf("progress %d/%d", completed, total)
}

func (LogSink) Done(s models.JobSummary) {
	logger.Infof("done: %d converted, %d skipped, %d failed", s.Converted, s.Skipped, s.Failed)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Outcome(models.TaskOutcome) {}
func (NopSink) Progress(int, int)          {}
func (NopSink) Done(models.JobSummary)     {}
