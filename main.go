package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"webpconv/config"
	"webpconv/job"
	"webpconv/logger"
	"webpconv/models"
	"webpconv/progress"
)

// Thin shim around the engine: inputs come in as positional paths, all
// settings come from the environment. A real frontend (picker, drag and
// drop) builds the same ConversionJob and installs its own sink.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.LogFile, cfg.Console, logger.ParseLevel(cfg.LogLevel)); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		logger.Fatalf("No input paths given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	j := models.NewJob(inputs, cfg.OutputRoot, cfg.Policy, cfg.Quality)
	j.Workers = cfg.Workers

	summary, err := job.Run(ctx, j, progress.LogSink{})
	if err != nil {
		logger.Fatalf("Job aborted: %v", err)
	}

	if summary.Cancelled {
		logger.Warnf("Interrupted: remaining items were not processed")
	}
	for _, f := range summary.Failures {
		logger.Errorf("  %s: %s error: %v", f.Task.Source.AbsolutePath, f.Kind, f.Err)
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
