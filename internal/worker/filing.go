package worker

import (
	"context"
	"fmt"

	"rrer/internal/report"
	"rrer/pkg/logger"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FilingWorker is the River worker that drives queued filing submissions. All
// protocol decisions (lost races, channel faults, undecided outcomes) live in
// the report service; an error out of Work means the job itself broke, for
// example the database went away, and River may retry it. The job's
// MaxAttempts of 1 keeps that retry from ever re-submitting a payload: a
// re-run finds the submission no longer queued and drains.
type FilingWorker struct {
	river.WorkerDefaults[report.FilingJobArgs]

	service report.Service
}

// NewFilingWorker constructs a FilingWorker backed by the given report service.
func NewFilingWorker(service report.Service) *FilingWorker {
	return &FilingWorker{service: service}
}

// Work processes a single filing job.
func (w *FilingWorker) Work(ctx context.Context, job *river.Job[report.FilingJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("reportID", uuid.UUID(job.Args.ReportID).String()))

	if err := w.service.ProcessFiling(ctx, job.Args.ReportID); err != nil {
		logger.Error(ctx, "error processing filing", zap.Error(err))

		return fmt.Errorf("could not process filing: %w", err)
	}

	logger.Info(ctx, "filing job processed")

	return nil
}
