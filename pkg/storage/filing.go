package storage

import (
	"context"

	"rrer/pkg/domain"
)

// FilingStorage persists filing submissions. A report has at most one filing
// row; retries update that row in place so Attempts accumulates across the
// whole submission lineage.
type FilingStorage interface {
	// StoreFiling inserts the report's filing row and returns it as stored.
	// The report_id unique constraint makes a second insert fail, which keeps
	// the one-row-per-report invariant at the database level.
	StoreFiling(ctx context.Context, sub domain.FilingSubmission) (*domain.FilingSubmission, error)
	// FilingByReport returns the report's filing row, or nil when the report
	// has never attempted filing.
	FilingByReport(ctx context.Context, reportID domain.ReportID) (*domain.FilingSubmission, error)
	// ReplaceFiling overwrites the mutable columns of the filing row with the
	// given value. When ifStatusIn is non-empty the write only applies while
	// the row currently holds one of those statuses; a non-matching row is
	// left alone and nil is returned. This guard is what makes duplicate
	// outcome signals harmless: a second accept finds the row already accepted
	// and changes nothing.
	ReplaceFiling(ctx context.Context,
		sub domain.FilingSubmission,
		ifStatusIn ...domain.FilingStatus) (*domain.FilingSubmission, error)
}
