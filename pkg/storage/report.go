package storage

import (
	"context"
	"time"

	"rrer/pkg/domain"
)

// ReportUpdates describes a set of optional fields that can be applied to an
// existing report during an update. Only non-nil fields will be updated.
type ReportUpdates struct {
	// Status is the new lifecycle status to set. Empty means unchanged.
	Status domain.ReportStatus
	// IfStatus, when non-empty, guards the update: it only applies while the
	// report currently holds this status. A non-matching row is left alone and
	// the update reports no result, letting callers keep lifecycle transitions
	// serialized and idempotent.
	IfStatus domain.ReportStatus
	// Facts, when provided, replaces the stored transaction facts wholesale.
	Facts *domain.TransactionFacts
	// Wizard, when provided, replaces the stored wizard position and data.
	Wizard *domain.WizardState
	// ReceiptID, when provided, records the filing channel's acknowledgement.
	// It is only ever set once; implementations must not overwrite a non-null
	// receipt.
	ReceiptID *string
	// FiledAt, when provided, records the filing acceptance time.
	FiledAt *time.Time
}

// ReportPage groups a page of reports together with an optional NextCursor
// used for pagination.
type ReportPage struct {
	// Reports contains the current page of report records.
	Reports []domain.Report
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ReportStorage defines CRUD and query operations on the report aggregate
// root. Implementations should ensure idempotency and proper handling of
// soft-deletes where applicable.
type ReportStorage interface {
	// StoreReport inserts a report and returns the stored row as it exists in
	// the database (including generated fields).
	StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error)
	// ReportByID fetches a report by its ID, excluding soft-deleted records.
	// Returns nil when not found.
	ReportByID(ctx context.Context, id domain.ReportID) (*domain.Report, error)
	// UpdateReport updates a single report and returns the updated row. When
	// updates.IfStatus is set and the report is not currently in that status,
	// nothing is changed and nil is returned. updated_at is set automatically.
	UpdateReport(ctx context.Context, id domain.ReportID, updates ReportUpdates) (*domain.Report, error)
	// SaveWizardState overwrites the report's persisted wizard position and
	// data. Saves are delivered at least once and must be idempotent.
	SaveWizardState(ctx context.Context, id domain.ReportID, state domain.WizardState) error
	// Reports returns a page of reports created before the optional cursor
	// time, limited by the given limit. If status is non-empty, results are
	// filtered to records with the given status.
	Reports(ctx context.Context,
		status domain.ReportStatus,
		cursor time.Time,
		limit uint) (ReportPage, error)
}

// DeterminationStorage persists determination results and their audit trail.
// A report has at most one live result; storing a new one supersedes the old
// rather than mutating it.
type DeterminationStorage interface {
	// StoreDetermination marks any live determination for the report as
	// superseded and inserts the given result as the new live one.
	StoreDetermination(ctx context.Context, reportID domain.ReportID, result domain.DeterminationResult) error
	// LatestDetermination returns the live (not superseded) determination for
	// the report, or nil when none has been made.
	LatestDetermination(ctx context.Context, reportID domain.ReportID) (*domain.DeterminationResult, error)
	// SupersedeDeterminations marks every live determination for the report as
	// superseded without inserting a replacement. Used when a fact edit
	// invalidates the verdict before a new one exists.
	SupersedeDeterminations(ctx context.Context, reportID domain.ReportID) error
	// HasDeterminations reports whether any determination, live or superseded,
	// was ever made for the report. Distinguishes a first run from a re-run
	// after a fact edit.
	HasDeterminations(ctx context.Context, reportID domain.ReportID) (bool, error)
}
