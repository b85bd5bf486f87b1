package postgres

import (
	"context"
	"fmt"

	"rrer/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const filingsTable = "filings"

func (p *PgSQL) StoreFiling(ctx context.Context, sub domain.FilingSubmission) (*domain.FilingSubmission, error) {
	var pgFiling PgFiling
	pgFiling.FromDomain(sub)

	var row PgFiling
	found, err := p.Builder.Insert(filingsTable).
		Rows(pgFiling).
		Returning(&PgFiling{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store filing into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store filing into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// FilingByReport returns the report's filing row, or nil when the report has
// never attempted filing. The report_id unique constraint guarantees at most
// one row exists.
func (p *PgSQL) FilingByReport(ctx context.Context, reportID domain.ReportID) (*domain.FilingSubmission, error) {
	var row PgFiling
	found, err := p.Builder.From(filingsTable).
		Where(goqu.I("report_id").Eq(uuid.UUID(reportID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch filing by report id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ReplaceFiling overwrites the mutable columns of the filing row, optionally
// guarded by the row's current status. The receipt column is write-once: an
// existing receipt is never overwritten, no matter what the new value says.
func (p *PgSQL) ReplaceFiling(ctx context.Context,
	sub domain.FilingSubmission,
	ifStatusIn ...domain.FilingStatus) (*domain.FilingSubmission, error) {
	var pgFiling PgFiling
	pgFiling.FromDomain(sub)

	rec := goqu.Record{
		"status":            pgFiling.Status,
		"receipt_id":        goqu.L("COALESCE(receipt_id, ?)", pgFiling.ReceiptID),
		"rejection_code":    pgFiling.RejectionCode,
		"rejection_message": pgFiling.RejectionMessage,
		"attempts":          pgFiling.Attempts,
		"last_error":        pgFiling.LastError,
		"submitted_at":      pgFiling.SubmittedAt,
		"resolved_at":       pgFiling.ResolvedAt,
		"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(pgFiling.ID),
	}
	if len(ifStatusIn) > 0 {
		statuses := make([]string, 0, len(ifStatusIn))
		for _, s := range ifStatusIn {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	var row PgFiling
	found, err := p.Builder.Update(filingsTable).
		Set(rec).Where(w...).
		Returning(&PgFiling{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update filing in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
