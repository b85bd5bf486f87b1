package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reportsTable        = "reports"
	determinationsTable = "determinations"
)

func (p *PgSQL) StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var pgReport PgReport
	if err := pgReport.FromDomain(report); err != nil {
		return nil, err
	}

	var row PgReport
	found, err := p.Builder.Insert(reportsTable).
		Rows(pgReport).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store report into pg: no row returned")
	}

	return row.ToDomain()
}

// ReportByID returns a report by its ID, excluding soft-deleted rows.
func (p *PgSQL) ReportByID(ctx context.Context, id domain.ReportID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateReport updates a single report identified by its ID and returns the
// updated row. Only provided fields are changed and updated_at is set
// automatically. When updates.IfStatus is set, the update only applies while
// the report holds that status; otherwise nil is returned and nothing changes.
func (p *PgSQL) UpdateReport(ctx context.Context,
	id domain.ReportID,
	updates storage.ReportUpdates) (*domain.Report, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Facts != nil {
		b, err := json.Marshal(updates.Facts)
		if err != nil {
			return nil, fmt.Errorf("could not marshal facts: %w", err)
		}

		rec["facts"] = b
	}
	if updates.Wizard != nil {
		rec["wizard_phase"] = string(updates.Wizard.Phase)
		rec["wizard_step"] = updates.Wizard.Step
		rec["wizard_data"] = []byte(updates.Wizard.Data)
		rec["wizard_saved_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.ReceiptID != nil {
		// a receipt is permanent once set; never overwrite an existing one
		rec["receipt_id"] = goqu.L("COALESCE(receipt_id, ?)", *updates.ReceiptID)
	}
	if updates.FiledAt != nil {
		rec["filed_at"] = *updates.FiledAt
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.IfStatus != "" {
		w = append(w, goqu.I("status").Eq(string(updates.IfStatus)))
	}

	var row PgReport
	found, err := p.Builder.Update(reportsTable).
		Set(rec).Where(w...).
		Returning(&PgReport{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update report in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SaveWizardState overwrites the persisted wizard position and data in one
// UPDATE, so an autosave payload is applied whole or not at all.
func (p *PgSQL) SaveWizardState(ctx context.Context, id domain.ReportID, state domain.WizardState) error {
	_, err := p.Builder.Update(reportsTable).
		Set(goqu.Record{
			"wizard_phase":    string(state.Phase),
			"wizard_step":     state.Step,
			"wizard_data":     []byte(state.Data),
			"wizard_saved_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save wizard state in pg: %w", err)
	}

	return nil
}

// Reports returns a page of reports created before the optional cursor,
// filtered by optional status and limited by limit. Results are ordered by
// created_at DESC, id DESC. Returns a next cursor for pagination.
func (p *PgSQL) Reports(ctx context.Context,
	status domain.ReportStatus,
	cursor time.Time,
	limit uint) (storage.ReportPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(reportsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgReport
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ReportPage{}, fmt.Errorf("could not fetch reports from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgReportsToDomain(rows)
	if err != nil {
		return storage.ReportPage{}, err
	}

	return storage.ReportPage{
		Reports:    domainRows,
		NextCursor: nextCursor,
	}, nil
}

// StoreDetermination supersedes any live determination for the report and
// inserts the given result as the new live one. The old rows stay behind with
// superseded_at set, which is the audit trail.
func (p *PgSQL) StoreDetermination(ctx context.Context,
	reportID domain.ReportID,
	result domain.DeterminationResult) error {
	if err := p.SupersedeDeterminations(ctx, reportID); err != nil {
		return err
	}

	var row PgDetermination
	if err := row.FromDomain(reportID, result); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(determinationsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store determination into pg: %w", err)
	}

	return nil
}

// LatestDetermination returns the live determination for the report, or nil.
func (p *PgSQL) LatestDetermination(ctx context.Context, reportID domain.ReportID) (*domain.DeterminationResult, error) { //nolint: lll
	var row PgDetermination
	found, err := p.Builder.From(determinationsTable).
		Where(
			goqu.I("report_id").Eq(uuid.UUID(reportID)),
			goqu.I("superseded_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch determination by report id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// HasDeterminations reports whether any determination row, live or
// superseded, exists for the report.
func (p *PgSQL) HasDeterminations(ctx context.Context, reportID domain.ReportID) (bool, error) {
	var count int64
	found, err := p.Builder.From(determinationsTable).
		Select(goqu.COUNT("*")).
		Where(goqu.I("report_id").Eq(uuid.UUID(reportID))).
		Executor().ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("could not count determinations: %w", err)
	}

	return found && count > 0, nil
}

// SupersedeDeterminations marks every live determination for the report as
// superseded without replacing it.
func (p *PgSQL) SupersedeDeterminations(ctx context.Context, reportID domain.ReportID) error {
	_, err := p.Builder.Update(determinationsTable).
		Set(goqu.Record{
			"superseded_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("report_id").Eq(uuid.UUID(reportID)),
		goqu.I("superseded_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not supersede determinations in pg: %w", err)
	}

	return nil
}
