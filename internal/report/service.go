package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rrer/internal/certificate"
	"rrer/internal/determine"
	"rrer/internal/metrics"
	"rrer/internal/notify"
	"rrer/internal/party"
	"rrer/internal/wizard"
	"rrer/pkg/domain"
	"rrer/pkg/filingchannel"
	"rrer/pkg/serrors"
	"rrer/pkg/storage"
)

// service is the concrete implementation of the Service interface. It
// coordinates the pure engines with persistence, the filing channel and the
// job queue.
type service struct {
	// storage is the persistence layer used for reports, parties, links,
	// filings and job enqueueing.
	storage storage.Storage
	// channel submits assembled payloads to the government filing channel.
	channel filingchannel.Client
	// issuer mints and verifies party collection link tokens.
	issuer *party.Issuer
	// autosaver debounces wizard field edits into storage writes.
	autosaver *wizard.Autosaver
	// metrics records workflow counters; nil records nothing.
	metrics *metrics.Metrics
	// notifier publishes workflow events; nil publishes nothing.
	notifier *notify.Publisher
}

// New creates a new Service instance backed by the provided storage, filing
// channel client and link issuer.
func New(st storage.Storage,
	channel filingchannel.Client,
	issuer *party.Issuer,
	autosaver *wizard.Autosaver,
	m *metrics.Metrics,
	notifier *notify.Publisher) Service {
	return &service{
		storage:   st,
		channel:   channel,
		issuer:    issuer,
		autosaver: autosaver,
		metrics:   m,
		notifier:  notifier,
	}
}

// Create opens a new draft report for a closing file, positioned at the first
// questionnaire step.
func (s service) Create(ctx context.Context, fileNumber string) (*domain.Report, error) {
	if strings.TrimSpace(fileNumber) == "" {
		return nil, serrors.Validation(serrors.FieldError{
			Field: "fileNumber", Rule: "required", Message: "file number is required",
		})
	}

	ws, err := wizard.First().Serialize()
	if err != nil {
		return nil, fmt.Errorf("could not serialize wizard state: %w", err)
	}

	stored, err := s.storage.StoreReport(ctx, domain.Report{
		FileNumber: fileNumber,
		Status:     domain.ReportStatusDraft,
		Wizard:     ws,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store report: %w", err)
	}

	return stored, nil
}

// Get assembles the aggregate view: the report, its live determination, its
// parties with collection status, its filing row and the recomputed wizard
// progress.
func (s service) Get(ctx context.Context, id domain.ReportID) (*View, error) {
	rep, err := s.storage.ReportByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if rep == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	det, err := s.storage.LatestDetermination(ctx, rep.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get determination: %w", err)
	}

	parties, err := s.storage.PartiesByReport(ctx, rep.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get parties: %w", err)
	}

	fil, err := s.storage.FilingByReport(ctx, rep.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get filing: %w", err)
	}

	st, err := wizard.Hydrate(rep.Wizard)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate wizard state: %w", err)
	}
	completed, applicable := wizard.Progress(st, rep.Facts, det)

	rep.Determination = det

	return &View{
		Report:             *rep,
		Determination:      det,
		Parties:            parties,
		Collection:         party.Status(rep.Facts, parties),
		Filing:             fil,
		ProgressCompleted:  completed,
		ProgressApplicable: applicable,
	}, nil
}

// List returns a page of reports filtered by status. It supports cursor-based
// pagination using an RFC3339 timestamp string and returns the next cursor
// when more results are available.
func (s service) List(ctx context.Context,
	status domain.ReportStatus,
	cursor string,
	limit uint) ([]domain.Report, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.Reports(ctx, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get reports: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Reports, next, nil
}

// Cancel abandons the report. Legal from any non-terminal status; a terminal
// report is refused rather than silently re-cancelled.
func (s service) Cancel(ctx context.Context, id domain.ReportID) error {
	var from domain.ReportStatus
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rep, err := tx.ReportByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if err := CheckTransition(rep.Status, domain.ReportStatusCancelled); err != nil {
			return err
		}

		updated, err := tx.UpdateReport(ctx, rep.ID, storage.ReportUpdates{
			Status:   domain.ReportStatusCancelled,
			IfStatus: rep.Status,
		})
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "report changed concurrently")
		}
		from = rep.Status

		return nil
	}); err != nil {
		return fmt.Errorf("could not cancel report: %w", err)
	}

	s.metrics.IncrementTransition(from, domain.ReportStatusCancelled)

	return nil
}

// UpdateFacts replaces the transaction facts wholesale. When the edit touches
// an answered questionnaire step, every later answer is cleared, the live
// determination is superseded and the report regresses to draft at the
// changed step. Edits that touch no step-owned answer (price, closing date)
// just persist.
func (s service) UpdateFacts(ctx context.Context,
	id domain.ReportID,
	facts domain.TransactionFacts) (*domain.Report, error) {
	var (
		updated *domain.Report
		from    domain.ReportStatus
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rep, err := tx.ReportByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status.Terminal() {
			return serrors.With(serrors.ErrInvalidTransition,
				"report is %s; facts can no longer change", rep.Status)
		}

		changed, invalidates := determine.FirstChanged(rep.Facts, facts)
		if !invalidates {
			updated, err = tx.UpdateReport(ctx, rep.ID, storage.ReportUpdates{Facts: &facts})
			if err != nil {
				return fmt.Errorf("could not update report: %w", err)
			}

			return nil
		}

		cleared := determine.ClearAfter(changed, facts)
		if err := tx.SupersedeDeterminations(ctx, rep.ID); err != nil {
			return fmt.Errorf("could not supersede determinations: %w", err)
		}

		st, err := wizard.Hydrate(rep.Wizard)
		if err != nil {
			return fmt.Errorf("could not hydrate wizard state: %w", err)
		}
		st.Phase = domain.WizardPhaseDetermination
		st.Step = string(changed)
		ws, err := st.Serialize()
		if err != nil {
			return fmt.Errorf("could not serialize wizard state: %w", err)
		}

		upd := storage.ReportUpdates{Facts: &cleared, Wizard: &ws}
		if rep.Status != domain.ReportStatusDraft {
			if err := CheckTransition(rep.Status, domain.ReportStatusDraft); err != nil {
				return err
			}
			upd.Status = domain.ReportStatusDraft
			upd.IfStatus = rep.Status
			from = rep.Status
		}

		updated, err = tx.UpdateReport(ctx, rep.ID, upd)
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "report changed concurrently")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update facts: %w", err)
	}

	if from != "" {
		s.metrics.IncrementTransition(from, domain.ReportStatusDraft)
	}

	return updated, nil
}

// SetWizardField records one form field value and schedules a debounced
// autosave. It never blocks on I/O and never validates; validation runs when
// the step tries to move forward.
func (s service) SetWizardField(ctx context.Context, id domain.ReportID, step, field, value string) error {
	rep, err := s.storage.ReportByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get report: %w", err)
	}
	if rep == nil {
		return serrors.With(serrors.ErrNotFound, "report not found")
	}
	if rep.Status.Terminal() {
		return serrors.With(serrors.ErrInvalidTransition,
			"report is %s; the wizard is closed", rep.Status)
	}

	st, err := wizard.Hydrate(rep.Wizard)
	if err != nil {
		return fmt.Errorf("could not hydrate wizard state: %w", err)
	}
	st.Set(step, field, value)
	ws, err := st.Serialize()
	if err != nil {
		return fmt.Errorf("could not serialize wizard state: %w", err)
	}

	s.autosaver.Touch(rep.ID, ws)

	return nil
}

// Advance moves the wizard one step forward. When the questionnaire
// materializes a result it is persisted and the lifecycle moves to
// determination-complete or exempt; leaving the result screen of a reportable
// report enters collection and spawns the missing party slots.
func (s service) Advance(ctx context.Context, id domain.ReportID) (*View, error) {
	var (
		matResult *domain.DeterminationResult
		from, to  domain.ReportStatus
		reportID  domain.ReportID
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rep, err := tx.ReportByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status == domain.ReportStatusCancelled {
			return serrors.With(serrors.ErrInvalidTransition, "report is cancelled")
		}
		reportID = rep.ID

		det, err := tx.LatestDetermination(ctx, rep.ID)
		if err != nil {
			return fmt.Errorf("could not get determination: %w", err)
		}
		st, err := wizard.Hydrate(rep.Wizard)
		if err != nil {
			return fmt.Errorf("could not hydrate wizard state: %w", err)
		}

		next, err := wizard.GoToNext(st, rep.Facts, det)
		if err != nil {
			return err
		}

		var upd storage.ReportUpdates
		switch {
		case next.Result != nil:
			result := *next.Result
			if result.Method == domain.MethodQuestionnaire {
				rerun, err := tx.HasDeterminations(ctx, rep.ID)
				if err != nil {
					return fmt.Errorf("could not check prior determinations: %w", err)
				}
				if rerun {
					result.Method = domain.MethodResumed
				}
			}
			if err := tx.StoreDetermination(ctx, rep.ID, result); err != nil {
				return fmt.Errorf("could not store determination: %w", err)
			}

			target := domain.ReportStatusDeterminationComplete
			if result.Exempt() {
				target = domain.ReportStatusExempt
			}
			if err := CheckTransition(rep.Status, target); err != nil {
				return err
			}
			upd.Status = target
			upd.IfStatus = rep.Status
			from, to = rep.Status, target
			matResult = &result

		case st.Phase == domain.WizardPhaseDetermination &&
			next.State.Phase == domain.WizardPhaseCollection:
			// leaving the result screen of a reportable report starts collection
			if err := CheckTransition(rep.Status, domain.ReportStatusCollecting); err != nil {
				return err
			}
			upd.Status = domain.ReportStatusCollecting
			upd.IfStatus = rep.Status
			from, to = rep.Status, domain.ReportStatusCollecting

			existing, err := tx.PartiesByReport(ctx, rep.ID)
			if err != nil {
				return fmt.Errorf("could not get parties: %w", err)
			}
			if missing := missingParties(rep.ID, rep.Facts, existing); len(missing) > 0 {
				if _, err := tx.StoreParties(ctx, missing...); err != nil {
					return fmt.Errorf("could not store parties: %w", err)
				}
			}
		}

		ws, err := next.State.Serialize()
		if err != nil {
			return fmt.Errorf("could not serialize wizard state: %w", err)
		}
		upd.Wizard = &ws

		updated, err := tx.UpdateReport(ctx, rep.ID, upd)
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "report changed concurrently")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not advance wizard: %w", err)
	}

	if to != "" {
		s.metrics.IncrementTransition(from, to)
	}
	if matResult != nil {
		s.metrics.IncrementDetermination(*matResult)
		s.notifier.Publish(ctx, notify.Event{
			Kind:     notify.EventDeterminationCompleted,
			ReportID: reportID,
			Detail:   fmt.Sprintf("verdict %s via %s", matResult.Verdict, matResult.Method),
		})
	}

	return s.Get(ctx, id)
}

// Retreat moves the wizard one step back and persists the new position.
// Backward movement never revalidates and never touches the lifecycle.
func (s service) Retreat(ctx context.Context, id domain.ReportID) (*domain.WizardState, error) {
	rep, err := s.storage.ReportByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if rep == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}
	if rep.Status == domain.ReportStatusCancelled {
		return nil, serrors.With(serrors.ErrInvalidTransition, "report is cancelled")
	}

	det, err := s.storage.LatestDetermination(ctx, rep.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get determination: %w", err)
	}
	st, err := wizard.Hydrate(rep.Wizard)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate wizard state: %w", err)
	}

	prev, err := wizard.GoToPrevious(st, rep.Facts, det)
	if err != nil {
		return nil, err
	}
	ws, err := prev.Serialize()
	if err != nil {
		return nil, fmt.Errorf("could not serialize wizard state: %w", err)
	}

	updated, err := s.storage.UpdateReport(ctx, rep.ID, storage.ReportUpdates{Wizard: &ws})
	if err != nil {
		return nil, fmt.Errorf("could not update report: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "report changed concurrently")
	}

	return &updated.Wizard, nil
}

// Certificate renders the exemption certificate of an exempt report.
func (s service) Certificate(ctx context.Context, id domain.ReportID) (string, error) {
	rep, err := s.storage.ReportByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("could not get report: %w", err)
	}
	if rep == nil {
		return "", serrors.With(serrors.ErrNotFound, "report not found")
	}
	if rep.Status != domain.ReportStatusExempt {
		return "", serrors.With(serrors.ErrInvalidTransition,
			"no certificate: report is %s, not %s", rep.Status, domain.ReportStatusExempt)
	}

	det, err := s.storage.LatestDetermination(ctx, rep.ID)
	if err != nil {
		return "", fmt.Errorf("could not get determination: %w", err)
	}
	if det == nil {
		return "", fmt.Errorf("exempt report %s has no live determination", reportIDString(rep.ID))
	}

	return certificate.Render(*rep, *det)
}

// missingParties spawns only the slots not already present on the report, so
// re-entering the collection phase after a fact edit never duplicates the
// parties that survived it.
func missingParties(reportID domain.ReportID,
	facts domain.TransactionFacts,
	existing []domain.Party) []domain.Party {
	have := map[domain.PartyRole]int{}
	for _, p := range existing {
		if p.Status != domain.PartyStatusCancelled {
			have[p.Role]++
		}
	}

	var spawned []domain.Party
	for _, req := range party.RequiredParties(facts) {
		for i := have[req.Role]; i < req.Min; i++ {
			spawned = append(spawned, domain.Party{
				ReportID: reportID,
				Role:     req.Role,
				Status:   domain.PartyStatusPending,
			})
		}
	}

	return spawned
}
