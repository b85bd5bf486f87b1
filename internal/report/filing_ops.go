package report

import (
	"context"
	"fmt"
	"time"

	"rrer/internal/filing"
	"rrer/internal/notify"
	"rrer/pkg/domain"
	"rrer/pkg/logger"
	"rrer/pkg/serrors"
	"rrer/pkg/storage"

	"go.uber.org/zap"
)

// RequestFiling queues the report's first filing submission and enqueues the
// background job in the same transaction. A report with an existing
// submission must go through retry instead.
func (s service) RequestFiling(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error) {
	var stored *domain.FilingSubmission
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rep, err := tx.ReportByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status != domain.ReportStatusReadyToFile {
			return serrors.With(serrors.ErrInvalidTransition,
				"report is %s; filing requires %s", rep.Status, domain.ReportStatusReadyToFile)
		}

		existing, err := tx.FilingByReport(ctx, rep.ID)
		if err != nil {
			return fmt.Errorf("could not get filing: %w", err)
		}
		if filing.Live(existing) {
			return serrors.With(serrors.ErrConflict, "a filing attempt is already in flight")
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict,
				"a submission already exists in %s; use retry", existing.Status)
		}

		stored, err = tx.StoreFiling(ctx, filing.Begin(rep.ID))
		if err != nil {
			return fmt.Errorf("could not store filing: %w", err)
		}

		if _, err := tx.AddJob(ctx, FilingJobArgs{ReportID: rep.ID}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not request filing: %w", err)
	}

	return stored, nil
}

// RetryFiling re-queues a rejected submission.
func (s service) RetryFiling(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error) {
	return s.requeueFiling(ctx, id, filing.Retry)
}

// ConfirmReviewAndRetry is the operator-confirmed retry out of needs-review.
func (s service) ConfirmReviewAndRetry(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error) {
	return s.requeueFiling(ctx, id, filing.ConfirmReviewAndRetry)
}

// requeueFiling applies the given protocol step to the report's submission
// and enqueues a new job, all in one transaction. The replace is guarded on
// the status the step was computed from, so a concurrent command loses
// cleanly instead of double-queueing.
func (s service) requeueFiling(ctx context.Context,
	id domain.ReportID,
	step func(domain.FilingSubmission) (domain.FilingSubmission, error)) (*domain.FilingSubmission, error) {
	var replaced *domain.FilingSubmission
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rep, err := tx.ReportByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status != domain.ReportStatusReadyToFile {
			return serrors.With(serrors.ErrInvalidTransition,
				"report is %s; filing requires %s", rep.Status, domain.ReportStatusReadyToFile)
		}

		existing, err := tx.FilingByReport(ctx, rep.ID)
		if err != nil {
			return fmt.Errorf("could not get filing: %w", err)
		}
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "no filing submission to retry")
		}

		requeued, err := step(*existing)
		if err != nil {
			return err
		}

		replaced, err = tx.ReplaceFiling(ctx, requeued, existing.Status)
		if err != nil {
			return fmt.Errorf("could not replace filing: %w", err)
		}
		if replaced == nil {
			return serrors.With(serrors.ErrConflict, "submission changed concurrently")
		}

		if _, err := tx.AddJob(ctx, FilingJobArgs{ReportID: rep.ID}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not retry filing: %w", err)
	}

	return replaced, nil
}

// ProcessFiling performs one queued submission against the filing channel.
// It is the worker entry point and deliberately returns nil on everything the
// protocol already accounts for (missing rows, lost races, channel faults):
// the queue must never auto-retry what the review workflow owns.
func (s service) ProcessFiling(ctx context.Context, id domain.ReportID) error {
	rep, err := s.storage.ReportByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get report: %w", err)
	}
	if rep == nil {
		logger.Warn(ctx, "filing job for missing report",
			zap.String("reportID", reportIDString(id)))

		return nil
	}

	sub, err := s.storage.FilingByReport(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get filing: %w", err)
	}
	if sub == nil || sub.Status != domain.FilingStatusQueued {
		// nothing queued: the submission was already taken or settled
		return nil
	}

	if rep.Status == domain.ReportStatusCancelled {
		logger.Info(ctx, "skipping filing for cancelled report",
			zap.String("reportID", reportIDString(id)))

		return nil
	}

	parties, err := s.storage.PartiesByReport(ctx, rep.ID)
	if err != nil {
		return fmt.Errorf("could not get parties: %w", err)
	}

	now := time.Now().UTC()
	handed, err := filing.Submit(*sub, now)
	if err != nil {
		return nil
	}
	inFlight, err := s.storage.ReplaceFiling(ctx, handed, domain.FilingStatusQueued)
	if err != nil {
		return fmt.Errorf("could not mark submission in flight: %w", err)
	}
	if inFlight == nil {
		// another worker won the queued slot
		return nil
	}

	start := time.Now()
	outcome, err := s.channel.Submit(ctx, buildPayload(*rep, parties))
	s.metrics.ObserveSubmitLatency(time.Since(start))
	if err != nil {
		// no outcome was obtained: undecided, park for an operator
		logger.Warn(ctx, "filing channel gave no outcome",
			zap.String("reportID", reportIDString(id)), zap.Error(err))

		return s.parkForReview(ctx, *inFlight, err.Error())
	}

	switch outcome.Status {
	case domain.FilingStatusAccepted:
		return s.settleAccepted(ctx, *rep, *inFlight, outcome.ReceiptID)
	case domain.FilingStatusRejected:
		return s.settleRejected(ctx, *inFlight, outcome.Code, outcome.Message)
	default:
		return s.parkForReview(ctx, *inFlight, outcome.Message)
	}
}

// settleAccepted records acceptance on the filing row and moves the report to
// filed. A report cancelled while the submission was in flight keeps the
// receipt on the filing row but is never resurrected.
func (s service) settleAccepted(ctx context.Context,
	rep domain.Report,
	sub domain.FilingSubmission,
	receiptID string) error {
	now := time.Now().UTC()
	accepted, err := filing.Accept(sub, receiptID, now)
	if err != nil {
		// an acceptance without a usable receipt is undecided
		return s.parkForReview(ctx, sub, err.Error())
	}

	var filed bool
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		replaced, err := tx.ReplaceFiling(ctx, accepted, domain.FilingStatusSubmitted)
		if err != nil {
			return fmt.Errorf("could not replace filing: %w", err)
		}
		if replaced == nil {
			// duplicate outcome signal, the row already settled
			return nil
		}

		receipt := accepted.ReceiptID
		updated, err := tx.UpdateReport(ctx, rep.ID, storage.ReportUpdates{
			Status:    domain.ReportStatusFiled,
			IfStatus:  domain.ReportStatusReadyToFile,
			ReceiptID: &receipt,
			FiledAt:   &now,
		})
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		filed = updated != nil

		return nil
	}); err != nil {
		return fmt.Errorf("could not settle acceptance: %w", err)
	}

	s.metrics.IncrementFilingOutcome(domain.FilingStatusAccepted, "")
	if filed {
		s.metrics.IncrementTransition(domain.ReportStatusReadyToFile, domain.ReportStatusFiled)
	}
	s.notifier.Publish(ctx, notify.Event{
		Kind:     notify.EventFilingOutcome,
		ReportID: rep.ID,
		Detail:   fmt.Sprintf("accepted with receipt %s", accepted.ReceiptID),
	})

	return nil
}

// settleRejected records the channel's refusal verbatim; the report stays
// ready to file so staff can correct and retry.
func (s service) settleRejected(ctx context.Context,
	sub domain.FilingSubmission,
	code domain.RejectionCode,
	message string) error {
	rejected, err := filing.Reject(sub, code, message, time.Now().UTC())
	if err != nil {
		return nil
	}

	replaced, err := s.storage.ReplaceFiling(ctx, rejected, domain.FilingStatusSubmitted)
	if err != nil {
		return fmt.Errorf("could not replace filing: %w", err)
	}
	if replaced == nil {
		return nil
	}

	s.metrics.IncrementFilingOutcome(domain.FilingStatusRejected, code)
	s.notifier.Publish(ctx, notify.Event{
		Kind:     notify.EventFilingOutcome,
		ReportID: sub.ReportID,
		Detail:   fmt.Sprintf("rejected: %s %s", code, message),
	})

	return nil
}

// parkForReview moves an in-flight submission to needs-review with the given
// detail. Used for the channel's explicit review outcome and for every
// undecided failure.
func (s service) parkForReview(ctx context.Context,
	sub domain.FilingSubmission,
	detail string) error {
	parked, err := filing.RequireReview(sub, detail, time.Now().UTC())
	if err != nil {
		return nil
	}

	replaced, err := s.storage.ReplaceFiling(ctx, parked, domain.FilingStatusSubmitted)
	if err != nil {
		return fmt.Errorf("could not replace filing: %w", err)
	}
	if replaced == nil {
		return nil
	}

	s.metrics.IncrementFilingOutcome(domain.FilingStatusNeedsReview, "")
	s.notifier.Publish(ctx, notify.Event{
		Kind:     notify.EventFilingOutcome,
		ReportID: sub.ReportID,
		Detail:   fmt.Sprintf("needs review: %s", detail),
	})

	return nil
}

// buildPayload assembles the filing document fresh from the current report
// and its collected parties, so a retry always carries current data.
func buildPayload(rep domain.Report, parties []domain.Party) domain.FilingPayload {
	payload := domain.FilingPayload{
		ReportID:           rep.ID,
		FileNumber:         rep.FileNumber,
		PropertyType:       rep.Facts.PropertyType,
		FinancingType:      rep.Facts.FinancingType,
		PurchasePriceCents: rep.Facts.PurchasePriceCents,
		ClosingDate:        rep.Facts.ClosingDate,
	}

	for _, p := range parties {
		if !p.Status.Collected() {
			continue
		}
		payload.Parties = append(payload.Parties, domain.FilingParty{
			Role:      p.Role,
			LegalName: p.Data.LegalName,
			Address:   p.Data.Address,
			SSNLast4:  p.Data.SSNLast4,
			EIN:       p.Data.EIN,
		})
	}

	return payload
}
