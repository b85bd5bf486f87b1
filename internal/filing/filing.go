// Package filing models the submission protocol against the government filing
// channel as a pure state machine over domain.FilingSubmission. Callers apply
// a transition and persist the returned value; nothing here does I/O.
package filing

import (
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

// Begin creates the first submission for a report: queued, first attempt.
// The caller enforces that the report is ready to file and that no live
// submission already exists.
func Begin(reportID domain.ReportID) domain.FilingSubmission {
	return domain.FilingSubmission{
		ReportID: reportID,
		Status:   domain.FilingStatusQueued,
		Attempts: 1,
	}
}

// Live reports whether the submission occupies the single in-flight slot for
// its report. A new filing attempt may not be issued while one is live.
func Live(sub *domain.FilingSubmission) bool {
	if sub == nil {
		return false
	}

	return sub.Status == domain.FilingStatusQueued || sub.Status == domain.FilingStatusSubmitted
}

// Submit marks the hand-off to the filing channel. Legal only from queued.
func Submit(sub domain.FilingSubmission, now time.Time) (domain.FilingSubmission, error) {
	if sub.Status != domain.FilingStatusQueued {
		return sub, refuse(sub.Status, domain.FilingStatusSubmitted)
	}

	sub.Status = domain.FilingStatusSubmitted
	sub.SubmittedAt = now

	return sub, nil
}

// Accept records the channel's acceptance and the receipt it issued. Legal
// from submitted. A duplicate accept signal on an already-accepted submission
// is a no-op: the original receipt is never overwritten.
func Accept(sub domain.FilingSubmission, receiptID string, now time.Time) (domain.FilingSubmission, error) {
	if sub.Status == domain.FilingStatusAccepted {
		return sub, nil
	}
	if sub.Status != domain.FilingStatusSubmitted {
		return sub, refuse(sub.Status, domain.FilingStatusAccepted)
	}
	if receiptID == "" {
		return sub, serrors.With(serrors.ErrBadRequest, "accepted outcome carried no receipt id")
	}

	sub.Status = domain.FilingStatusAccepted
	sub.ReceiptID = receiptID
	sub.RejectionCode = ""
	sub.RejectionMessage = ""
	sub.ResolvedAt = now

	return sub, nil
}

// Reject records a refusal with its taxonomy code and verbatim message.
// Legal from submitted.
func Reject(sub domain.FilingSubmission, code domain.RejectionCode, message string, now time.Time) (domain.FilingSubmission, error) {
	if sub.Status != domain.FilingStatusSubmitted {
		return sub, refuse(sub.Status, domain.FilingStatusRejected)
	}

	sub.Status = domain.FilingStatusRejected
	sub.RejectionCode = code
	sub.RejectionMessage = message
	sub.ResolvedAt = now

	return sub, nil
}

// RequireReview parks the submission for an operator. Used both for the
// channel's explicit needs-review outcome and for undefined outcomes
// (timeouts, malformed responses), which must never pass as accepted or
// rejected. Review states carry no rejection code; detail goes to LastError.
func RequireReview(sub domain.FilingSubmission, detail string, now time.Time) (domain.FilingSubmission, error) {
	if sub.Status != domain.FilingStatusSubmitted {
		return sub, refuse(sub.Status, domain.FilingStatusNeedsReview)
	}

	sub.Status = domain.FilingStatusNeedsReview
	sub.RejectionCode = ""
	sub.RejectionMessage = ""
	sub.LastError = detail
	sub.ResolvedAt = now

	return sub, nil
}

// Retry re-queues a rejected submission and counts the new attempt. Rejected
// is the only state plain retry accepts: an accepted filing is final, a live
// one is already in flight, and a review state demands the operator
// confirmation command instead.
func Retry(sub domain.FilingSubmission) (domain.FilingSubmission, error) {
	if sub.Status == domain.FilingStatusNeedsReview {
		return sub, serrors.With(serrors.ErrInvalidTransition,
			"submission needs review; retry requires operator confirmation")
	}
	if sub.Status != domain.FilingStatusRejected {
		return sub, refuse(sub.Status, domain.FilingStatusQueued)
	}

	return requeue(sub), nil
}

// ConfirmReviewAndRetry is the operator-confirmed retry out of needs-review.
func ConfirmReviewAndRetry(sub domain.FilingSubmission) (domain.FilingSubmission, error) {
	if sub.Status != domain.FilingStatusNeedsReview {
		return sub, refuse(sub.Status, domain.FilingStatusQueued)
	}

	return requeue(sub), nil
}

func requeue(sub domain.FilingSubmission) domain.FilingSubmission {
	sub.Status = domain.FilingStatusQueued
	sub.Attempts++
	sub.RejectionCode = ""
	sub.RejectionMessage = ""
	sub.LastError = ""
	sub.ResolvedAt = time.Time{}

	return sub
}

func refuse(from, to domain.FilingStatus) error {
	return serrors.InvalidTransition(string(from), string(to))
}
