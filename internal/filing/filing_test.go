package filing_test

import (
	"errors"
	"testing"
	"time"

	"rrer/internal/filing"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"

	"github.com/google/uuid"
)

var now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func queued() domain.FilingSubmission {
	return filing.Begin(domain.ReportID(uuid.New()))
}

func submitted(t *testing.T) domain.FilingSubmission {
	t.Helper()
	sub, err := filing.Submit(queued(), now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	return sub
}

func TestBegin(t *testing.T) {
	sub := queued()
	if sub.Status != domain.FilingStatusQueued {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusQueued)
	}
	if sub.Attempts != 1 {
		t.Errorf("attempts: got %d, want 1", sub.Attempts)
	}
}

func TestLive(t *testing.T) {
	if filing.Live(nil) {
		t.Error("no submission is never live")
	}

	sub := queued()
	if !filing.Live(&sub) {
		t.Error("queued submission must be live")
	}

	sub = submitted(t)
	if !filing.Live(&sub) {
		t.Error("submitted submission must be live")
	}

	accepted, err := filing.Accept(sub, "BSA-123", now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if filing.Live(&accepted) {
		t.Error("accepted submission must not be live")
	}
}

func TestSubmitOnlyFromQueued(t *testing.T) {
	sub := submitted(t)
	if sub.Status != domain.FilingStatusSubmitted {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusSubmitted)
	}
	if !sub.SubmittedAt.Equal(now) {
		t.Errorf("submittedAt: got %v, want %v", sub.SubmittedAt, now)
	}

	if _, err := filing.Submit(sub, now); !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Errorf("double submit: expected invalid-transition error, got %v", err)
	}
}

func TestAccept(t *testing.T) {
	sub, err := filing.Accept(submitted(t), "BSA-20260314-01", now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if sub.Status != domain.FilingStatusAccepted {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusAccepted)
	}
	if sub.ReceiptID != "BSA-20260314-01" {
		t.Errorf("receipt: got %q, want BSA-20260314-01", sub.ReceiptID)
	}
	if !sub.Status.Terminal() {
		t.Error("accepted must be terminal")
	}
}

func TestAcceptDuplicateKeepsReceipt(t *testing.T) {
	sub, err := filing.Accept(submitted(t), "BSA-original", now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	again, err := filing.Accept(sub, "BSA-duplicate", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("duplicate accept must be a no-op, got %v", err)
	}
	if again.ReceiptID != "BSA-original" {
		t.Errorf("receipt overwritten: got %q, want BSA-original", again.ReceiptID)
	}
}

func TestAcceptWithoutReceiptRefused(t *testing.T) {
	if _, err := filing.Accept(submitted(t), "", now); !errors.Is(err, serrors.ErrBadRequest) {
		t.Errorf("expected bad-request error, got %v", err)
	}
}

func TestAcceptFromQueuedRefused(t *testing.T) {
	if _, err := filing.Accept(queued(), "BSA-1", now); !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Errorf("expected invalid-transition error, got %v", err)
	}
}

func TestReject(t *testing.T) {
	sub, err := filing.Reject(submitted(t), domain.RejectionMissingField, "transferee address missing", now)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if sub.Status != domain.FilingStatusRejected {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusRejected)
	}
	if sub.RejectionCode != domain.RejectionMissingField {
		t.Errorf("code: got %s, want %s", sub.RejectionCode, domain.RejectionMissingField)
	}
	if sub.RejectionMessage != "transferee address missing" {
		t.Errorf("message not carried verbatim: %q", sub.RejectionMessage)
	}
}

func TestRequireReviewCarriesNoCode(t *testing.T) {
	sub, err := filing.RequireReview(submitted(t), "channel timeout after 3 transport attempts", now)
	if err != nil {
		t.Fatalf("require review: %v", err)
	}
	if sub.Status != domain.FilingStatusNeedsReview {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusNeedsReview)
	}
	if sub.RejectionCode != "" {
		t.Errorf("review states carry no code, got %s", sub.RejectionCode)
	}
	if sub.LastError == "" {
		t.Error("review detail must be recorded")
	}
}

func TestRetryFromRejected(t *testing.T) {
	rejected, err := filing.Reject(submitted(t), domain.RejectionBadFormat, "EIN malformed", now)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	sub, err := filing.Retry(rejected)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if sub.Status != domain.FilingStatusQueued {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusQueued)
	}
	if sub.Attempts != rejected.Attempts+1 {
		t.Errorf("attempts: got %d, want %d", sub.Attempts, rejected.Attempts+1)
	}
	if sub.RejectionCode != "" || sub.RejectionMessage != "" {
		t.Error("requeue must clear the previous rejection")
	}
}

func TestRetryFromAcceptedRefused(t *testing.T) {
	accepted, err := filing.Accept(submitted(t), "BSA-1", now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := filing.Retry(accepted); !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Errorf("expected invalid-transition error, got %v", err)
	}
}

func TestRetryFromNeedsReviewDemandsConfirmation(t *testing.T) {
	review, err := filing.RequireReview(submitted(t), "ambiguous outcome", now)
	if err != nil {
		t.Fatalf("require review: %v", err)
	}

	if _, err := filing.Retry(review); !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Fatalf("plain retry from needs-review must be refused, got %v", err)
	}

	sub, err := filing.ConfirmReviewAndRetry(review)
	if err != nil {
		t.Fatalf("confirmed retry: %v", err)
	}
	if sub.Status != domain.FilingStatusQueued {
		t.Fatalf("status: got %s, want %s", sub.Status, domain.FilingStatusQueued)
	}
	if sub.Attempts != review.Attempts+1 {
		t.Errorf("attempts: got %d, want %d", sub.Attempts, review.Attempts+1)
	}
}

func TestConfirmReviewOnlyFromNeedsReview(t *testing.T) {
	rejected, err := filing.Reject(submitted(t), domain.RejectionSystemError, "boom", now)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := filing.ConfirmReviewAndRetry(rejected); !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Errorf("expected invalid-transition error, got %v", err)
	}
}

func TestRetrySubmitCycleCountsAttempts(t *testing.T) {
	sub := queued()
	for i := 0; i < 3; i++ {
		var err error
		sub, err = filing.Submit(sub, now)
		if err != nil {
			t.Fatalf("cycle %d submit: %v", i, err)
		}
		sub, err = filing.Reject(sub, domain.RejectionSystemError, "transient", now)
		if err != nil {
			t.Fatalf("cycle %d reject: %v", i, err)
		}
		sub, err = filing.Retry(sub)
		if err != nil {
			t.Fatalf("cycle %d retry: %v", i, err)
		}
	}

	if sub.Attempts != 4 {
		t.Errorf("attempts after three retries: got %d, want 4", sub.Attempts)
	}
}
