package domain

import (
	"time"

	"github.com/google/uuid"
)

// FilingID uniquely identifies a filing submission.
// It wraps uuid.UUID to provide type safety at the domain layer.
type FilingID uuid.UUID

// FilingStatus represents the lifecycle state of a filing submission.
type FilingStatus string

const (
	// FilingStatusNotStarted is the implicit state before any submission
	// exists for a report; it is never persisted as a row.
	FilingStatusNotStarted FilingStatus = "NOT_STARTED"
	// FilingStatusQueued indicates the submission is waiting for a worker.
	FilingStatusQueued FilingStatus = "QUEUED"
	// FilingStatusSubmitted indicates the payload was handed to the filing
	// channel and an acknowledgement is pending.
	FilingStatusSubmitted FilingStatus = "SUBMITTED"
	// FilingStatusAccepted indicates the filing channel acknowledged the
	// submission and issued a receipt.
	FilingStatusAccepted FilingStatus = "ACCEPTED"
	// FilingStatusRejected indicates the filing channel refused the payload
	// for a correctable reason; see RejectionCode.
	FilingStatusRejected FilingStatus = "REJECTED"
	// FilingStatusNeedsReview indicates automatic retries are exhausted or a
	// channel fault occurred; an operator must confirm before retrying.
	FilingStatusNeedsReview FilingStatus = "NEEDS_REVIEW"
)

// Terminal reports whether the submission has reached a resting state that
// only manual action can leave.
func (s FilingStatus) Terminal() bool {
	return s == FilingStatusAccepted || s == FilingStatusNeedsReview
}

// RejectionCode classifies why the filing channel refused a submission.
type RejectionCode string

const (
	// RejectionMissingField means a required payload field was absent.
	RejectionMissingField RejectionCode = "MISSING_FIELD"
	// RejectionBadFormat means a field value violated its format rule.
	RejectionBadFormat RejectionCode = "BAD_FORMAT"
	// RejectionInvalidData means a field value failed semantic validation.
	RejectionInvalidData RejectionCode = "INVALID_DATA"
	// RejectionDuplicateReport means the channel already holds a filing for
	// this transaction.
	RejectionDuplicateReport RejectionCode = "DUPLICATE_REPORT"
	// RejectionSystemError means the channel faulted; the payload itself may
	// be fine.
	RejectionSystemError RejectionCode = "SYSTEM_ERROR"
)

// Retryable reports whether a rejection may be retried without editing the
// report. Duplicate reports and data errors need correction first.
func (c RejectionCode) Retryable() bool {
	return c == RejectionSystemError
}

// FilingSubmission records one attempt lineage to file a report with the
// government channel. A report has at most one live submission; retries
// increment Attempts on the same row rather than creating new rows.
type FilingSubmission struct {
	// ID is the unique identifier of the submission.
	ID FilingID `json:"id"`
	// ReportID is the report being filed.
	ReportID ReportID `json:"reportId"`

	// Status is the current lifecycle state of the submission.
	Status FilingStatus `json:"status"`
	// ReceiptID is the channel's acknowledgement identifier, set on acceptance.
	ReceiptID string `json:"receiptId,omitempty"`
	// RejectionCode classifies the most recent rejection, if any. Review
	// states carry no code.
	RejectionCode RejectionCode `json:"rejectionCode,omitempty"`
	// RejectionMessage is the channel's free-text rejection detail, surfaced
	// to operators verbatim.
	RejectionMessage string `json:"rejectionMessage,omitempty"`

	// Attempts is the number of times the system has tried to submit.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered
	// while submitting.
	LastError string `json:"-"`

	// SubmittedAt is the time of the most recent hand-off to the channel.
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
	// ResolvedAt is the time the submission reached acceptance or review.
	ResolvedAt time.Time `json:"resolvedAt,omitempty"`

	// CreatedAt is the time when the submission was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the submission was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// FilingParty is the slice of party data that goes into a filing payload.
type FilingParty struct {
	Role      PartyRole `json:"role"`
	LegalName string    `json:"legalName"`
	Address   string    `json:"address,omitempty"`
	SSNLast4  string    `json:"ssnLast4,omitempty"`
	EIN       string    `json:"ein,omitempty"`
}

// FilingPayload is the assembled document handed to the filing channel. It
// is built fresh from the report and its parties at submission time so that
// retries always carry current data.
type FilingPayload struct {
	ReportID           ReportID      `json:"reportId"`
	FileNumber         string        `json:"fileNumber"`
	PropertyType       PropertyType  `json:"propertyType"`
	FinancingType      FinancingType `json:"financingType"`
	PurchasePriceCents int64         `json:"purchasePriceCents"`
	ClosingDate        time.Time     `json:"closingDate"`
	Parties            []FilingParty `json:"parties"`
}
