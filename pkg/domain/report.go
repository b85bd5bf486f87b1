package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// ReportStatus represents the lifecycle state of a report.
type ReportStatus string

const (
	// ReportStatusDraft indicates the determination wizard has not finished.
	ReportStatusDraft ReportStatus = "DRAFT"
	// ReportStatusDeterminationComplete indicates a reportable verdict was
	// reached but party collection has not started.
	ReportStatusDeterminationComplete ReportStatus = "DETERMINATION_COMPLETE"
	// ReportStatusCollecting indicates party information is being gathered.
	ReportStatusCollecting ReportStatus = "COLLECTING"
	// ReportStatusReadyToFile indicates every required party is collected and
	// the report passed validation.
	ReportStatusReadyToFile ReportStatus = "READY_TO_FILE"
	// ReportStatusFiled indicates the filing channel accepted the report.
	ReportStatusFiled ReportStatus = "FILED"
	// ReportStatusExempt indicates the determination found the transaction
	// not reportable; a certificate is available instead of a filing.
	ReportStatusExempt ReportStatus = "EXEMPT"
	// ReportStatusCancelled indicates the report was abandoned.
	ReportStatusCancelled ReportStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are allowed from s.
func (s ReportStatus) Terminal() bool {
	return s == ReportStatusFiled || s == ReportStatusExempt || s == ReportStatusCancelled
}

// WizardPhase identifies which part of the intake flow the wizard is in.
type WizardPhase string

const (
	// WizardPhaseDetermination covers the questionnaire steps.
	WizardPhaseDetermination WizardPhase = "DETERMINATION"
	// WizardPhaseCollection covers party data gathering.
	WizardPhaseCollection WizardPhase = "COLLECTION"
	// WizardPhaseDone indicates the wizard has nothing left to ask.
	WizardPhaseDone WizardPhase = "DONE"
)

// WizardState is the resumable position of a report inside the intake
// wizard. Data holds the raw answers keyed by step so a session can be
// hydrated after a browser refresh or a different agent taking over.
type WizardState struct {
	// Phase is the coarse section of the flow.
	Phase WizardPhase `json:"phase"`
	// Step is the identifier of the current step within the phase.
	Step string `json:"step"`
	// Data is the saved answer payload, replaced wholesale on every save.
	Data json.RawMessage `json:"data,omitempty"`
	// SavedAt is the time of the last autosave.
	SavedAt time.Time `json:"savedAt"`
}

// Report is the aggregate root of the reporting workflow: the transaction
// facts, the current determination outcome, the wizard position and the
// lifecycle status. Parties and filing submissions hang off it by ReportID.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// FileNumber is the title company's closing file number.
	FileNumber string `json:"fileNumber"`

	// Status is the current lifecycle state of the report.
	Status ReportStatus `json:"status"`
	// Facts holds the transaction attributes the determination runs on.
	Facts TransactionFacts `json:"facts"`
	// Determination is the latest determination result, if any.
	Determination *DeterminationResult `json:"determination,omitempty"`
	// Wizard is the resumable intake position.
	Wizard WizardState `json:"wizard"`

	// ReceiptID is the filing channel's acknowledgement identifier. It is
	// set exactly once, when the filing is accepted, and never overwritten.
	ReceiptID string `json:"receiptId,omitempty"`
	// FiledAt is the time the filing was accepted; zero value means not filed.
	FiledAt time.Time `json:"filedAt,omitempty"`

	// CreatedAt is the time when the report was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the report was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the report was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
