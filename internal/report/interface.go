// Package report is the orchestration layer of the reporting workflow: it
// drives the pure engines (determine, wizard, party, filing) against storage,
// the filing channel and the job queue, and owns the report lifecycle.
package report

import (
	"context"
	"time"

	"rrer/internal/party"
	"rrer/pkg/domain"
)

// View is the aggregate read model: the report with everything hanging off
// it, plus derived collection and progress figures for the UI.
type View struct {
	Report        domain.Report              `json:"report"`
	Determination *domain.DeterminationResult `json:"determination,omitempty"`
	Parties       []domain.Party             `json:"parties,omitempty"`
	Collection    party.CollectionStatus     `json:"collection"`
	Filing        *domain.FilingSubmission   `json:"filing,omitempty"`

	// ProgressCompleted and ProgressApplicable are the wizard progress
	// counters, recomputed on every read because the applicable step set
	// moves with the facts.
	ProgressCompleted  int `json:"progressCompleted"`
	ProgressApplicable int `json:"progressApplicable"`
}

// Invitation is a minted party collection link: the signed token handed to
// the party and its expiry.
type Invitation struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go *
type Service interface {
	// Create opens a new draft report for a closing file.
	Create(ctx context.Context, fileNumber string) (*domain.Report, error)
	// Get returns the aggregate view of one report.
	Get(ctx context.Context, id domain.ReportID) (*View, error)
	// List returns a page of reports, optionally filtered by status, using an
	// RFC3339 cursor.
	List(ctx context.Context,
		status domain.ReportStatus,
		cursor string,
		limit uint) ([]domain.Report, string, error)
	// Cancel abandons the report. Legal from any non-terminal status.
	Cancel(ctx context.Context, id domain.ReportID) error

	// UpdateFacts replaces the transaction facts wholesale. A change to a
	// questionnaire answer invalidates the determination and every later
	// step's answers, and sends the report back to draft at the changed step.
	UpdateFacts(ctx context.Context, id domain.ReportID, facts domain.TransactionFacts) (*domain.Report, error)
	// SetWizardField records one form field value and schedules an autosave.
	SetWizardField(ctx context.Context, id domain.ReportID, step, field, value string) error
	// Advance moves the wizard one step forward, materializing and persisting
	// the determination when the questionnaire finishes.
	Advance(ctx context.Context, id domain.ReportID) (*View, error)
	// Retreat moves the wizard one step back. Never revalidates.
	Retreat(ctx context.Context, id domain.ReportID) (*domain.WizardState, error)
	// Certificate renders the exemption certificate of an exempt report.
	Certificate(ctx context.Context, id domain.ReportID) (string, error)

	// InviteParty mints a one-time collection link for the party, revoking
	// any earlier still-active link.
	InviteParty(ctx context.Context, partyID domain.PartyID) (*Invitation, error)
	// PortalParty loads the party behind a presented link token.
	PortalParty(ctx context.Context, token string) (*domain.Party, error)
	// SavePortalDraft saves partial party data through the portal without
	// consuming the link.
	SavePortalDraft(ctx context.Context, token string, data domain.PartyData) (*domain.Party, error)
	// SubmitParty validates and records the party's final submission,
	// consuming the link exactly once.
	SubmitParty(ctx context.Context, token string, data domain.PartyData) (*domain.Party, error)

	// RequestFiling queues the report's first filing submission.
	RequestFiling(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error)
	// RetryFiling re-queues a rejected submission.
	RetryFiling(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error)
	// ConfirmReviewAndRetry is the operator-confirmed retry out of needs-review.
	ConfirmReviewAndRetry(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error)
	// ProcessFiling performs one queued submission against the filing channel.
	// Called by the background worker, never directly by handlers.
	ProcessFiling(ctx context.Context, id domain.ReportID) error
}
