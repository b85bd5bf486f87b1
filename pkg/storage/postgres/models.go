package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rrer/pkg/domain"

	"github.com/google/uuid"
)

type PgReport struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	FileNumber string    `db:"file_number"`

	Status string          `db:"status"`
	Facts  json.RawMessage `db:"facts"`

	WizardPhase   string          `db:"wizard_phase"`
	WizardStep    string          `db:"wizard_step"`
	WizardData    json.RawMessage `db:"wizard_data"     goqu:"skipinsert"`
	WizardSavedAt sql.NullTime    `db:"wizard_saved_at" goqu:"skipinsert"`

	ReceiptID sql.NullString `db:"receipt_id" goqu:"skipinsert"`
	FiledAt   sql.NullTime   `db:"filed_at"   goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() (*domain.Report, error) {
	var facts domain.TransactionFacts
	if err := json.Unmarshal(p.Facts, &facts); err != nil {
		return nil, fmt.Errorf("could not unmarshal report facts: %w", err)
	}

	return &domain.Report{
		ID:         domain.ReportID(p.ID),
		FileNumber: p.FileNumber,
		Status:     domain.ReportStatus(p.Status),
		Facts:      facts,
		Wizard: domain.WizardState{
			Phase:   domain.WizardPhase(p.WizardPhase),
			Step:    p.WizardStep,
			Data:    p.WizardData,
			SavedAt: p.WizardSavedAt.Time,
		},
		ReceiptID: p.ReceiptID.String,
		FiledAt:   p.FiledAt.Time,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgReport) FromDomain(report domain.Report) error {
	facts, err := json.Marshal(report.Facts)
	if err != nil {
		return fmt.Errorf("could not marshal report facts: %w", err)
	}

	*p = PgReport{
		ID:          uuid.UUID(report.ID),
		FileNumber:  report.FileNumber,
		Status:      string(report.Status),
		Facts:       facts,
		WizardPhase: string(report.Wizard.Phase),
		WizardStep:  report.Wizard.Step,
		WizardData:  report.Wizard.Data,
		WizardSavedAt: sql.NullTime{
			Time:  report.Wizard.SavedAt,
			Valid: !report.Wizard.SavedAt.IsZero(),
		},
		ReceiptID: sql.NullString{
			String: report.ReceiptID,
			Valid:  report.ReceiptID != "",
		},
		FiledAt: sql.NullTime{
			Time:  report.FiledAt,
			Valid: !report.FiledAt.IsZero(),
		},
		CreatedAt: report.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  report.UpdatedAt,
			Valid: !report.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  report.DeletedAt,
			Valid: !report.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgReportsToDomain(reports []PgReport) ([]domain.Report, error) {
	out := make([]domain.Report, 0, len(reports))
	for _, report := range reports {
		d, err := report.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgDetermination struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	ReportID uuid.UUID `db:"report_id"`

	Verdict string          `db:"verdict"`
	Reasons json.RawMessage `db:"reasons"`
	Method  string          `db:"method"`

	DeterminedAt time.Time    `db:"determined_at"`
	SupersededAt sql.NullTime `db:"superseded_at" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDetermination) ToDomain() (*domain.DeterminationResult, error) {
	var reasons []domain.ExemptionReason
	if err := json.Unmarshal(p.Reasons, &reasons); err != nil {
		return nil, fmt.Errorf("could not unmarshal determination reasons: %w", err)
	}

	return &domain.DeterminationResult{
		Verdict:      domain.Verdict(p.Verdict),
		Reasons:      reasons,
		Method:       domain.DeterminationMethod(p.Method),
		DeterminedAt: p.DeterminedAt,
	}, nil
}

func (p *PgDetermination) FromDomain(reportID domain.ReportID, result domain.DeterminationResult) error {
	reasons, err := json.Marshal(result.Reasons)
	if err != nil {
		return fmt.Errorf("could not marshal determination reasons: %w", err)
	}
	if result.Reasons == nil {
		reasons = json.RawMessage("[]")
	}

	*p = PgDetermination{
		ReportID:     uuid.UUID(reportID),
		Verdict:      string(result.Verdict),
		Reasons:      reasons,
		Method:       string(result.Method),
		DeterminedAt: result.DeterminedAt,
	}

	return nil
}

type PgParty struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	ReportID uuid.UUID `db:"report_id"`

	Role   string          `db:"role"`
	Status string          `db:"status"`
	Data   json.RawMessage `db:"data"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgParty) ToDomain() (*domain.Party, error) {
	var data domain.PartyData
	if err := json.Unmarshal(p.Data, &data); err != nil {
		return nil, fmt.Errorf("could not unmarshal party data: %w", err)
	}

	return &domain.Party{
		ID:        domain.PartyID(p.ID),
		ReportID:  domain.ReportID(p.ReportID),
		Role:      domain.PartyRole(p.Role),
		Status:    domain.PartyStatus(p.Status),
		Data:      data,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgParty) FromDomain(party domain.Party) error {
	data, err := json.Marshal(party.Data)
	if err != nil {
		return fmt.Errorf("could not marshal party data: %w", err)
	}

	*p = PgParty{
		ID:       uuid.UUID(party.ID),
		ReportID: uuid.UUID(party.ReportID),
		Role:     string(party.Role),
		Status:   string(party.Status),
		Data:     data,
		CreatedAt: party.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  party.UpdatedAt,
			Valid: !party.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  party.DeletedAt,
			Valid: !party.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainPartiesToPg(parties []domain.Party) ([]PgParty, error) {
	out := make([]PgParty, len(parties))
	for i := range out {
		if err := out[i].FromDomain(parties[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPartiesToDomain(parties []PgParty) ([]domain.Party, error) {
	out := make([]domain.Party, 0, len(parties))
	for _, party := range parties {
		d, err := party.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgLink struct {
	// the link ID is minted by the issuer and embedded in the signed token, so
	// unlike other tables it is inserted, not generated
	ID      uuid.UUID `db:"id"`
	PartyID uuid.UUID `db:"party_id"`

	Status    string       `db:"status"`
	ExpiresAt time.Time    `db:"expires_at"`
	UsedAt    sql.NullTime `db:"used_at" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLink) ToDomain() *domain.PartyLink {
	return &domain.PartyLink{
		ID:        domain.LinkID(p.ID),
		PartyID:   domain.PartyID(p.PartyID),
		Status:    domain.LinkStatus(p.Status),
		ExpiresAt: p.ExpiresAt,
		UsedAt:    p.UsedAt.Time,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgLink) FromDomain(link domain.PartyLink) {
	*p = PgLink{
		ID:        uuid.UUID(link.ID),
		PartyID:   uuid.UUID(link.PartyID),
		Status:    string(link.Status),
		ExpiresAt: link.ExpiresAt,
		UsedAt: sql.NullTime{
			Time:  link.UsedAt,
			Valid: !link.UsedAt.IsZero(),
		},
		CreatedAt: link.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  link.UpdatedAt,
			Valid: !link.UpdatedAt.IsZero(),
		},
	}
}

type PgFiling struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	ReportID uuid.UUID `db:"report_id"`

	Status           string         `db:"status"`
	ReceiptID        sql.NullString `db:"receipt_id"        goqu:"skipinsert"`
	RejectionCode    sql.NullString `db:"rejection_code"    goqu:"skipinsert"`
	RejectionMessage sql.NullString `db:"rejection_message" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	SubmittedAt sql.NullTime `db:"submitted_at" goqu:"skipinsert"`
	ResolvedAt  sql.NullTime `db:"resolved_at"  goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgFiling) ToDomain() *domain.FilingSubmission {
	return &domain.FilingSubmission{
		ID:               domain.FilingID(p.ID),
		ReportID:         domain.ReportID(p.ReportID),
		Status:           domain.FilingStatus(p.Status),
		ReceiptID:        p.ReceiptID.String,
		RejectionCode:    domain.RejectionCode(p.RejectionCode.String),
		RejectionMessage: p.RejectionMessage.String,
		Attempts:         p.Attempts,
		LastError:        p.LastError.String,
		SubmittedAt:      p.SubmittedAt.Time,
		ResolvedAt:       p.ResolvedAt.Time,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
}

func (p *PgFiling) FromDomain(sub domain.FilingSubmission) {
	*p = PgFiling{
		ID:       uuid.UUID(sub.ID),
		ReportID: uuid.UUID(sub.ReportID),
		Status:   string(sub.Status),
		ReceiptID: sql.NullString{
			String: sub.ReceiptID,
			Valid:  sub.ReceiptID != "",
		},
		RejectionCode: sql.NullString{
			String: string(sub.RejectionCode),
			Valid:  sub.RejectionCode != "",
		},
		RejectionMessage: sql.NullString{
			String: sub.RejectionMessage,
			Valid:  sub.RejectionMessage != "",
		},
		Attempts: sub.Attempts,
		LastError: sql.NullString{
			String: sub.LastError,
			Valid:  sub.LastError != "",
		},
		SubmittedAt: sql.NullTime{
			Time:  sub.SubmittedAt,
			Valid: !sub.SubmittedAt.IsZero(),
		},
		ResolvedAt: sql.NullTime{
			Time:  sub.ResolvedAt,
			Valid: !sub.ResolvedAt.IsZero(),
		},
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  sub.UpdatedAt,
			Valid: !sub.UpdatedAt.IsZero(),
		},
	}
}
