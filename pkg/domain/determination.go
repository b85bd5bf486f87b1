package domain

import "time"

// Verdict is the final answer of a determination run.
type Verdict string

const (
	// VerdictExempt means the transaction is not reportable; at least one
	// exemption reason must accompany this verdict.
	VerdictExempt Verdict = "EXEMPT"
	// VerdictReportable means a report must be collected and filed.
	VerdictReportable Verdict = "REPORTABLE"
)

// ReasonCode identifies one statutory exemption within the closed enumeration.
// Codes are grouped by buyer category; the same code may appear in more than
// one category list when the statute applies to several buyer types.
type ReasonCode string

const (
	// Individual-category codes.
	ReasonTransferBetweenSpouses      ReasonCode = "TRANSFER_BETWEEN_SPOUSES"
	ReasonTransferResultingFromDeath  ReasonCode = "TRANSFER_RESULTING_FROM_DEATH"
	ReasonTransferIncidentToDivorce   ReasonCode = "TRANSFER_INCIDENT_TO_DIVORCE"
	ReasonTransferToBankruptcyEstate  ReasonCode = "TRANSFER_TO_BANKRUPTCY_ESTATE"
	ReasonCourtOrderedTransfer        ReasonCode = "COURT_ORDERED_TRANSFER"
	ReasonNoConsiderationTransfer     ReasonCode = "NO_CONSIDERATION_TRANSFER"
	ReasonEasementOnlyTransfer        ReasonCode = "EASEMENT_ONLY_TRANSFER"
	ReasonRegulatedLenderFinancing    ReasonCode = "REGULATED_LENDER_FINANCING"

	// Entity-category codes.
	ReasonPubliclyTradedEntity          ReasonCode = "PUBLICLY_TRADED_ENTITY"
	ReasonRegulatedFinancialInstitution ReasonCode = "REGULATED_FINANCIAL_INSTITUTION"
	ReasonGovernmentAuthority           ReasonCode = "GOVERNMENT_AUTHORITY"
	ReasonBSAReportingEntity            ReasonCode = "BANK_SECRECY_ACT_REPORTING_ENTITY"
	ReasonInsuranceCompany              ReasonCode = "INSURANCE_COMPANY"
	ReasonRegisteredInvestmentCompany   ReasonCode = "REGISTERED_INVESTMENT_COMPANY"

	// Trust-category codes.
	ReasonStatutoryTrust                 ReasonCode = "STATUTORY_TRUST"
	ReasonTrusteeIsRegulatedInstitution  ReasonCode = "TRUSTEE_IS_REGULATED_INSTITUTION"
	ReasonSecuritiesReportingIssuerTrust ReasonCode = "SECURITIES_REPORTING_ISSUER_TRUST"
)

// ExemptionReason is one applicable exemption: the statutory code, the buyer
// category whose rule list produced it, and the display text disclosed to the
// user on the exemption certificate. Multiple reasons may apply to one
// transaction; the union is kept, never reduced to a single "strongest" one.
type ExemptionReason struct {
	Code        ReasonCode    `json:"code"`
	Category    BuyerCategory `json:"category"`
	DisplayText string        `json:"displayText"`
}

// DeterminationMethod records how a determination result was produced.
type DeterminationMethod string

const (
	// MethodQuestionnaire is the normal path through every applicable step.
	MethodQuestionnaire DeterminationMethod = "QUESTIONNAIRE"
	// MethodLenderExit is the early exit taken when a regulated lender
	// performed AML screening; later steps are never reached.
	MethodLenderExit DeterminationMethod = "LENDER_EXIT"
	// MethodResumed marks a re-run after an earlier answer changed.
	MethodResumed DeterminationMethod = "RESUMED"
)

// DeterminationResult is the materialized outcome of a determination run.
// Results are immutable: editing facts produces a new result that supersedes
// the old one, and superseded results are retained for the audit trail.
//
// Invariant: Reasons is non-empty iff Verdict is VerdictExempt.
type DeterminationResult struct {
	Verdict      Verdict             `json:"verdict"`
	Reasons      []ExemptionReason   `json:"reasons,omitempty"`
	Method       DeterminationMethod `json:"method"`
	DeterminedAt time.Time           `json:"determinedAt"`
}

// Exempt reports whether the verdict is exempt.
func (r DeterminationResult) Exempt() bool { return r.Verdict == VerdictExempt }

// Consistent reports whether the reasons/verdict invariant holds.
func (r DeterminationResult) Consistent() bool {
	if r.Verdict == VerdictExempt {
		return len(r.Reasons) > 0
	}

	return len(r.Reasons) == 0
}
