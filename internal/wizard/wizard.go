// Package wizard is the intake flow state machine: phase and step navigation
// over the determination questionnaire and the collection forms, with
// per-step validation gating forward movement. The machine is a pure reducer;
// persistence and side effects belong to its callers.
package wizard

import (
	"encoding/json"
	"fmt"

	"rrer/internal/determine"
	"rrer/pkg/domain"
)

// Collection step identifiers. Which of them apply depends on the facts:
// entity buyers add the beneficial-owner step, trust buyers add the
// trustee/settlor/beneficiary steps.
const (
	StepPropertyTransaction = "PROPERTY_TRANSACTION"
	StepSellerInfo          = "SELLER_INFO"
	StepBuyerInfo           = "BUYER_INFO"
	StepBeneficialOwners    = "BENEFICIAL_OWNERS"
	StepTrustees            = "TRUSTEES"
	StepSettlors            = "SETTLORS"
	StepBeneficiaries       = "BENEFICIARIES"
	StepPaymentInfo         = "PAYMENT_INFO"
	StepReportingPerson     = "REPORTING_PERSON"
	StepCertifications      = "CERTIFICATIONS"
	StepSummary             = "SUMMARY"
)

// State is the wizard's in-memory position and accumulated form data, keyed
// by step then field. It round-trips through domain.WizardState for
// persistence via Serialize and Hydrate.
type State struct {
	Phase domain.WizardPhase
	Step  string
	Data  map[string]map[string]string
}

// First returns the opening wizard state: the determination phase at its
// first question.
func First() State {
	return State{
		Phase: domain.WizardPhaseDetermination,
		Step:  string(determine.First()),
		Data:  map[string]map[string]string{},
	}
}

// Set records one field value for a step. Values are kept verbatim;
// validation happens when the step tries to move forward.
func (s *State) Set(step, field, value string) {
	if s.Data == nil {
		s.Data = map[string]map[string]string{}
	}
	if s.Data[step] == nil {
		s.Data[step] = map[string]string{}
	}
	s.Data[step][field] = value
}

// Serialize converts the state into its persistable form.
func (s State) Serialize() (domain.WizardState, error) {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return domain.WizardState{}, fmt.Errorf("could not marshal wizard data: %w", err)
	}

	return domain.WizardState{
		Phase: s.Phase,
		Step:  s.Step,
		Data:  data,
	}, nil
}

// Hydrate rebuilds an in-memory state from its persisted form, so a session
// can resume after a refresh or a different agent taking over.
func Hydrate(ws domain.WizardState) (State, error) {
	s := State{
		Phase: ws.Phase,
		Step:  ws.Step,
		Data:  map[string]map[string]string{},
	}
	if s.Phase == "" {
		return First(), nil
	}
	if len(ws.Data) > 0 {
		if err := json.Unmarshal(ws.Data, &s.Data); err != nil {
			return State{}, fmt.Errorf("could not unmarshal wizard data: %w", err)
		}
	}

	return s, nil
}

// CollectionSteps returns the applicable collection steps, in order, for the
// facts. The set grows and shrinks with the buyer category, which is why
// progress is recomputed on every fact change.
func CollectionSteps(facts domain.TransactionFacts) []string {
	steps := []string{StepPropertyTransaction, StepSellerInfo, StepBuyerInfo}

	switch facts.BuyerCategory {
	case domain.BuyerCategoryEntity:
		steps = append(steps, StepBeneficialOwners)
	case domain.BuyerCategoryTrust:
		steps = append(steps, StepTrustees, StepSettlors, StepBeneficiaries)
	}

	return append(steps, StepPaymentInfo, StepReportingPerson, StepCertifications, StepSummary)
}

// fieldsFor declares what each collection step gathers. The buyer-info step
// is polymorphic over the buyer category: one form variant per
// individual/entity/trust instead of three separate steps.
func fieldsFor(step string, facts domain.TransactionFacts) []FieldSpec {
	switch step {
	case StepPropertyTransaction:
		return []FieldSpec{
			{Name: "address", Kind: KindText, Required: true},
			{Name: "city", Kind: KindText, Required: true},
			{Name: "state", Kind: KindText, Required: true},
			{Name: "postalCode", Kind: KindText, Required: true},
			{Name: "closingDate", Kind: KindDate, Required: true},
			{Name: "purchasePrice", Kind: KindMoney, Required: true},
		}
	case StepSellerInfo:
		return []FieldSpec{
			{Name: "legalName", Kind: KindText, Required: true},
			{Name: "address", Kind: KindText, Required: true},
			{Name: "email", Kind: KindEmail, Required: true},
		}
	case StepBuyerInfo:
		specs := []FieldSpec{{Name: "legalName", Kind: KindText, Required: true}}
		switch facts.BuyerCategory {
		case domain.BuyerCategoryIndividual:
			specs = append(specs,
				FieldSpec{Name: "dateOfBirth", Kind: KindDate, Required: true},
				FieldSpec{Name: "ssnLast4", Kind: KindSSNLast4, Required: true},
				FieldSpec{Name: "email", Kind: KindEmail, Required: true},
			)
		case domain.BuyerCategoryEntity:
			specs = append(specs,
				FieldSpec{Name: "ein", Kind: KindEIN, Required: true},
				FieldSpec{Name: "email", Kind: KindEmail, Required: true},
			)
		case domain.BuyerCategoryTrust:
			specs = append(specs,
				FieldSpec{Name: "ein", Kind: KindEIN, Required: false},
				FieldSpec{Name: "email", Kind: KindEmail, Required: true},
			)
		}

		return specs
	case StepBeneficialOwners:
		return []FieldSpec{
			{Name: "primaryOwnerName", Kind: KindText, Required: true},
			{Name: "primaryOwnerEmail", Kind: KindEmail, Required: true},
		}
	case StepTrustees:
		return []FieldSpec{
			{Name: "trusteeName", Kind: KindText, Required: true},
			{Name: "trusteeEmail", Kind: KindEmail, Required: true},
		}
	case StepSettlors:
		return []FieldSpec{
			{Name: "settlorName", Kind: KindText, Required: true},
			{Name: "settlorEmail", Kind: KindEmail, Required: false},
		}
	case StepBeneficiaries:
		return []FieldSpec{
			{Name: "beneficiaryName", Kind: KindText, Required: true},
			{Name: "beneficiaryEmail", Kind: KindEmail, Required: false},
		}
	case StepPaymentInfo:
		return []FieldSpec{
			{Name: "paymentMethod", Kind: KindText, Required: true},
			{Name: "amount", Kind: KindMoney, Required: true},
		}
	case StepReportingPerson:
		return []FieldSpec{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "email", Kind: KindEmail, Required: true},
			{Name: "firm", Kind: KindText, Required: false},
		}
	case StepCertifications:
		return []FieldSpec{
			{Name: "accuracyCertified", Kind: KindCheckbox, Required: true},
			{Name: "authorityCertified", Kind: KindCheckbox, Required: true},
		}
	default:
		// the summary step reviews, it gathers nothing
		return nil
	}
}
