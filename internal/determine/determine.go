// Package determine drives the reportability questionnaire: a strict step
// sequence over transaction facts that ends in a materialized determination
// result. Pure, no I/O; callers persist whatever it produces.
package determine

import (
	"time"

	"rrer/internal/rules"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

// Step identifies one questionnaire step.
type Step string

const (
	// StepProperty asks for the property classification.
	StepProperty Step = "PROPERTY"
	// StepIntentToBuild asks whether vacant land is bought to build a
	// residence. Only applicable to vacant land.
	StepIntentToBuild Step = "INTENT_TO_BUILD"
	// StepFinancing asks how the purchase is funded.
	StepFinancing Step = "FINANCING"
	// StepLenderAML asks whether the regulated lender ran AML screening.
	// Only applicable to regulated-lender financing.
	StepLenderAML Step = "LENDER_AML"
	// StepBuyerType resolves the transferee's exemption category.
	StepBuyerType Step = "BUYER_TYPE"
	// StepChecklistIndividual, StepChecklistEntity and StepChecklistTrust are
	// the category exemption checklists. Exactly one of them is applicable
	// once the buyer type resolves; the other two are skipped, not hidden.
	StepChecklistIndividual Step = "CHECKLIST_INDIVIDUAL"
	StepChecklistEntity     Step = "CHECKLIST_ENTITY"
	StepChecklistTrust      Step = "CHECKLIST_TRUST"
	// StepResult is the terminal display step; reaching it materializes the
	// determination result.
	StepResult Step = "RESULT"
)

// Outcome is what Advance produces: the next step to ask, plus the
// materialized result once the sequence is exhausted. Result is non-nil only
// when Next is StepResult.
type Outcome struct {
	Next   Step
	Result *domain.DeterminationResult
}

// Done reports whether the questionnaire has produced a determination.
func (o Outcome) Done() bool { return o.Result != nil }

// First returns the opening step of every questionnaire.
func First() Step { return StepProperty }

// checklistFor maps a resolved buyer category to its checklist step.
func checklistFor(category domain.BuyerCategory) (Step, bool) {
	switch category {
	case domain.BuyerCategoryIndividual:
		return StepChecklistIndividual, true
	case domain.BuyerCategoryEntity:
		return StepChecklistEntity, true
	case domain.BuyerCategoryTrust:
		return StepChecklistTrust, true
	default:
		return "", false
	}
}

// Sequence returns the applicable steps, in order, for the given facts. The
// list grows and shrinks as answers arrive: vacant land adds the
// intent-to-build step, regulated-lender financing adds the AML step, a
// resolved buyer type adds exactly one checklist. Progress displays divide
// completed steps by this list's length, so it must be recomputed on every
// fact change.
func Sequence(facts domain.TransactionFacts) []Step {
	steps := []Step{StepProperty}
	if facts.PropertyType == domain.PropertyTypeVacantLand {
		steps = append(steps, StepIntentToBuild)
	}

	steps = append(steps, StepFinancing)
	if facts.FinancingType == domain.FinancingTypeRegulatedLender {
		steps = append(steps, StepLenderAML)
	}

	// lender exit ends the questionnaire before the buyer steps
	if rules.LenderScreened(facts) {
		return append(steps, StepResult)
	}

	steps = append(steps, StepBuyerType)
	if checklist, ok := checklistFor(facts.BuyerCategory); ok {
		steps = append(steps, checklist)
	}

	return append(steps, StepResult)
}

// StepsAfter returns every applicable step strictly after the given one.
// Editing the answer of an earlier step invalidates exactly this set: saved
// answers for these steps must be cleared and any materialized result
// superseded, so no stale reasons survive the change.
func StepsAfter(changed Step, facts domain.TransactionFacts) []Step {
	seq := Sequence(facts)
	for i, s := range seq {
		if s == changed {
			return seq[i+1:]
		}
	}

	return nil
}

// ClearAfter zeroes the answers belonging to every step after the changed
// one, so a re-run can never see facts the user has not re-confirmed.
func ClearAfter(changed Step, facts domain.TransactionFacts) domain.TransactionFacts {
	for _, s := range StepsAfter(changed, facts) {
		switch s {
		case StepIntentToBuild:
			facts.IntentToBuild = false
		case StepFinancing:
			facts.FinancingType = ""
		case StepLenderAML:
			facts.LenderAMLScreened = false
		case StepBuyerType:
			facts.BuyerCategory = domain.BuyerCategoryUnset
		case StepChecklistIndividual, StepChecklistEntity, StepChecklistTrust:
			facts.ClaimedExemptions = nil
		}
	}

	// the screening answer rides on the financing answer; when financing
	// changed away from a regulated lender the AML step leaves the sequence,
	// so its stale answer has to be dropped here
	if facts.FinancingType != domain.FinancingTypeRegulatedLender {
		facts.LenderAMLScreened = false
	}

	return facts
}

// FirstChanged compares two fact snapshots and returns the earliest step whose
// answer differs, in questionnaire order. Editing a fact invalidates every
// step after the one that owns it, so callers feed the returned step to
// ClearAfter and StepsAfter. The second return is false when no step-owned
// answer changed (price or closing-date edits alone do not touch the
// determination).
func FirstChanged(old, new domain.TransactionFacts) (Step, bool) {
	switch {
	case old.PropertyType != new.PropertyType:
		return StepProperty, true
	case old.IntentToBuild != new.IntentToBuild:
		return StepIntentToBuild, true
	case old.FinancingType != new.FinancingType:
		return StepFinancing, true
	case old.LenderAMLScreened != new.LenderAMLScreened:
		return StepLenderAML, true
	case old.BuyerCategory != new.BuyerCategory:
		return StepBuyerType, true
	case !sameClaims(old.ClaimedExemptions, new.ClaimedExemptions):
		if checklist, ok := checklistFor(new.BuyerCategory); ok {
			return checklist, true
		}

		return StepChecklistIndividual, true
	default:
		return "", false
	}
}

func sameClaims(a, b []domain.ReasonCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Advance validates that the current step's facts are answered and returns the
// next applicable step. Reaching the terminal step materializes the result:
// exempt when any exemption rule matched, reportable otherwise. The lender
// early exit materializes straight from the AML step.
func Advance(cur Step, facts domain.TransactionFacts) (Outcome, error) {
	switch cur {
	case StepProperty:
		if err := checkProperty(facts); err != nil {
			return Outcome{}, err
		}
		if facts.PropertyType == domain.PropertyTypeVacantLand {
			return Outcome{Next: StepIntentToBuild}, nil
		}

		return Outcome{Next: StepFinancing}, nil

	case StepIntentToBuild:
		if facts.PropertyType != domain.PropertyTypeVacantLand {
			return Outcome{}, serrors.With(serrors.ErrInvalidTransition,
				"intent-to-build step is only applicable to vacant land")
		}

		return Outcome{Next: StepFinancing}, nil

	case StepFinancing:
		if err := checkFinancing(facts); err != nil {
			return Outcome{}, err
		}
		if facts.FinancingType == domain.FinancingTypeRegulatedLender {
			return Outcome{Next: StepLenderAML}, nil
		}

		return Outcome{Next: StepBuyerType}, nil

	case StepLenderAML:
		if facts.FinancingType != domain.FinancingTypeRegulatedLender {
			return Outcome{}, serrors.With(serrors.ErrInvalidTransition,
				"lender screening step is only applicable to regulated-lender financing")
		}
		if rules.LenderScreened(facts) {
			return lenderExit(facts)
		}

		return Outcome{Next: StepBuyerType}, nil

	case StepBuyerType:
		checklist, ok := checklistFor(facts.BuyerCategory)
		if !ok {
			if facts.BuyerCategory == domain.BuyerCategoryUnset {
				return Outcome{}, serrors.IncompleteFacts("buyerCategory")
			}

			return Outcome{}, serrors.Validation(serrors.FieldError{
				Field: "buyerCategory", Rule: "oneof",
				Message: "must be INDIVIDUAL, ENTITY or TRUST",
			})
		}

		return Outcome{Next: checklist}, nil

	case StepChecklistIndividual, StepChecklistEntity, StepChecklistTrust:
		expected, ok := checklistFor(facts.BuyerCategory)
		if !ok || expected != cur {
			return Outcome{}, serrors.With(serrors.ErrInvalidTransition,
				"checklist %s is not applicable to buyer category %q", cur, facts.BuyerCategory)
		}

		return materialize(facts, facts.BuyerCategory, domain.MethodQuestionnaire)

	case StepResult:
		return Outcome{}, serrors.With(serrors.ErrInvalidTransition, "determination already complete")

	default:
		return Outcome{}, serrors.With(serrors.ErrBadRequest, "unknown determination step %q", cur)
	}
}

// lenderExit materializes the early-exit result. The lender reason is
// attributed to the resolved buyer category when the buyer step was already
// answered; before that it is recorded under the individual-category code,
// which carries identical display text.
func lenderExit(facts domain.TransactionFacts) (Outcome, error) {
	category := facts.BuyerCategory
	if _, ok := checklistFor(category); !ok {
		category = domain.BuyerCategoryIndividual
	}

	return materialize(facts, category, domain.MethodLenderExit)
}

func materialize(facts domain.TransactionFacts, category domain.BuyerCategory, method domain.DeterminationMethod) (Outcome, error) {
	reasons, err := rules.Evaluate(facts, category)
	if err != nil {
		return Outcome{}, err
	}

	verdict := domain.VerdictReportable
	if len(reasons) > 0 {
		verdict = domain.VerdictExempt
	}

	return Outcome{
		Next: StepResult,
		Result: &domain.DeterminationResult{
			Verdict:      verdict,
			Reasons:      reasons,
			Method:       method,
			DeterminedAt: time.Now().UTC(),
		},
	}, nil
}

func checkProperty(facts domain.TransactionFacts) error {
	switch facts.PropertyType {
	case domain.PropertyTypeResidential, domain.PropertyTypeVacantLand,
		domain.PropertyTypeMixedUse, domain.PropertyTypeCommercial:
		return nil
	case "":
		return serrors.IncompleteFacts("propertyType")
	default:
		return serrors.Validation(serrors.FieldError{
			Field: "propertyType", Rule: "oneof",
			Message: "unknown property type",
		})
	}
}

func checkFinancing(facts domain.TransactionFacts) error {
	switch facts.FinancingType {
	case domain.FinancingTypeCash, domain.FinancingTypeRegulatedLender,
		domain.FinancingTypePrivateLender, domain.FinancingTypeSellerFinanced:
		return nil
	case "":
		return serrors.IncompleteFacts("financingType")
	default:
		return serrors.Validation(serrors.FieldError{
			Field: "financingType", Rule: "oneof",
			Message: "unknown financing type",
		})
	}
}
