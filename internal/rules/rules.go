// Package rules holds the fixed statutory exemption rule set. Evaluation is
// pure and deterministic: predicates over transaction facts, no I/O.
package rules

import (
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

// Rule is one statutory exemption predicate within a buyer category's list.
type Rule struct {
	// Code identifies the exemption within the closed enumeration.
	Code domain.ReasonCode
	// DisplayText is what the certificate and the UI disclose for this rule.
	DisplayText string
	// Applies decides whether the rule matches the given facts.
	Applies func(facts domain.TransactionFacts) bool
}

// claimed builds the common predicate for exemptions the user asserts on the
// category checklist step.
func claimed(code domain.ReasonCode) func(domain.TransactionFacts) bool {
	return func(facts domain.TransactionFacts) bool {
		return facts.HasClaimed(code)
	}
}

// lenderScreened matches when a regulated lender subject to AML program
// obligations financed the purchase. This is the only rule derived from
// financing facts instead of the checklist; it also drives the questionnaire
// early exit.
func lenderScreened(facts domain.TransactionFacts) bool {
	return facts.FinancingType == domain.FinancingTypeRegulatedLender && facts.LenderAMLScreened
}

// catalog is the closed rule enumeration grouped by buyer category. The same
// code may appear under several categories when the statute applies to more
// than one buyer type; evaluation only ever consults one category's list.
var catalog = map[domain.BuyerCategory][]Rule{
	domain.BuyerCategoryIndividual: {
		{domain.ReasonTransferBetweenSpouses, "Transfer between spouses or domestic partners", claimed(domain.ReasonTransferBetweenSpouses)},
		{domain.ReasonTransferResultingFromDeath, "Transfer resulting from the death of an owner", claimed(domain.ReasonTransferResultingFromDeath)},
		{domain.ReasonTransferIncidentToDivorce, "Transfer incident to a divorce or dissolution", claimed(domain.ReasonTransferIncidentToDivorce)},
		{domain.ReasonTransferToBankruptcyEstate, "Transfer to a bankruptcy estate", claimed(domain.ReasonTransferToBankruptcyEstate)},
		{domain.ReasonCourtOrderedTransfer, "Transfer supervised or ordered by a court", claimed(domain.ReasonCourtOrderedTransfer)},
		{domain.ReasonNoConsiderationTransfer, "Transfer for no consideration", claimed(domain.ReasonNoConsiderationTransfer)},
		{domain.ReasonEasementOnlyTransfer, "Transfer of an easement only", claimed(domain.ReasonEasementOnlyTransfer)},
		{domain.ReasonRegulatedLenderFinancing, "Financing by a regulated lender with an AML program", lenderScreened},
	},
	domain.BuyerCategoryEntity: {
		{domain.ReasonPubliclyTradedEntity, "Transferee is a publicly traded entity", claimed(domain.ReasonPubliclyTradedEntity)},
		{domain.ReasonRegulatedFinancialInstitution, "Transferee is a regulated financial institution", claimed(domain.ReasonRegulatedFinancialInstitution)},
		{domain.ReasonGovernmentAuthority, "Transferee is a government authority", claimed(domain.ReasonGovernmentAuthority)},
		{domain.ReasonBSAReportingEntity, "Transferee already reports under the Bank Secrecy Act", claimed(domain.ReasonBSAReportingEntity)},
		{domain.ReasonInsuranceCompany, "Transferee is a licensed insurance company", claimed(domain.ReasonInsuranceCompany)},
		{domain.ReasonRegisteredInvestmentCompany, "Transferee is a registered investment company", claimed(domain.ReasonRegisteredInvestmentCompany)},
		{domain.ReasonCourtOrderedTransfer, "Transfer supervised or ordered by a court", claimed(domain.ReasonCourtOrderedTransfer)},
		{domain.ReasonRegulatedLenderFinancing, "Financing by a regulated lender with an AML program", lenderScreened},
	},
	domain.BuyerCategoryTrust: {
		{domain.ReasonStatutoryTrust, "Transferee is a statutory trust", claimed(domain.ReasonStatutoryTrust)},
		{domain.ReasonTrusteeIsRegulatedInstitution, "Trustee is a regulated financial institution", claimed(domain.ReasonTrusteeIsRegulatedInstitution)},
		{domain.ReasonSecuritiesReportingIssuerTrust, "Trust is a securities reporting issuer", claimed(domain.ReasonSecuritiesReportingIssuerTrust)},
		{domain.ReasonTransferResultingFromDeath, "Transfer resulting from the death of an owner", claimed(domain.ReasonTransferResultingFromDeath)},
		{domain.ReasonCourtOrderedTransfer, "Transfer supervised or ordered by a court", claimed(domain.ReasonCourtOrderedTransfer)},
		{domain.ReasonRegulatedLenderFinancing, "Financing by a regulated lender with an AML program", lenderScreened},
	},
}

// Evaluate runs every rule in the category's list against the facts and
// returns all matching reasons. The result is a union: every applicable
// exemption is disclosed, never just the first match, because the certificate
// must list each one. An unset or unknown category fails rather than silently
// returning empty.
func Evaluate(facts domain.TransactionFacts, category domain.BuyerCategory) ([]domain.ExemptionReason, error) {
	list, ok := catalog[category]
	if !ok {
		return nil, serrors.IncompleteFacts("buyerCategory")
	}

	var reasons []domain.ExemptionReason
	for _, rule := range list {
		if rule.Applies(facts) {
			reasons = append(reasons, domain.ExemptionReason{
				Code:        rule.Code,
				Category:    category,
				DisplayText: rule.DisplayText,
			})
		}
	}

	return reasons, nil
}

// CatalogFor returns the category's rule list so the checklist step can render
// the claimable exemptions. The returned slice must not be modified.
func CatalogFor(category domain.BuyerCategory) []Rule {
	return catalog[category]
}

// LenderScreened reports whether the facts qualify for the regulated-lender
// exemption. The questionnaire consults this for its early exit so the exit
// and the rule can never disagree.
func LenderScreened(facts domain.TransactionFacts) bool {
	return lenderScreened(facts)
}
