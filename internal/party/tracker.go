// Package party derives which participants a report must collect and tracks
// collection completeness. Derivation and status math are pure; the link
// issuer in this package handles the one-time access tokens parties use to
// submit their own data.
package party

import (
	"rrer/pkg/domain"
)

// Requirement is one structural party requirement: how many parties of a role
// the transaction must have. Max zero means unbounded.
type Requirement struct {
	Role domain.PartyRole
	Min  int
	Max  int
}

// RequiredParties derives the structural party set from the transaction
// facts. Every transaction needs the transferee and transferor sides plus
// exactly one reporting person; an entity buyer adds beneficial owners and a
// trust buyer adds trustee/settlor/beneficiary disclosure slots.
func RequiredParties(facts domain.TransactionFacts) []Requirement {
	reqs := []Requirement{
		{Role: domain.PartyRoleTransferee, Min: 1},
		{Role: domain.PartyRoleTransferor, Min: 1},
	}

	switch facts.BuyerCategory {
	case domain.BuyerCategoryEntity:
		reqs = append(reqs, Requirement{Role: domain.PartyRoleBeneficialOwner, Min: 1})
	case domain.BuyerCategoryTrust:
		reqs = append(reqs,
			Requirement{Role: domain.PartyRoleTrustee, Min: 1},
			Requirement{Role: domain.PartyRoleSettlor, Min: 1},
			Requirement{Role: domain.PartyRoleBeneficiary, Min: 1},
		)
	}

	return append(reqs, Requirement{Role: domain.PartyRoleReportingPerson, Min: 1, Max: 1})
}

// SpawnParties materializes the initial pending party slots for the
// requirements, one per required minimum. Staff add further slots (extra
// beneficial owners, co-buyers) as the transaction structure demands.
func SpawnParties(reportID domain.ReportID, facts domain.TransactionFacts) []domain.Party {
	var parties []domain.Party
	for _, req := range RequiredParties(facts) {
		for i := 0; i < req.Min; i++ {
			parties = append(parties, domain.Party{
				ReportID: reportID,
				Role:     req.Role,
				Status:   domain.PartyStatusPending,
			})
		}
	}

	return parties
}

// CollectionStatus summarizes how far party collection has progressed.
type CollectionStatus struct {
	// Total counts the non-cancelled parties on the report.
	Total int `json:"total"`
	// Submitted counts parties whose information is in (submitted or verified).
	Submitted int `json:"submitted"`
	// AllComplete is true iff the structural requirements are met and every
	// non-cancelled party has submitted. This is the sole gate for moving a
	// report to ready-to-file.
	AllComplete bool `json:"allComplete"`
	// MissingRoles lists roles whose structural minimum is not yet satisfied
	// by submitted parties, for the UI to name the unmet requirement.
	MissingRoles []domain.PartyRole `json:"missingRoles,omitempty"`
}

// Status computes collection completeness for the given facts and parties.
// Cancelled parties are audit shadows: they stay on the report but count
// toward nothing. One party still pending, invited or in progress keeps
// AllComplete false no matter how many others have submitted.
func Status(facts domain.TransactionFacts, parties []domain.Party) CollectionStatus {
	var status CollectionStatus

	byRole := make(map[domain.PartyRole]int)
	collectedByRole := make(map[domain.PartyRole]int)
	everyPartyIn := true
	for _, p := range parties {
		if p.Status == domain.PartyStatusCancelled {
			continue
		}

		status.Total++
		byRole[p.Role]++
		if p.Status.Collected() {
			status.Submitted++
			collectedByRole[p.Role]++
		} else {
			everyPartyIn = false
		}
	}

	structural := true
	for _, req := range RequiredParties(facts) {
		unmet := collectedByRole[req.Role] < req.Min
		overfull := req.Max > 0 && byRole[req.Role] > req.Max
		if unmet || overfull {
			structural = false
			status.MissingRoles = append(status.MissingRoles, req.Role)
		}
	}

	status.AllComplete = structural && everyPartyIn && status.Total > 0

	return status
}
