package party_test

import (
	"rrer/internal/party"
	"rrer/pkg/domain"
	"testing"
)

func roleCount(reqs []party.Requirement, role domain.PartyRole) int {
	for _, r := range reqs {
		if r.Role == role {
			return r.Min
		}
	}

	return 0
}

func TestRequiredParties(t *testing.T) {
	cases := []struct {
		name  string
		facts domain.TransactionFacts
		roles map[domain.PartyRole]int
	}{
		{
			name:  "individual buyer has no extra slots",
			facts: domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryIndividual},
			roles: map[domain.PartyRole]int{
				domain.PartyRoleTransferee:      1,
				domain.PartyRoleTransferor:      1,
				domain.PartyRoleReportingPerson: 1,
				domain.PartyRoleBeneficialOwner: 0,
				domain.PartyRoleTrustee:         0,
			},
		},
		{
			name:  "entity buyer spawns beneficial owner",
			facts: domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity},
			roles: map[domain.PartyRole]int{
				domain.PartyRoleBeneficialOwner: 1,
				domain.PartyRoleReportingPerson: 1,
				domain.PartyRoleTrustee:         0,
			},
		},
		{
			name:  "trust buyer spawns trustee settlor beneficiary",
			facts: domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryTrust},
			roles: map[domain.PartyRole]int{
				domain.PartyRoleTrustee:         1,
				domain.PartyRoleSettlor:         1,
				domain.PartyRoleBeneficiary:     1,
				domain.PartyRoleBeneficialOwner: 0,
			},
		},
	}

	for _, tc := range cases {
		reqs := party.RequiredParties(tc.facts)
		for role, want := range tc.roles {
			if got := roleCount(reqs, role); got != want {
				t.Errorf("%s: role %s min: got %d, want %d", tc.name, role, got, want)
			}
		}
	}
}

func TestRequiredPartiesExactlyOneReportingPerson(t *testing.T) {
	for _, req := range party.RequiredParties(domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}) {
		if req.Role == domain.PartyRoleReportingPerson {
			if req.Min != 1 || req.Max != 1 {
				t.Fatalf("reporting person must be exactly one, got min %d max %d", req.Min, req.Max)
			}

			return
		}
	}

	t.Fatal("reporting person requirement missing")
}

func TestSpawnParties(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryTrust}
	parties := party.SpawnParties(domain.ReportID{}, facts)

	// transferee, transferor, trustee, settlor, beneficiary, reporting person
	if len(parties) != 6 {
		t.Fatalf("spawned %d parties, want 6", len(parties))
	}
	for _, p := range parties {
		if p.Status != domain.PartyStatusPending {
			t.Errorf("spawned party %s must start pending, got %s", p.Role, p.Status)
		}
	}
}

func entityParties(statuses ...domain.PartyStatus) []domain.Party {
	roles := []domain.PartyRole{
		domain.PartyRoleTransferee,
		domain.PartyRoleTransferor,
		domain.PartyRoleBeneficialOwner,
		domain.PartyRoleReportingPerson,
	}
	parties := make([]domain.Party, len(roles))
	for i, role := range roles {
		parties[i] = domain.Party{Role: role, Status: statuses[i]}
	}

	return parties
}

func TestStatusAllComplete(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}

	status := party.Status(facts, entityParties(
		domain.PartyStatusSubmitted,
		domain.PartyStatusVerified,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
	))
	if !status.AllComplete {
		t.Fatalf("all submitted or verified must be complete: %+v", status)
	}
	if status.Total != 4 || status.Submitted != 4 {
		t.Errorf("counts: got %d/%d, want 4/4", status.Submitted, status.Total)
	}
	if len(status.MissingRoles) != 0 {
		t.Errorf("nothing should be missing, got %v", status.MissingRoles)
	}
}

func TestStatusOnePendingBlocks(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}

	status := party.Status(facts, entityParties(
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusLinkSent,
		domain.PartyStatusSubmitted,
	))
	if status.AllComplete {
		t.Fatal("a link-sent party must block completeness")
	}
	if status.Submitted != 3 {
		t.Errorf("submitted: got %d, want 3", status.Submitted)
	}
	if len(status.MissingRoles) != 1 || status.MissingRoles[0] != domain.PartyRoleBeneficialOwner {
		t.Errorf("missing roles: got %v, want [BENEFICIAL_OWNER]", status.MissingRoles)
	}
}

func TestStatusAddingUnsubmittedPartyFlipsComplete(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}
	parties := entityParties(
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusVerified,
	)

	if !party.Status(facts, parties).AllComplete {
		t.Fatal("baseline must be complete")
	}

	parties = append(parties, domain.Party{
		Role:   domain.PartyRoleBeneficialOwner,
		Status: domain.PartyStatusPending,
	})
	if party.Status(facts, parties).AllComplete {
		t.Fatal("adding an unsubmitted party must flip completeness to false")
	}
}

func TestStatusCancelledPartiesExcluded(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}
	parties := entityParties(
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
	)
	// a withdrawn co-owner slot stays on the report but counts toward nothing
	parties = append(parties, domain.Party{
		Role:   domain.PartyRoleBeneficialOwner,
		Status: domain.PartyStatusCancelled,
	})

	status := party.Status(facts, parties)
	if !status.AllComplete {
		t.Fatalf("cancelled party must not block completeness: %+v", status)
	}
	if status.Total != 4 {
		t.Errorf("total: got %d, want 4 (cancelled excluded)", status.Total)
	}
}

func TestStatusSecondReportingPersonViolates(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryEntity}
	parties := entityParties(
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
		domain.PartyStatusSubmitted,
	)
	parties = append(parties, domain.Party{
		Role:   domain.PartyRoleReportingPerson,
		Status: domain.PartyStatusSubmitted,
	})

	if party.Status(facts, parties).AllComplete {
		t.Fatal("a second reporting person must violate the exactly-one rule")
	}
}

func TestStatusEmptyNeverComplete(t *testing.T) {
	facts := domain.TransactionFacts{BuyerCategory: domain.BuyerCategoryIndividual}
	if party.Status(facts, nil).AllComplete {
		t.Fatal("no parties can never be complete")
	}
}
