package party_test

import (
	"errors"
	"testing"

	"rrer/internal/party"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

func fieldNames(t *testing.T, err error) map[string]bool {
	t.Helper()

	var fields serrors.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}

	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		names[f.Field] = true
	}

	return names
}

func TestValidateData(t *testing.T) {
	t.Run("complete beneficial owner passes", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleBeneficialOwner, domain.PartyData{
			LegalName:          "Jordan Alvarez",
			DateOfBirth:        "1984-02-11",
			Address:            "12 Harbor Ln",
			SSNLast4:           "4821",
			CitizenshipCountry: "US",
			OwnershipPercent:   40,
		})
		if err != nil {
			t.Fatalf("expected valid submission, got %v", err)
		}
	})

	t.Run("beneficial owner missing everything", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleBeneficialOwner, domain.PartyData{})
		if !errors.Is(err, serrors.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}

		names := fieldNames(t, err)
		for _, want := range []string{"legalName", "dateOfBirth", "address", "ssnLast4", "citizenshipCountry", "ownershipPercent"} {
			if !names[want] {
				t.Errorf("missing failure for %s, got %v", want, names)
			}
		}
	})

	t.Run("transferee needs an SSN or an EIN", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleTransferee, domain.PartyData{
			LegalName: "Oakview Holdings LLC",
			Address:   "300 Main St",
		})
		if !fieldNames(t, err)["ssnLast4"] {
			t.Fatalf("expected identifier failure, got %v", err)
		}

		err = party.ValidateData(domain.PartyRoleTransferee, domain.PartyData{
			LegalName: "Oakview Holdings LLC",
			Address:   "300 Main St",
			EIN:       "12-3456789",
		})
		if err != nil {
			t.Fatalf("EIN alone should satisfy the identifier requirement, got %v", err)
		}
	})

	t.Run("reporting person needs an email", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleReportingPerson, domain.PartyData{
			LegalName: "Shoreline Title LLC",
			Address:   "1 Title Way",
		})
		if !fieldNames(t, err)["email"] {
			t.Fatalf("expected email failure, got %v", err)
		}
	})

	t.Run("format failures are collected", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleTransferor, domain.PartyData{
			LegalName:   "Pat Chen",
			Address:     "9 Elm St",
			SSNLast4:    "12a4",
			EIN:         "123456789",
			Email:       "not-an-email",
			DateOfBirth: "02/11/1984",
		})

		names := fieldNames(t, err)
		for _, want := range []string{"ssnLast4", "ein", "email", "dateOfBirth"} {
			if !names[want] {
				t.Errorf("missing format failure for %s, got %v", want, names)
			}
		}
	})

	t.Run("ownership percent bounds", func(t *testing.T) {
		err := party.ValidateData(domain.PartyRoleBeneficialOwner, domain.PartyData{
			LegalName:          "Jordan Alvarez",
			DateOfBirth:        "1984-02-11",
			Address:            "12 Harbor Ln",
			SSNLast4:           "4821",
			CitizenshipCountry: "US",
			OwnershipPercent:   120,
		})
		if !fieldNames(t, err)["ownershipPercent"] {
			t.Fatalf("expected ownership failure, got %v", err)
		}
	})
}
