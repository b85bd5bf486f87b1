package party

import (
	"regexp"
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

var (
	ssnLast4Re = regexp.MustCompile(`^\d{4}$`)
	einRe      = regexp.MustCompile(`^\d{2}-\d{7}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateData checks a party's submitted data against the requirements of its
// role. Every failure is collected so the submitter sees the full list at
// once; a nil return means the submission is acceptable.
func ValidateData(role domain.PartyRole, data domain.PartyData) error {
	var fields serrors.FieldErrors

	require := func(name, value string) {
		if value == "" {
			fields = append(fields, serrors.FieldError{
				Field: name, Rule: "required", Message: "is required",
			})
		}
	}

	require("legalName", data.LegalName)

	switch role {
	case domain.PartyRoleBeneficialOwner:
		require("dateOfBirth", data.DateOfBirth)
		require("address", data.Address)
		require("ssnLast4", data.SSNLast4)
		require("citizenshipCountry", data.CitizenshipCountry)
		if data.OwnershipPercent <= 0 || data.OwnershipPercent > 100 {
			fields = append(fields, serrors.FieldError{
				Field: "ownershipPercent", Rule: "range",
				Message: "must be between 0 and 100",
			})
		}

	case domain.PartyRoleTransferee:
		require("address", data.Address)
		if data.SSNLast4 == "" && data.EIN == "" {
			fields = append(fields, serrors.FieldError{
				Field: "ssnLast4", Rule: "required",
				Message: "an SSN last-4 or an EIN is required",
			})
		}

	case domain.PartyRoleReportingPerson:
		require("address", data.Address)
		require("email", data.Email)

	case domain.PartyRoleTransferor,
		domain.PartyRoleTrustee,
		domain.PartyRoleSettlor,
		domain.PartyRoleBeneficiary:
		require("address", data.Address)
	}

	// format checks apply to whatever was provided, required or not
	if data.SSNLast4 != "" && !ssnLast4Re.MatchString(data.SSNLast4) {
		fields = append(fields, serrors.FieldError{
			Field: "ssnLast4", Rule: "format", Message: "must be exactly 4 digits",
		})
	}
	if data.EIN != "" && !einRe.MatchString(data.EIN) {
		fields = append(fields, serrors.FieldError{
			Field: "ein", Rule: "format", Message: "must match NN-NNNNNNN",
		})
	}
	if data.Email != "" && !emailRe.MatchString(data.Email) {
		fields = append(fields, serrors.FieldError{
			Field: "email", Rule: "format", Message: "must be a valid email address",
		})
	}
	if data.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", data.DateOfBirth); err != nil {
			fields = append(fields, serrors.FieldError{
				Field: "dateOfBirth", Rule: "format", Message: "must be a date formatted YYYY-MM-DD",
			})
		}
	}

	if len(fields) > 0 {
		return serrors.Validation(fields...)
	}

	return nil
}
