package wizard

import (
	"regexp"
	"strconv"
	"time"

	"rrer/pkg/serrors"
)

// FieldKind selects the validation applied to a collection form field.
type FieldKind int

const (
	// KindText is free text; required means non-empty.
	KindText FieldKind = iota
	// KindSSNLast4 is the last four digits of an SSN.
	KindSSNLast4
	// KindEIN is an employer identification number, NN-NNNNNNN.
	KindEIN
	// KindEmail is an email address.
	KindEmail
	// KindDate is a calendar date, YYYY-MM-DD.
	KindDate
	// KindMoney is a positive decimal amount.
	KindMoney
	// KindCheckbox is an attestation box that must be ticked.
	KindCheckbox
)

// FieldSpec declares one field a collection step gathers.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
}

var (
	ssnLast4Re = regexp.MustCompile(`^\d{4}$`)
	einRe      = regexp.MustCompile(`^\d{2}-\d{7}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// checkField validates a single value against its spec. A nil return means
// the value passes. Optional fields are only validated when non-empty.
func checkField(spec FieldSpec, value string) *serrors.FieldError {
	if value == "" {
		if spec.Required {
			return &serrors.FieldError{Field: spec.Name, Rule: "required", Message: "is required"}
		}

		return nil
	}

	switch spec.Kind {
	case KindSSNLast4:
		if !ssnLast4Re.MatchString(value) {
			return &serrors.FieldError{Field: spec.Name, Rule: "format", Message: "must be exactly 4 digits"}
		}
	case KindEIN:
		if !einRe.MatchString(value) {
			return &serrors.FieldError{Field: spec.Name, Rule: "format", Message: "must match NN-NNNNNNN"}
		}
	case KindEmail:
		if !emailRe.MatchString(value) {
			return &serrors.FieldError{Field: spec.Name, Rule: "format", Message: "must be a valid email address"}
		}
	case KindDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return &serrors.FieldError{Field: spec.Name, Rule: "format", Message: "must be a date formatted YYYY-MM-DD"}
		}
	case KindMoney:
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil || amount <= 0 {
			return &serrors.FieldError{Field: spec.Name, Rule: "positive", Message: "must be a positive amount"}
		}
	case KindCheckbox:
		if value != "true" {
			return &serrors.FieldError{Field: spec.Name, Rule: "attested", Message: "must be accepted"}
		}
	case KindText:
		// non-empty is all a text field needs
	}

	return nil
}

// checkStep validates every declared field of a step against the saved
// values. All failures are collected so the user sees the full list at once.
func checkStep(specs []FieldSpec, values map[string]string) error {
	var fields serrors.FieldErrors
	for _, spec := range specs {
		if fe := checkField(spec, values[spec.Name]); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) > 0 {
		return serrors.Validation(fields...)
	}

	return nil
}
