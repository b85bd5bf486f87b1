package report

import (
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

// transitions is the report lifecycle table: every move not listed here is
// illegal and must be refused, never coerced. Draft re-entry from the two
// post-determination states is the fact-edit path: editing an answer
// invalidates the verdict and sends the report back through the
// questionnaire.
var transitions = map[domain.ReportStatus][]domain.ReportStatus{
	domain.ReportStatusDraft: {
		domain.ReportStatusDeterminationComplete,
		domain.ReportStatusExempt,
		domain.ReportStatusCancelled,
	},
	domain.ReportStatusDeterminationComplete: {
		domain.ReportStatusCollecting,
		domain.ReportStatusDraft,
		domain.ReportStatusCancelled,
	},
	domain.ReportStatusCollecting: {
		domain.ReportStatusReadyToFile,
		domain.ReportStatusDraft,
		domain.ReportStatusCancelled,
	},
	domain.ReportStatusReadyToFile: {
		domain.ReportStatusFiled,
		domain.ReportStatusCancelled,
	},
}

// CanTransition reports whether the lifecycle allows moving from one status
// to the other.
func CanTransition(from, to domain.ReportStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// CheckTransition refuses illegal lifecycle moves with ErrInvalidTransition.
func CheckTransition(from, to domain.ReportStatus) error {
	if !CanTransition(from, to) {
		return serrors.InvalidTransition(string(from), string(to))
	}

	return nil
}
