package certificate_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rrer/internal/certificate"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"

	"github.com/google/uuid"
)

func TestRender(t *testing.T) {
	report := domain.Report{
		ID:         domain.ReportID(uuid.New()),
		FileNumber: "CLOSE-7001",
		Status:     domain.ReportStatusExempt,
	}
	result := domain.DeterminationResult{
		Verdict: domain.VerdictExempt,
		Reasons: []domain.ExemptionReason{
			{
				Code:        domain.ReasonRegulatedLenderFinancing,
				Category:    domain.BuyerCategoryIndividual,
				DisplayText: "Financing extended by a regulated lender with AML screening",
			},
			{
				Code:        domain.ReasonNoConsiderationTransfer,
				Category:    domain.BuyerCategoryIndividual,
				DisplayText: "Transfer for no consideration",
			},
		},
		Method:       domain.MethodQuestionnaire,
		DeterminedAt: time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC),
	}

	text, err := certificate.Render(report, result)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, want := range []string{
		"EXEMPTION CERTIFICATE",
		"CLOSE-7001",
		"NOT REPORTABLE",
		"2026-08-01 14:30:00 UTC",
		"Financing extended by a regulated lender with AML screening",
		"Transfer for no consideration",
		"grounds:",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("certificate missing %q:\n%s", want, text)
		}
	}
}

func TestRenderSingularReason(t *testing.T) {
	result := domain.DeterminationResult{
		Verdict: domain.VerdictExempt,
		Reasons: []domain.ExemptionReason{
			{
				Code:        domain.ReasonGovernmentAuthority,
				Category:    domain.BuyerCategoryEntity,
				DisplayText: "Transferee is a government authority",
			},
		},
		Method:       domain.MethodQuestionnaire,
		DeterminedAt: time.Now(),
	}

	text, err := certificate.Render(domain.Report{FileNumber: "CLOSE-7002"}, result)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(text, "grounds:") {
		t.Fatalf("expected singular ground for one reason:\n%s", text)
	}
	if !strings.Contains(text, "ground:") {
		t.Fatalf("expected ground label:\n%s", text)
	}
}

func TestRenderRefusesReportableVerdict(t *testing.T) {
	result := domain.DeterminationResult{
		Verdict:      domain.VerdictReportable,
		Method:       domain.MethodQuestionnaire,
		DeterminedAt: time.Now(),
	}

	_, err := certificate.Render(domain.Report{}, result)
	if !errors.Is(err, serrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRenderRefusesInconsistentResult(t *testing.T) {
	result := domain.DeterminationResult{
		Verdict:      domain.VerdictExempt,
		Method:       domain.MethodQuestionnaire,
		DeterminedAt: time.Now(),
	}

	_, err := certificate.Render(domain.Report{}, result)
	if err == nil {
		t.Fatal("expected error for exempt result without reasons")
	}
}
