package determine_test

import (
	"errors"
	"rrer/internal/determine"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
	"testing"
)

func TestSequence(t *testing.T) {
	cases := []struct {
		name  string
		facts domain.TransactionFacts
		want  []determine.Step
	}{
		{
			name:  "no answers yet",
			facts: domain.TransactionFacts{},
			want: []determine.Step{
				determine.StepProperty, determine.StepFinancing,
				determine.StepBuyerType, determine.StepResult,
			},
		},
		{
			name:  "vacant land adds intent step",
			facts: domain.TransactionFacts{PropertyType: domain.PropertyTypeVacantLand},
			want: []determine.Step{
				determine.StepProperty, determine.StepIntentToBuild,
				determine.StepFinancing, determine.StepBuyerType, determine.StepResult,
			},
		},
		{
			name: "regulated lender adds screening step",
			facts: domain.TransactionFacts{
				PropertyType:  domain.PropertyTypeResidential,
				FinancingType: domain.FinancingTypeRegulatedLender,
			},
			want: []determine.Step{
				determine.StepProperty, determine.StepFinancing, determine.StepLenderAML,
				determine.StepBuyerType, determine.StepResult,
			},
		},
		{
			name: "screened lender ends the questionnaire early",
			facts: domain.TransactionFacts{
				PropertyType:      domain.PropertyTypeResidential,
				FinancingType:     domain.FinancingTypeRegulatedLender,
				LenderAMLScreened: true,
			},
			want: []determine.Step{
				determine.StepProperty, determine.StepFinancing, determine.StepLenderAML,
				determine.StepResult,
			},
		},
		{
			name: "resolved trust buyer adds exactly its checklist",
			facts: domain.TransactionFacts{
				PropertyType:  domain.PropertyTypeResidential,
				FinancingType: domain.FinancingTypeCash,
				BuyerCategory: domain.BuyerCategoryTrust,
			},
			want: []determine.Step{
				determine.StepProperty, determine.StepFinancing, determine.StepBuyerType,
				determine.StepChecklistTrust, determine.StepResult,
			},
		},
	}

	for _, tc := range cases {
		got := determine.Sequence(tc.facts)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: step %d: got %s, want %s", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestAdvanceWalksFullQuestionnaire(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:  domain.PropertyTypeResidential,
		FinancingType: domain.FinancingTypeCash,
		BuyerCategory: domain.BuyerCategoryEntity,
	}

	cur := determine.First()
	var out determine.Outcome
	var err error
	for i := 0; i < 10; i++ {
		out, err = determine.Advance(cur, facts)
		if err != nil {
			t.Fatalf("advance from %s: %v", cur, err)
		}
		if out.Done() {
			break
		}
		cur = out.Next
	}

	if !out.Done() {
		t.Fatal("questionnaire never finished")
	}
	if out.Next != determine.StepResult {
		t.Errorf("terminal outcome step: got %s, want %s", out.Next, determine.StepResult)
	}
	if out.Result.Verdict != domain.VerdictReportable {
		t.Errorf("cash entity purchase with no claims: got %s, want %s", out.Result.Verdict, domain.VerdictReportable)
	}
	if len(out.Result.Reasons) != 0 {
		t.Errorf("reportable result must carry no reasons, got %v", out.Result.Reasons)
	}
	if out.Result.Method != domain.MethodQuestionnaire {
		t.Errorf("method: got %s, want %s", out.Result.Method, domain.MethodQuestionnaire)
	}
	if out.Result.DeterminedAt.IsZero() {
		t.Error("result must carry a determination timestamp")
	}
}

func TestAdvanceSpousalClaimYieldsExempt(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeCash,
		BuyerCategory:     domain.BuyerCategoryIndividual,
		ClaimedExemptions: []domain.ReasonCode{domain.ReasonTransferBetweenSpouses},
	}

	out, err := determine.Advance(determine.StepChecklistIndividual, facts)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !out.Done() {
		t.Fatal("checklist step must materialize a result")
	}
	if out.Result.Verdict != domain.VerdictExempt {
		t.Fatalf("verdict: got %s, want %s", out.Result.Verdict, domain.VerdictExempt)
	}
	if len(out.Result.Reasons) != 1 ||
		out.Result.Reasons[0].Code != domain.ReasonTransferBetweenSpouses ||
		out.Result.Reasons[0].Category != domain.BuyerCategoryIndividual {
		t.Errorf("reasons: got %v, want single spousal-transfer reason", out.Result.Reasons)
	}
	if !out.Result.Consistent() {
		t.Error("result violates the reasons/verdict invariant")
	}
}

func TestAdvanceLenderExit(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeRegulatedLender,
		LenderAMLScreened: true,
	}

	out, err := determine.Advance(determine.StepLenderAML, facts)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !out.Done() {
		t.Fatal("screened lender must exit to a result")
	}
	if out.Result.Verdict != domain.VerdictExempt {
		t.Fatalf("verdict: got %s, want %s", out.Result.Verdict, domain.VerdictExempt)
	}
	if out.Result.Method != domain.MethodLenderExit {
		t.Errorf("method: got %s, want %s", out.Result.Method, domain.MethodLenderExit)
	}

	found := false
	for _, r := range out.Result.Reasons {
		if r.Code == domain.ReasonRegulatedLenderFinancing {
			found = true
			// buyer type unanswered: the lender reason defaults to the individual list
			if r.Category != domain.BuyerCategoryIndividual {
				t.Errorf("lender reason category: got %s, want %s", r.Category, domain.BuyerCategoryIndividual)
			}
		}
	}
	if !found {
		t.Errorf("lender exit must carry the lender reason, got %v", out.Result.Reasons)
	}
}

func TestAdvanceLenderExitKeepsResolvedCategory(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeRegulatedLender,
		LenderAMLScreened: true,
		BuyerCategory:     domain.BuyerCategoryTrust,
	}

	out, err := determine.Advance(determine.StepLenderAML, facts)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(out.Result.Reasons) == 0 || out.Result.Reasons[len(out.Result.Reasons)-1].Category != domain.BuyerCategoryTrust {
		t.Errorf("lender reason must keep the resolved category, got %v", out.Result.Reasons)
	}
}

func TestAdvanceUnscreenedLenderContinues(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:  domain.PropertyTypeResidential,
		FinancingType: domain.FinancingTypeRegulatedLender,
	}

	out, err := determine.Advance(determine.StepLenderAML, facts)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.Done() {
		t.Fatal("unscreened lender must not exit early")
	}
	if out.Next != determine.StepBuyerType {
		t.Errorf("next: got %s, want %s", out.Next, determine.StepBuyerType)
	}
}

func TestAdvanceMissingFacts(t *testing.T) {
	cases := []struct {
		name    string
		step    determine.Step
		facts   domain.TransactionFacts
		missing string
	}{
		{
			name:    "property unanswered",
			step:    determine.StepProperty,
			facts:   domain.TransactionFacts{},
			missing: "propertyType",
		},
		{
			name:    "financing unanswered",
			step:    determine.StepFinancing,
			facts:   domain.TransactionFacts{PropertyType: domain.PropertyTypeResidential},
			missing: "financingType",
		},
		{
			name: "buyer type unanswered",
			step: determine.StepBuyerType,
			facts: domain.TransactionFacts{
				PropertyType:  domain.PropertyTypeResidential,
				FinancingType: domain.FinancingTypeCash,
			},
			missing: "buyerCategory",
		},
	}

	for _, tc := range cases {
		_, err := determine.Advance(tc.step, tc.facts)
		if !errors.Is(err, serrors.ErrIncompleteFacts) {
			t.Fatalf("%s: expected incomplete-facts error, got %v", tc.name, err)
		}

		var mf *serrors.MissingFacts
		if !errors.As(err, &mf) {
			t.Fatalf("%s: expected MissingFacts carrier", tc.name)
		}
		if len(mf.Facts) != 1 || mf.Facts[0] != tc.missing {
			t.Errorf("%s: missing facts %v, want [%s]", tc.name, mf.Facts, tc.missing)
		}
	}
}

func TestAdvanceRejectsInapplicableSteps(t *testing.T) {
	cases := []struct {
		name  string
		step  determine.Step
		facts domain.TransactionFacts
	}{
		{
			name:  "intent step without vacant land",
			step:  determine.StepIntentToBuild,
			facts: domain.TransactionFacts{PropertyType: domain.PropertyTypeResidential},
		},
		{
			name:  "lender step without regulated lender",
			step:  determine.StepLenderAML,
			facts: domain.TransactionFacts{FinancingType: domain.FinancingTypeCash},
		},
		{
			name: "entity checklist for a trust buyer",
			step: determine.StepChecklistEntity,
			facts: domain.TransactionFacts{
				PropertyType:  domain.PropertyTypeResidential,
				FinancingType: domain.FinancingTypeCash,
				BuyerCategory: domain.BuyerCategoryTrust,
			},
		},
		{
			name:  "advancing past the result",
			step:  determine.StepResult,
			facts: domain.TransactionFacts{},
		},
	}

	for _, tc := range cases {
		_, err := determine.Advance(tc.step, tc.facts)
		if !errors.Is(err, serrors.ErrInvalidTransition) {
			t.Errorf("%s: expected invalid-transition error, got %v", tc.name, err)
		}
	}
}

func TestAdvanceUnknownEnumValues(t *testing.T) {
	_, err := determine.Advance(determine.StepProperty, domain.TransactionFacts{PropertyType: "CASTLE"})
	if !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var fe serrors.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors carrier, got %v", err)
	}
	if len(fe) != 1 || fe[0].Field != "propertyType" {
		t.Errorf("field errors: got %v, want propertyType", fe)
	}
}

func TestStepsAfter(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:  domain.PropertyTypeResidential,
		FinancingType: domain.FinancingTypeCash,
		BuyerCategory: domain.BuyerCategoryEntity,
	}

	after := determine.StepsAfter(determine.StepFinancing, facts)
	want := []determine.Step{determine.StepBuyerType, determine.StepChecklistEntity, determine.StepResult}
	if len(after) != len(want) {
		t.Fatalf("got %v, want %v", after, want)
	}
	for i := range want {
		if after[i] != want[i] {
			t.Errorf("step %d: got %s, want %s", i, after[i], want[i])
		}
	}

	if got := determine.StepsAfter(determine.StepResult, facts); len(got) != 0 {
		t.Errorf("nothing comes after the result, got %v", got)
	}
}

func TestClearAfter(t *testing.T) {
	facts := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeRegulatedLender,
		LenderAMLScreened: true,
		BuyerCategory:     domain.BuyerCategoryEntity,
		ClaimedExemptions: []domain.ReasonCode{domain.ReasonPubliclyTradedEntity},
	}

	cleared := determine.ClearAfter(determine.StepProperty, facts)
	if cleared.PropertyType != domain.PropertyTypeResidential {
		t.Error("the changed step's own answer must survive")
	}
	if cleared.FinancingType != "" || cleared.LenderAMLScreened {
		t.Error("financing answers must be cleared")
	}
	if cleared.BuyerCategory != domain.BuyerCategoryUnset {
		t.Error("buyer category must be cleared")
	}
	if cleared.ClaimedExemptions != nil {
		t.Error("claims must be cleared")
	}
}

func TestClearAfterFinancingChangeDropsScreening(t *testing.T) {
	// the user changed financing to cash: the AML step leaves the sequence,
	// but its stale answer must not survive
	facts := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeCash,
		LenderAMLScreened: true,
		BuyerCategory:     domain.BuyerCategoryEntity,
	}

	cleared := determine.ClearAfter(determine.StepFinancing, facts)
	if cleared.FinancingType != domain.FinancingTypeCash {
		t.Error("the new financing answer must survive")
	}
	if cleared.LenderAMLScreened {
		t.Error("stale screening answer must be cleared")
	}
	if cleared.BuyerCategory != domain.BuyerCategoryUnset {
		t.Error("buyer category must be cleared")
	}
}

func TestFirstChanged(t *testing.T) {
	base := domain.TransactionFacts{
		PropertyType:      domain.PropertyTypeResidential,
		FinancingType:     domain.FinancingTypeCash,
		BuyerCategory:     domain.BuyerCategoryEntity,
		ClaimedExemptions: []domain.ReasonCode{domain.ReasonPubliclyTradedEntity},
	}

	cases := []struct {
		name    string
		mutate  func(domain.TransactionFacts) domain.TransactionFacts
		want    determine.Step
		changed bool
	}{
		{
			name: "property change wins over later edits",
			mutate: func(f domain.TransactionFacts) domain.TransactionFacts {
				f.PropertyType = domain.PropertyTypeVacantLand
				f.BuyerCategory = domain.BuyerCategoryTrust
				return f
			},
			want:    determine.StepProperty,
			changed: true,
		},
		{
			name: "financing change",
			mutate: func(f domain.TransactionFacts) domain.TransactionFacts {
				f.FinancingType = domain.FinancingTypePrivateLender
				return f
			},
			want:    determine.StepFinancing,
			changed: true,
		},
		{
			name: "buyer category change",
			mutate: func(f domain.TransactionFacts) domain.TransactionFacts {
				f.BuyerCategory = domain.BuyerCategoryIndividual
				return f
			},
			want:    determine.StepBuyerType,
			changed: true,
		},
		{
			name: "claim change maps to the category checklist",
			mutate: func(f domain.TransactionFacts) domain.TransactionFacts {
				f.ClaimedExemptions = nil
				return f
			},
			want:    determine.StepChecklistEntity,
			changed: true,
		},
		{
			name: "price-only edit does not touch the questionnaire",
			mutate: func(f domain.TransactionFacts) domain.TransactionFacts {
				f.PurchasePriceCents = 42
				return f
			},
			changed: false,
		},
		{
			name:    "identical snapshots",
			mutate:  func(f domain.TransactionFacts) domain.TransactionFacts { return f },
			changed: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			step, changed := determine.FirstChanged(base, tc.mutate(base))
			if changed != tc.changed {
				t.Fatalf("changed: got %v, want %v", changed, tc.changed)
			}
			if changed && step != tc.want {
				t.Errorf("step: got %s, want %s", step, tc.want)
			}
		})
	}
}
