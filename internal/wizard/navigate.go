package wizard

import (
	"rrer/internal/determine"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
)

// CanProceed reports whether the current step allows forward movement. In the
// determination phase the questionnaire validates its own facts; in the
// collection phase every declared field of the step must be present and
// individually valid. A nil return means the way forward is open.
func CanProceed(s State, facts domain.TransactionFacts) error {
	switch s.Phase {
	case domain.WizardPhaseDetermination:
		_, err := determine.Advance(determine.Step(s.Step), facts)

		return err
	case domain.WizardPhaseCollection:
		return checkStep(fieldsFor(s.Step, facts), s.Data[s.Step])
	default:
		return serrors.With(serrors.ErrInvalidTransition, "wizard already finished")
	}
}

// Next is what GoToNext produces: the new state, plus the determination
// result when the questionnaire materialized one on this move.
type Next struct {
	State  State
	Result *domain.DeterminationResult
}

// GoToNext advances one step. Forward movement is refused unless CanProceed
// allows it; crossing out of the determination phase depends on the verdict:
// exempt short-circuits the whole collection phase, reportable enters it at
// its first step. Finishing the summary step ends the wizard.
func GoToNext(s State, facts domain.TransactionFacts, det *domain.DeterminationResult) (Next, error) {
	switch s.Phase {
	case domain.WizardPhaseDetermination:
		return nextInDetermination(s, facts, det)
	case domain.WizardPhaseCollection:
		return nextInCollection(s, facts)
	default:
		return Next{}, serrors.With(serrors.ErrInvalidTransition, "wizard already finished")
	}
}

func nextInDetermination(s State, facts domain.TransactionFacts, det *domain.DeterminationResult) (Next, error) {
	// the result step is a display screen: leaving it switches phase
	if determine.Step(s.Step) == determine.StepResult {
		if det == nil {
			return Next{}, serrors.With(serrors.ErrIncompleteFacts, "no determination has been made yet")
		}
		if det.Exempt() {
			s.Phase = domain.WizardPhaseDone
			s.Step = ""

			return Next{State: s}, nil
		}

		s.Phase = domain.WizardPhaseCollection
		s.Step = CollectionSteps(facts)[0]

		return Next{State: s}, nil
	}

	out, err := determine.Advance(determine.Step(s.Step), facts)
	if err != nil {
		return Next{}, err
	}

	s.Step = string(out.Next)

	return Next{State: s, Result: out.Result}, nil
}

func nextInCollection(s State, facts domain.TransactionFacts) (Next, error) {
	if err := checkStep(fieldsFor(s.Step, facts), s.Data[s.Step]); err != nil {
		return Next{}, err
	}

	steps := CollectionSteps(facts)
	idx := indexOf(steps, s.Step)
	if idx < 0 {
		// a fact change shrank the step set from under the saved position
		s.Step = steps[0]

		return Next{State: s}, nil
	}
	if idx == len(steps)-1 {
		s.Phase = domain.WizardPhaseDone
		s.Step = ""

		return Next{State: s}, nil
	}

	s.Step = steps[idx+1]

	return Next{State: s}, nil
}

// GoToPrevious moves one step back. Backward movement is always permitted and
// never revalidates; it only fails at the very first step, where there is
// nothing before.
func GoToPrevious(s State, facts domain.TransactionFacts, det *domain.DeterminationResult) (State, error) {
	switch s.Phase {
	case domain.WizardPhaseDetermination:
		seq := determine.Sequence(facts)
		idx := indexOf(stepsOf(seq), s.Step)
		if idx <= 0 {
			return State{}, serrors.With(serrors.ErrInvalidTransition, "already at the first step")
		}
		s.Step = string(seq[idx-1])

		return s, nil

	case domain.WizardPhaseCollection:
		steps := CollectionSteps(facts)
		idx := indexOf(steps, s.Step)
		if idx <= 0 {
			// stepping back out of collection reopens the determination result
			s.Phase = domain.WizardPhaseDetermination
			s.Step = string(determine.StepResult)

			return s, nil
		}
		s.Step = steps[idx-1]

		return s, nil

	default:
		// reopening a finished wizard lands on the last screen that was shown
		if det != nil && det.Exempt() {
			s.Phase = domain.WizardPhaseDetermination
			s.Step = string(determine.StepResult)
		} else {
			s.Phase = domain.WizardPhaseCollection
			s.Step = StepSummary
		}

		return s, nil
	}
}

// Progress reports completed and applicable step counts for the current
// facts. The applicable set is the determination sequence plus, for
// reportable (or still undetermined) reports, the collection steps; an exempt
// verdict shrinks the flow to the questionnaire alone.
func Progress(s State, facts domain.TransactionFacts, det *domain.DeterminationResult) (completed, applicable int) {
	detSeq := stepsOf(determine.Sequence(facts))
	applicable = len(detSeq)

	collecting := det == nil || !det.Exempt()
	var colSteps []string
	if collecting {
		colSteps = CollectionSteps(facts)
		applicable += len(colSteps)
	}

	switch s.Phase {
	case domain.WizardPhaseDetermination:
		if idx := indexOf(detSeq, s.Step); idx >= 0 {
			completed = idx
		}
	case domain.WizardPhaseCollection:
		completed = len(detSeq)
		if idx := indexOf(colSteps, s.Step); idx >= 0 {
			completed += idx
		}
	default:
		completed = applicable
	}

	return completed, applicable
}

func stepsOf(seq []determine.Step) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = string(s)
	}

	return out
}

func indexOf(steps []string, step string) int {
	for i, s := range steps {
		if s == step {
			return i
		}
	}

	return -1
}
