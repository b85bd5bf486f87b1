package serrors

import (
	"fmt"
	"strings"
)

// Workflow kinds cover the reporting lifecycle semantics: determinations run
// on incomplete answers, state machines refusing a move, payload validation
// and collection link tokens. Handlers match on the kind; the structured
// carriers below travel as the wrapped cause and are recovered with errors.As.
var (
	// ErrIncompleteFacts indicates a determination was attempted before every
	// applicable question was answered.
	ErrIncompleteFacts = NewKind("INCOMPLETE_FACTS")
	// ErrInvalidTransition indicates a lifecycle move the state machine does
	// not allow from the current status.
	ErrInvalidTransition = NewKind("INVALID_TRANSITION")
	// ErrValidation indicates one or more field-level validation failures.
	ErrValidation = NewKind("VALIDATION")
	// ErrToken indicates a collection link token that cannot be accepted.
	ErrToken = NewKind("TOKEN")
)

// MissingFacts carries the names of the answers a determination still needs.
type MissingFacts struct {
	Facts []string
}

func (e *MissingFacts) Error() string {
	return "unanswered: " + strings.Join(e.Facts, ", ")
}

// IncompleteFacts builds an ErrIncompleteFacts error listing the unanswered
// fact names.
func IncompleteFacts(facts ...string) *Error {
	return Wrap(ErrIncompleteFacts, &MissingFacts{Facts: facts}, "determination incomplete")
}

// Transition carries the refused lifecycle move.
type Transition struct {
	From string
	To   string
}

func (e *Transition) Error() string {
	return fmt.Sprintf("cannot move from %s to %s", e.From, e.To)
}

// InvalidTransition builds an ErrInvalidTransition error for the refused move.
func InvalidTransition(from, to string) *Error {
	return Wrap(ErrInvalidTransition, &Transition{From: from, To: to}, "invalid transition")
}

// FieldError is a single field-level validation failure. Rule names the
// violated constraint (e.g. "required", "format") so clients can highlight
// the exact input.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors aggregates every failure found in one payload so the caller
// sees all of them at once instead of fixing them one by one.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return strings.Join(parts, "; ")
}

// Validation builds an ErrValidation error carrying the field failures.
func Validation(fields ...FieldError) *Error {
	return Wrap(ErrValidation, FieldErrors(fields), "validation failed")
}

// Token refusal reasons.
const (
	TokenMalformed = "MALFORMED"
	TokenExpired   = "EXPIRED"
	TokenUsed      = "USED"
	TokenRevoked   = "REVOKED"
)

// TokenFault carries why a collection link token was refused.
type TokenFault struct {
	Reason string
}

func (e *TokenFault) Error() string {
	return "token " + strings.ToLower(e.Reason)
}

// Token builds an ErrToken error with the given refusal reason.
func Token(reason string) *Error {
	return Wrap(ErrToken, &TokenFault{Reason: reason}, "link not accepted")
}
