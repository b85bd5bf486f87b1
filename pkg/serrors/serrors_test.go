package serrors_test

import (
	"errors"
	"rrer/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrIncompleteFacts,
		serrors.ErrInvalidTransition,
		serrors.ErrValidation,
		serrors.ErrToken,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "report %d not found", 42)
	require.Equal(t, "report 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting report")
	require.Equal(t, "getting report: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestIncompleteFactsCarrier(t *testing.T) {
	e := serrors.IncompleteFacts("financingType", "buyerCategory")

	require.ErrorIs(t, e, serrors.ErrIncompleteFacts)

	var mf *serrors.MissingFacts
	require.ErrorAs(t, e, &mf)
	require.Equal(t, []string{"financingType", "buyerCategory"}, mf.Facts)
	require.Contains(t, mf.Error(), "financingType")
}

func TestInvalidTransitionCarrier(t *testing.T) {
	e := serrors.InvalidTransition("FILED", "DRAFT")

	require.ErrorIs(t, e, serrors.ErrInvalidTransition)

	var tr *serrors.Transition
	require.ErrorAs(t, e, &tr)
	require.Equal(t, "FILED", tr.From)
	require.Equal(t, "DRAFT", tr.To)
}

func TestValidationCarrier(t *testing.T) {
	e := serrors.Validation(
		serrors.FieldError{Field: "ein", Rule: "format", Message: "must match NN-NNNNNNN"},
		serrors.FieldError{Field: "legalName", Rule: "required", Message: "is required"},
	)

	require.ErrorIs(t, e, serrors.ErrValidation)

	var fe serrors.FieldErrors
	require.ErrorAs(t, e, &fe)
	require.Len(t, fe, 2)
	require.Equal(t, "ein", fe[0].Field)
	require.Contains(t, fe.Error(), "legalName: is required")
}

func TestTokenCarrier(t *testing.T) {
	e := serrors.Token(serrors.TokenExpired)

	require.ErrorIs(t, e, serrors.ErrToken)

	var tf *serrors.TokenFault
	require.ErrorAs(t, e, &tf)
	require.Equal(t, serrors.TokenExpired, tf.Reason)
}
