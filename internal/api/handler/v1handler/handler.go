// Package v1handler implements the v1 HTTP API: report lifecycle, the intake
// wizard, party collection (staff and portal sides) and filing commands. It
// is a thin layer over report.Service; every business rule lives below it.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"rrer/internal/report"
	"rrer/pkg/logger"
	"rrer/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 20

// Deps holds the dependencies of the v1 handler.
type Deps struct {
	Service report.Service
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New constructs a v1 handler with its dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/", h.CreateReport)
		r.Get("/", h.ListReports)

		r.Route("/{reportID}", func(r chi.Router) {
			r.Get("/", h.GetReport)
			r.Post("/cancel", h.CancelReport)
			r.Put("/facts", h.UpdateFacts)
			r.Get("/certificate", h.Certificate)

			r.Put("/wizard/field", h.SetWizardField)
			r.Post("/wizard/next", h.AdvanceWizard)
			r.Post("/wizard/previous", h.RetreatWizard)

			r.Post("/filing", h.RequestFiling)
			r.Post("/filing/retry", h.RetryFiling)
			r.Post("/filing/confirm-review", h.ConfirmReviewAndRetry)
		})
	})

	r.Post("/parties/{partyID}/invite", h.InviteParty)

	r.Route("/portal/{token}", func(r chi.Router) {
		r.Get("/", h.PortalParty)
		r.Put("/", h.SavePortalDraft)
		r.Post("/submit", h.SubmitParty)
	})
}

// errorBody is the JSON error envelope. Kind is always set; the structured
// fields are filled per kind so clients never have to parse Message.
type errorBody struct {
	Kind    string `json:"error"`
	Message string `json:"message,omitempty"`

	Fields       serrors.FieldErrors `json:"fields,omitempty"`
	MissingFacts []string            `json:"missingFacts,omitempty"`
	Transition   *transitionBody     `json:"transition,omitempty"`
	TokenReason  string              `json:"tokenReason,omitempty"`
}

type transitionBody struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// writeError maps a service error to an HTTP status and envelope. Unknown
// errors are logged and reduced to a bare 500 so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Message: err.Error()}

	var status int
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		status, body.Kind = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, serrors.ErrBadRequest):
		status, body.Kind = http.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, serrors.ErrValidation):
		status, body.Kind = http.StatusUnprocessableEntity, "VALIDATION"
		var fields serrors.FieldErrors
		if errors.As(err, &fields) {
			body.Fields = fields
		}
	case errors.Is(err, serrors.ErrIncompleteFacts):
		status, body.Kind = http.StatusUnprocessableEntity, "INCOMPLETE_FACTS"
		var missing *serrors.MissingFacts
		if errors.As(err, &missing) {
			body.MissingFacts = missing.Facts
		}
	case errors.Is(err, serrors.ErrInvalidTransition):
		status, body.Kind = http.StatusConflict, "INVALID_TRANSITION"
		var tr *serrors.Transition
		if errors.As(err, &tr) {
			body.Transition = &transitionBody{From: tr.From, To: tr.To}
		}
	case errors.Is(err, serrors.ErrConflict):
		status, body.Kind = http.StatusConflict, "CONFLICT"
	case errors.Is(err, serrors.ErrToken):
		var fault *serrors.TokenFault
		if errors.As(err, &fault) {
			body.TokenReason = fault.Reason
		}
		// a malformed token is indistinguishable from a missing link
		if body.TokenReason == serrors.TokenMalformed {
			status, body.Kind = http.StatusNotFound, "NOT_FOUND"
		} else {
			status, body.Kind = http.StatusGone, "TOKEN"
		}
	case errors.Is(err, serrors.ErrUnauthorized):
		status, body.Kind = http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, serrors.ErrForbidden):
		status, body.Kind = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, serrors.ErrUnavailable):
		status, body.Kind = http.StatusServiceUnavailable, "UNAVAILABLE"
	default:
		logger.Error(r.Context(), "unhandled error in v1 handler", zap.Error(err))
		status, body.Kind, body.Message = http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	writeJSON(w, status, body)
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode parses the request body into v. A false return means the error
// response was already written.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return false
	}

	return true
}

// pathUUID parses the named chi URL parameter as a UUID. A false return means
// the error response was already written.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name))

		return uuid.Nil, false
	}

	return id, true
}
