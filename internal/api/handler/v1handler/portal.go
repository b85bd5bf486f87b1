package v1handler

import (
	"net/http"

	"rrer/pkg/domain"

	"github.com/go-chi/chi/v5"
)

// InviteParty mints a one-time collection link for the party. The token in
// the response is shown exactly once; the link row stores no secret.
func (h *Handler) InviteParty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "partyID")
	if !ok {
		return
	}

	inv, err := h.deps.Service.InviteParty(r.Context(), domain.PartyID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, inv)
}

// PortalParty loads the party behind a presented link token.
func (h *Handler) PortalParty(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Service.PortalParty(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SavePortalDraft saves partial party data without consuming the link.
func (h *Handler) SavePortalDraft(w http.ResponseWriter, r *http.Request) {
	var data domain.PartyData
	if !decode(w, r, &data) {
		return
	}

	p, err := h.deps.Service.SavePortalDraft(r.Context(), chi.URLParam(r, "token"), data)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SubmitParty validates and records the party's final submission, consuming
// the link exactly once.
func (h *Handler) SubmitParty(w http.ResponseWriter, r *http.Request) {
	var data domain.PartyData
	if !decode(w, r, &data) {
		return
	}

	p, err := h.deps.Service.SubmitParty(r.Context(), chi.URLParam(r, "token"), data)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, p)
}
