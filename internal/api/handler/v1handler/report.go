package v1handler

import (
	"context"
	"net/http"
	"strconv"

	"rrer/pkg/domain"
)

// CreateReportRequest is the body of POST /reports.
type CreateReportRequest struct {
	// FileNumber is the closing file this report is opened for.
	FileNumber string `json:"fileNumber"`
}

// WizardFieldRequest is the body of PUT /reports/{id}/wizard/field.
type WizardFieldRequest struct {
	Step  string `json:"step"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// ReportList is the response of GET /reports.
type ReportList struct {
	Items []domain.Report `json:"items"`
	// NextCursor is empty when this is the last page.
	NextCursor string `json:"nextCursor,omitempty"`
}

// CertificateResponse carries a rendered exemption certificate.
type CertificateResponse struct {
	Certificate string `json:"certificate"`
}

// CreateReport opens a new draft report.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if !decode(w, r, &req) {
		return
	}

	rep, err := h.deps.Service.Create(r.Context(), req.FileNumber)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// GetReport returns the aggregate view of one report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	view, err := h.deps.Service.Get(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ListReports returns a page of reports, optionally filtered by status.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err == nil && parsed > 0 {
			limit = uint(parsed)
		}
	}

	items, nextCursor, err := h.deps.Service.List(r.Context(),
		domain.ReportStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ReportList{Items: items, NextCursor: nextCursor})
}

// CancelReport abandons the report.
func (h *Handler) CancelReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	if err := h.deps.Service.Cancel(r.Context(), domain.ReportID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateFacts replaces the transaction facts wholesale.
func (h *Handler) UpdateFacts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	var facts domain.TransactionFacts
	if !decode(w, r, &facts) {
		return
	}

	rep, err := h.deps.Service.UpdateFacts(r.Context(), domain.ReportID(id), facts)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// SetWizardField records one form field value.
func (h *Handler) SetWizardField(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	var req WizardFieldRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.deps.Service.SetWizardField(r.Context(),
		domain.ReportID(id), req.Step, req.Field, req.Value); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdvanceWizard moves the wizard one step forward.
func (h *Handler) AdvanceWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	view, err := h.deps.Service.Advance(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RetreatWizard moves the wizard one step back.
func (h *Handler) RetreatWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	state, err := h.deps.Service.Retreat(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Certificate renders the exemption certificate of an exempt report.
func (h *Handler) Certificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	text, err := h.deps.Service.Certificate(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, CertificateResponse{Certificate: text})
}

// RequestFiling queues the report's first filing submission.
func (h *Handler) RequestFiling(w http.ResponseWriter, r *http.Request) {
	h.filingCommand(w, r, h.deps.Service.RequestFiling, http.StatusAccepted)
}

// RetryFiling re-queues a rejected submission.
func (h *Handler) RetryFiling(w http.ResponseWriter, r *http.Request) {
	h.filingCommand(w, r, h.deps.Service.RetryFiling, http.StatusAccepted)
}

// ConfirmReviewAndRetry is the operator-confirmed retry out of needs-review.
func (h *Handler) ConfirmReviewAndRetry(w http.ResponseWriter, r *http.Request) {
	h.filingCommand(w, r, h.deps.Service.ConfirmReviewAndRetry, http.StatusAccepted)
}

// filingCommand factors the shared shape of the three filing endpoints.
func (h *Handler) filingCommand(w http.ResponseWriter,
	r *http.Request,
	cmd func(ctx context.Context, id domain.ReportID) (*domain.FilingSubmission, error),
	status int) {
	id, ok := pathUUID(w, r, "reportID")
	if !ok {
		return
	}

	sub, err := cmd(r.Context(), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, status, sub)
}
