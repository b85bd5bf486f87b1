package v1handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rrer/internal/api/handler/v1handler"
	"rrer/internal/report"
	mockreport "rrer/internal/report/mock"
	"rrer/pkg/domain"
	"rrer/pkg/logger"
	"rrer/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestRouter(t *testing.T) (*mockreport.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockreport.NewMockService(ctrl)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		v1handler.New(v1handler.Deps{Service: svc}).Register(r)
	})

	return svc, r
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))

	return out
}

func TestHandler_CreateReport(t *testing.T) {
	svc, router := newTestRouter(t)

	id := domain.ReportID(uuid.New())
	svc.EXPECT().Create(gomock.Any(), "CLOSE-1001").Return(&domain.Report{
		ID: id, FileNumber: "CLOSE-1001", Status: domain.ReportStatusDraft,
	}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/reports",
		v1handler.CreateReportRequest{FileNumber: "CLOSE-1001"})

	require.Equal(t, http.StatusCreated, rec.Code)
	rep := decodeBody[domain.Report](t, rec)
	require.Equal(t, domain.ReportStatusDraft, rep.Status)
	require.Equal(t, "CLOSE-1001", rep.FileNumber)
}

func TestHandler_CreateReport_ValidationMapsTo422(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Create(gomock.Any(), "").Return(nil,
		serrors.Validation(serrors.FieldError{
			Field: "fileNumber", Rule: "required", Message: "file number is required",
		}))

	rec := doJSON(t, router, http.MethodPost, "/v1/reports",
		v1handler.CreateReportRequest{})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "VALIDATION", body["error"])
	require.Len(t, body["fields"], 1)
}

func TestHandler_CreateReport_MalformedBody(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetReport_NotFound(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().Get(gomock.Any(), domain.ReportID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "report not found"))

	rec := doJSON(t, router, http.MethodGet, "/v1/reports/"+id.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "NOT_FOUND", body["error"])
}

func TestHandler_GetReport_BadID(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/reports/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListReports(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().List(gomock.Any(), domain.ReportStatusCollecting, "", uint(5)).
		Return([]domain.Report{
			{ID: domain.ReportID(uuid.New()), Status: domain.ReportStatusCollecting},
		}, "2026-08-01T00:00:00Z", nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/reports?status=COLLECTING&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[v1handler.ReportList](t, rec)
	require.Len(t, list.Items, 1)
	require.Equal(t, "2026-08-01T00:00:00Z", list.NextCursor)
}

func TestHandler_ListReports_DefaultLimit(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().List(gomock.Any(), domain.ReportStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CancelReport_InvalidTransition(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().Cancel(gomock.Any(), domain.ReportID(id)).
		Return(serrors.InvalidTransition(
			string(domain.ReportStatusFiled), string(domain.ReportStatusCancelled)))

	rec := doJSON(t, router, http.MethodPost, "/v1/reports/"+id.String()+"/cancel", nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "INVALID_TRANSITION", body["error"])
	tr, ok := body["transition"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "FILED", tr["from"])
	require.Equal(t, "CANCELLED", tr["to"])
}

func TestHandler_CancelReport(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().Cancel(gomock.Any(), domain.ReportID(id)).Return(nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/reports/"+id.String()+"/cancel", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_AdvanceWizard_IncompleteFacts(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().Advance(gomock.Any(), domain.ReportID(id)).
		Return(nil, serrors.IncompleteFacts("propertyType", "financingType"))

	rec := doJSON(t, router, http.MethodPost, "/v1/reports/"+id.String()+"/wizard/next", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "INCOMPLETE_FACTS", body["error"])
	require.Len(t, body["missingFacts"], 2)
}

func TestHandler_SetWizardField(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().SetWizardField(gomock.Any(),
		domain.ReportID(id), "PROPERTY", "propertyType", "RESIDENTIAL_1_4").Return(nil)

	rec := doJSON(t, router, http.MethodPut, "/v1/reports/"+id.String()+"/wizard/field",
		v1handler.WizardFieldRequest{Step: "PROPERTY", Field: "propertyType", Value: "RESIDENTIAL_1_4"})
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_RequestFiling(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().RequestFiling(gomock.Any(), domain.ReportID(id)).
		Return(&domain.FilingSubmission{
			ReportID: domain.ReportID(id),
			Status:   domain.FilingStatusQueued,
			Attempts: 1,
		}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/reports/"+id.String()+"/filing", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	sub := decodeBody[domain.FilingSubmission](t, rec)
	require.Equal(t, domain.FilingStatusQueued, sub.Status)
}

func TestHandler_RetryFiling_Conflict(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().RetryFiling(gomock.Any(), domain.ReportID(id)).
		Return(nil, serrors.With(serrors.ErrConflict, "submission changed concurrently"))

	rec := doJSON(t, router, http.MethodPost, "/v1/reports/"+id.String()+"/filing/retry", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_InviteParty(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	expires := time.Now().Add(168 * time.Hour).UTC()
	svc.EXPECT().InviteParty(gomock.Any(), domain.PartyID(id)).
		Return(&report.Invitation{Token: "signed.jwt.token", ExpiresAt: expires}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/parties/"+id.String()+"/invite", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	inv := decodeBody[report.Invitation](t, rec)
	require.Equal(t, "signed.jwt.token", inv.Token)
}

func TestHandler_PortalParty_UsedLink(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().PortalParty(gomock.Any(), "used-token").
		Return(nil, serrors.Token(serrors.TokenUsed))

	rec := doJSON(t, router, http.MethodGet, "/v1/portal/used-token", nil)

	require.Equal(t, http.StatusGone, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "TOKEN", body["error"])
	require.Equal(t, serrors.TokenUsed, body["tokenReason"])
}

func TestHandler_PortalParty_MalformedLinkLooksMissing(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().PortalParty(gomock.Any(), "garbage").
		Return(nil, serrors.Token(serrors.TokenMalformed))

	rec := doJSON(t, router, http.MethodGet, "/v1/portal/garbage", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SubmitParty(t *testing.T) {
	svc, router := newTestRouter(t)

	data := domain.PartyData{LegalName: "Pat Quill", Address: "1 Main St", SSNLast4: "4821"}
	svc.EXPECT().SubmitParty(gomock.Any(), "live-token", data).
		Return(&domain.Party{
			Role:   domain.PartyRoleTransferee,
			Status: domain.PartyStatusSubmitted,
			Data:   data,
		}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/portal/live-token/submit", data)

	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeBody[domain.Party](t, rec)
	require.Equal(t, domain.PartyStatusSubmitted, p.Status)
}

func TestHandler_UnknownErrorMapsTo500(t *testing.T) {
	svc, router := newTestRouter(t)

	id := uuid.New()
	svc.EXPECT().Get(gomock.Any(), domain.ReportID(id)).
		Return(nil, errors.New("pq: connection reset"))

	rec := doJSON(t, router, http.MethodGet, "/v1/reports/"+id.String(), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "INTERNAL", body["error"])
	// internals never leak
	require.NotContains(t, body["message"], "pq:")
}
