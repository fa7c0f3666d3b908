package send

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"react-golang/internal/email"
	"react-golang/internal/service/report"
	"react-golang/internal/storage"
)

type MockParteProvider struct {
	mock.Mock
}

func (m *MockParteProvider) GetParteByID(ctx context.Context, id int64) (*storage.Parte, error) {
	args := m.Called(ctx, id)
	if parte, ok := args.Get(0).(*storage.Parte); ok {
		return parte, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, params email.Params) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/partes/"+id+"/email", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSendParteEmail_Success(t *testing.T) {
	mockProvider := new(MockParteProvider)
	mockProvider.On("GetParteByID", mock.Anything, int64(7)).
		Return(&storage.Parte{
			ID:               7,
			NumeroParte:      "00007/24",
			NombreObra:       "Reforma nave",
			NombreTrabajador: "José García",
			EmailContacto:    "jose@example.com",
		}, nil)

	mockNotifier := new(MockNotifier)
	// The notifier must receive the complete document, never a placeholder.
	mockNotifier.On("Send", mock.Anything, mock.MatchedBy(func(p email.Params) bool {
		return p.ToEmail == "jose@example.com" &&
			p.ToName == "José García" &&
			strings.HasPrefix(p.PDFData, "data:application/pdf;base64,") &&
			strings.Contains(p.Message, "Reforma nave")
	})).Return(nil)

	handler := SendParteEmail(slog.Default(), mockProvider, report.NewReportService(report.NewHTTPFetcher()), mockNotifier)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithID("7"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "enviado", resp.Status)

	mockNotifier.AssertExpectations(t)
}

func TestSendParteEmail_SinEmailContacto(t *testing.T) {
	mockProvider := new(MockParteProvider)
	mockProvider.On("GetParteByID", mock.Anything, int64(7)).
		Return(&storage.Parte{ID: 7, NumeroParte: "00007/24"}, nil)

	mockNotifier := new(MockNotifier)

	handler := SendParteEmail(slog.Default(), mockProvider, report.NewReportService(report.NewHTTPFetcher()), mockNotifier)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithID("7"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockNotifier.AssertNotCalled(t, "Send")
}

func TestSendParteEmail_ParteNoEncontrado(t *testing.T) {
	mockProvider := new(MockParteProvider)
	mockProvider.On("GetParteByID", mock.Anything, int64(99)).
		Return(nil, storage.ErrNotFound)

	mockNotifier := new(MockNotifier)

	handler := SendParteEmail(slog.Default(), mockProvider, report.NewReportService(report.NewHTTPFetcher()), mockNotifier)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithID("99"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockNotifier.AssertNotCalled(t, "Send")
}
