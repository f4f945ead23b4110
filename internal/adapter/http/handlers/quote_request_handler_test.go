package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mtr_backend/internal/adapter/http/handlers/mocks"
	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteRequestUseCase, *mocks.MockIReconciliationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
	scanner := mocks.NewMockIReconciliationUseCase(ctrl)
	h := NewQuoteRequestHandler(uc, scanner)

	r := gin.New()
	r.GET("/v1/quote-requests/unconverted", h.ListUnconverted)
	r.POST("/v1/quote-requests/:family", h.SubmitQuoteRequest)
	r.GET("/v1/quote-requests/:family/:id", h.GetQuoteRequest)
	return r, uc, scanner
}

const compressionBody = `{
	"owner_id": "user-1",
	"compression": {"d": 2, "de": 20, "di": 16, "lo": 80, "nb_spires": 10, "quantite": 500, "matiere": "acier inox"}
}`

func TestQuoteRequestHandler_SubmitQuoteRequest(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newQuoteRequestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/compression", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown family", func(t *testing.T) {
		r, uc, _ := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitReceipt{}, usecase.ErrInvalidFamily)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/piston", bytes.NewBufferString(compressionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc, _ := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.SubmitQuoteRequestCommand) (usecase.SubmitReceipt, error) {
				if cmd.Family != entities.FamilyCompression {
					t.Errorf("expected family from URL, got %s", cmd.Family)
				}
				if cmd.Spec.Compression == nil {
					t.Error("expected compression spec resolved from payload")
				}
				return usecase.SubmitReceipt{ID: "id-1", Number: "DDV2500001"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/compression", bytes.NewBufferString(compressionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["numero"] != "DDV2500001" {
			t.Fatalf("expected numero in receipt, got %v", body)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		r, uc, _ := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitReceipt{}, usecase.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/compression", bytes.NewBufferString(compressionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestQuoteRequestHandler_GetQuoteRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc, _ := newQuoteRequestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), entities.FamilyTorsion, "missing").Return(entities.QuoteRequest{}, usecase.ErrQuoteRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/torsion/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc, _ := newQuoteRequestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), entities.FamilyTorsion, "id-1").Return(entities.QuoteRequest{ID: "id-1", Family: entities.FamilyTorsion, Number: "DDV2500009"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/torsion/id-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteRequestHandler_ListUnconverted(t *testing.T) {
	t.Run("invalid limit", func(t *testing.T) {
		r, _, _ := newQuoteRequestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/unconverted?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("plain number list", func(t *testing.T) {
		r, _, scanner := newQuoteRequestRouter(t)
		scanner.EXPECT().FindUnconverted(gomock.Any(), "DDV25", 10).Return([]usecase.UnconvertedRequest{
			{Number: "DDV2500001", Family: entities.FamilyCompression},
			{Number: "DDV2500002", Family: entities.FamilyGrid},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/unconverted?q=DDV25&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var numbers []string
		if err := json.Unmarshal(w.Body.Bytes(), &numbers); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(numbers) != 2 || numbers[0] != "DDV2500001" {
			t.Fatalf("unexpected numbers: %v", numbers)
		}
	})

	t.Run("with family rows", func(t *testing.T) {
		r, _, scanner := newQuoteRequestRouter(t)
		scanner.EXPECT().FindUnconverted(gomock.Any(), "", 0).Return([]usecase.UnconvertedRequest{
			{Number: "DDV2500001", Family: entities.FamilyCompression},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/unconverted?with_family=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var rows []map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(rows) != 1 || rows[0]["family"] != "compression" {
			t.Fatalf("unexpected rows: %v", rows)
		}
	})

	t.Run("empty result stays a json array", func(t *testing.T) {
		r, _, scanner := newQuoteRequestRouter(t)
		scanner.EXPECT().FindUnconverted(gomock.Any(), "", 0).Return([]usecase.UnconvertedRequest{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/unconverted", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("scan failure", func(t *testing.T) {
		r, _, scanner := newQuoteRequestRouter(t)
		scanner.EXPECT().FindUnconverted(gomock.Any(), "", 0).Return(nil, errors.Join(usecase.ErrPartialScan, errors.New("table offline")))

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/unconverted", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
