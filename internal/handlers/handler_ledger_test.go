package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agencybooks/ledger_engine/internal/apperrors"
	"github.com/agencybooks/ledger_engine/internal/core/domain"
	portssvc "github.com/agencybooks/ledger_engine/internal/core/ports/services"
	"github.com/agencybooks/ledger_engine/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerReaderSvc struct {
	mock.Mock
}

var _ portssvc.LedgerReaderSvc = (*MockLedgerReaderSvc)(nil)

func (m *MockLedgerReaderSvc) GetLedgerView(ctx context.Context, agencyID *string) (*domain.LedgerView, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}

func (m *MockLedgerReaderSvc) ExportCSV(ctx context.Context, agencyID *string) (string, []byte, error) {
	args := m.Called(ctx, agencyID)
	var data []byte
	if args.Get(1) != nil {
		data = args.Get(1).([]byte)
	}
	return args.String(0), data, args.Error(2)
}

func setupRouter(svc portssvc.LedgerReaderSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewLedgerHandler(svc)
	group := router.Group("/api/v1/ledger")
	group.GET("/summary", handler.GetSummary)
	group.GET("/transactions", handler.GetTransactions)
	group.GET("/balances", handler.GetBalances)
	group.GET("/export", handler.ExportCSV)
	return router
}

func sampleView() *domain.LedgerView {
	return &domain.LedgerView{
		Balances: []domain.AccountBalance{
			{AccountID: "a1", AccountName: "Cash", AccountType: domain.Asset, Balance: decimal.NewFromInt(150)},
		},
		Transactions: []domain.Transaction{
			{
				LineID:      "l1",
				AccountID:   "a1",
				Date:        "2025-06-10",
				Description: "June invoice",
				Category:    domain.CategoryRevenue,
				Type:        domain.Credit,
				Amount:      decimal.NewFromInt(150),
				Balance:     decimal.NewFromInt(150),
				Reference:   "INV-9",
			},
		},
		Summary: domain.LedgerSummary{
			TotalBalance:    decimal.NewFromInt(150),
			MonthlyIncome:   decimal.NewFromInt(150),
			MonthlyExpenses: decimal.Zero,
			NetProfit:       decimal.NewFromInt(150),
		},
	}
}

func TestGetSummary(t *testing.T) {
	t.Run("returns summary JSON", func(t *testing.T) {
		svc := new(MockLedgerReaderSvc)
		svc.On("GetLedgerView", mock.Anything, (*string)(nil)).Return(sampleView(), nil)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.JSONEq(t, `"150"`, string(body["totalBalance"]))
		assert.JSONEq(t, `"150"`, string(body["netProfit"]))
		svc.AssertExpectations(t)
	})

	t.Run("passes a valid agency_id through", func(t *testing.T) {
		agency := "0f8fad5b-d9cb-469f-a165-70867728950e"
		svc := new(MockLedgerReaderSvc)
		svc.On("GetLedgerView", mock.Anything, &agency).Return(sampleView(), nil)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary?agency_id="+agency, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("rejects a malformed agency_id", func(t *testing.T) {
		svc := new(MockLedgerReaderSvc)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary?agency_id=not-a-uuid", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "agency_id must be a UUID")
		svc.AssertNotCalled(t, "GetLedgerView", mock.Anything, mock.Anything)
	})

	t.Run("maps snapshot fetch failures to 502 with retry hint", func(t *testing.T) {
		svc := new(MockLedgerReaderSvc)
		fetchErr := fmt.Errorf("%w: connection refused", apperrors.ErrEntryFetch)
		svc.On("GetLedgerView", mock.Anything, (*string)(nil)).Return(nil, fetchErr)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadGateway, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["retryable"])
		assert.Contains(t, body["error"], "connection refused")
	})
}

func TestGetTransactions(t *testing.T) {
	svc := new(MockLedgerReaderSvc)
	svc.On("GetLedgerView", mock.Anything, (*string)(nil)).Return(sampleView(), nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/transactions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "l1", rows[0]["lineID"])
	assert.Equal(t, "CREDIT", rows[0]["type"])
	assert.Equal(t, "Revenue", rows[0]["category"])
	assert.Equal(t, "INV-9", rows[0]["reference"])
}

func TestGetBalances(t *testing.T) {
	svc := new(MockLedgerReaderSvc)
	svc.On("GetLedgerView", mock.Anything, (*string)(nil)).Return(sampleView(), nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/balances", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Cash", rows[0]["accountName"])
	assert.Equal(t, "ASSET", rows[0]["accountType"])
}

func TestExportCSV(t *testing.T) {
	t.Run("serves the file as an attachment", func(t *testing.T) {
		svc := new(MockLedgerReaderSvc)
		csv := []byte("Date,Reference,Description,Category,Type,Amount,Balance\n")
		svc.On("ExportCSV", mock.Anything, (*string)(nil)).Return("ledger_export_2025-06-15.csv", csv, nil)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/export", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="ledger_export_2025-06-15.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, string(csv), w.Body.String())
	})

	t.Run("maps fetch failures to 502", func(t *testing.T) {
		svc := new(MockLedgerReaderSvc)
		fetchErr := fmt.Errorf("%w: timeout", apperrors.ErrLineFetch)
		svc.On("ExportCSV", mock.Anything, (*string)(nil)).Return("", nil, fetchErr)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/export", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadGateway, w.Code)
	})
}
