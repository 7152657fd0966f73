package handlers

import (
	"net/http"

	"github.com/agencybooks/ledger_engine/internal/apperrors"
	portssvc "github.com/agencybooks/ledger_engine/internal/core/ports/services"
	"github.com/agencybooks/ledger_engine/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LedgerHandler serves the reconstructed ledger views.
type LedgerHandler struct {
	ledgerSvc portssvc.LedgerReaderSvc
}

// NewLedgerHandler creates a handler backed by the given service.
func NewLedgerHandler(ledgerSvc portssvc.LedgerReaderSvc) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// GetSummary godoc
// @Summary Get the ledger summary
// @Description Returns total balance and current-month income/expense figures
// @Tags ledger
// @Produce json
// @Param agency_id query string false "Agency scope (UUID)"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Router /ledger/summary [get]
func (h *LedgerHandler) GetSummary(c *gin.Context) {
	agencyID, ok := agencyIDParam(c)
	if !ok {
		return
	}
	view, err := h.ledgerSvc.GetLedgerView(c.Request.Context(), agencyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(view.Summary))
}

// GetTransactions godoc
// @Summary Get the transaction feed
// @Description Returns the display-ordered transaction feed with running balances
// @Tags ledger
// @Produce json
// @Param agency_id query string false "Agency scope (UUID)"
// @Success 200 {array} dto.TransactionResponse
// @Router /ledger/transactions [get]
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	agencyID, ok := agencyIDParam(c)
	if !ok {
		return
	}
	view, err := h.ledgerSvc.GetLedgerView(c.Request.Context(), agencyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(view.Transactions))
}

// GetBalances godoc
// @Summary Get per-account balances
// @Description Returns signed balances for every active account
// @Tags ledger
// @Produce json
// @Param agency_id query string false "Agency scope (UUID)"
// @Success 200 {array} dto.AccountBalanceResponse
// @Router /ledger/balances [get]
func (h *LedgerHandler) GetBalances(c *gin.Context) {
	agencyID, ok := agencyIDParam(c)
	if !ok {
		return
	}
	view, err := h.ledgerSvc.GetLedgerView(c.Request.Context(), agencyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponses(view.Balances))
}

// ExportCSV godoc
// @Summary Download the transaction feed as CSV
// @Tags ledger
// @Produce text/csv
// @Param agency_id query string false "Agency scope (UUID)"
// @Success 200 {string} string
// @Router /ledger/export [get]
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	agencyID, ok := agencyIDParam(c)
	if !ok {
		return
	}
	filename, data, err := h.ledgerSvc.ExportCSV(c.Request.Context(), agencyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// agencyIDParam reads and validates the optional agency_id query parameter.
// Returns (nil, true) when absent. Writes the error response itself on
// validation failure.
func agencyIDParam(c *gin.Context) (*string, bool) {
	raw := c.Query("agency_id")
	if raw == "" {
		return nil, true
	}
	if err := validate.Var(raw, "uuid"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrValidation.Error() + ": agency_id must be a UUID"})
		return nil, false
	}
	return &raw, true
}

// respondServiceError maps service failures to HTTP responses. Snapshot fetch
// failures are upstream-store problems, reported as 502 with a retry hint;
// recovery is user-initiated.
func respondServiceError(c *gin.Context, err error) {
	if apperrors.IsFetchFailure(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
