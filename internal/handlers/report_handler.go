package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/loan"
)

// ReportHandler serves derived reporting queries and loan what-if
// simulations.
type ReportHandler struct {
	ledger *ledger.Ledger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(l *ledger.Ledger) *ReportHandler {
	return &ReportHandler{ledger: l}
}

// SimulatePayoffRequest represents the payload for a loan payoff
// simulation with optional extra payments.
type SimulatePayoffRequest struct {
	Balance        float64 `json:"balance" binding:"required"`
	AnnualRate     float64 `json:"annual_rate" binding:"gte=0"`
	MonthlyPayment float64 `json:"monthly_payment" binding:"required,gt=0"`
	ExtraMonthly   float64 `json:"extra_monthly" binding:"omitempty,gte=0"`
	OneTimeExtra   float64 `json:"one_time_extra" binding:"omitempty,gte=0"`
	StartDate      string  `json:"start_date"`
}

// GetNetWorth reports the active budget's net worth: every account
// balance plus tracked asset values.
func (h *ReportHandler) GetNetWorth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"net_worth": h.ledger.NetWorth()})
}

// GetSpending reports spending totals by category for a month.
func (h *ReportHandler) GetSpending(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month":    month,
		"spending": h.ledger.SpendingByCategory(month),
	})
}

// SimulatePayoff projects a loan payoff under what-if terms without
// touching any stored account.
func (h *ReportHandler) SimulatePayoff(c *gin.Context) {
	var req SimulatePayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if startDate.IsZero() {
		startDate = timeNow()
	}

	projection, err := loan.Simulate(req.Balance, req.AnnualRate, req.MonthlyPayment, req.ExtraMonthly, req.OneTimeExtra, startDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projection":     projection,
		"payoff_date":    loan.FormatPayoffDate(projection.PayoffDate),
		"time_remaining": loan.FormatTimeRemaining(projection.MonthsRemaining),
	})
}
