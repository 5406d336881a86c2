package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
)

// BudgetHandler handles budget workspace requests.
type BudgetHandler struct {
	ledger *ledger.Ledger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(l *ledger.Ledger) *BudgetHandler {
	return &BudgetHandler{ledger: l}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Name              string `json:"name" binding:"required,min=1,max=100"`
	Currency          string `json:"currency" binding:"omitempty,iso4217"`
	CurrencyPlacement string `json:"currency_placement" binding:"omitempty,currency_placement"`
	NumberFormat      string `json:"number_format" binding:"omitempty,max=20"`
	DateFormat        string `json:"date_format" binding:"omitempty,max=20"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Name              string `json:"name" binding:"omitempty,min=1,max=100"`
	Currency          string `json:"currency" binding:"omitempty,iso4217"`
	CurrencyPlacement string `json:"currency_placement" binding:"omitempty,currency_placement"`
	NumberFormat      string `json:"number_format" binding:"omitempty,max=20"`
	DateFormat        string `json:"date_format" binding:"omitempty,max=20"`
}

// CreateBudget creates a budget and makes it the active workspace.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledger.CreateBudget(req.Name, ledger.BudgetSettings{
		Currency:          req.Currency,
		CurrencyPlacement: models.CurrencyPlacement(req.CurrencyPlacement),
		NumberFormat:      req.NumberFormat,
		DateFormat:        req.DateFormat,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets lists all budgets and identifies the active one.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"budgets":          h.ledger.Budgets(),
		"active_budget_id": h.ledger.ActiveBudget().ID,
		"current_month":    h.ledger.CurrentMonth(),
	})
}

// SwitchBudget makes the given budget the active workspace.
func (h *BudgetHandler) SwitchBudget(c *gin.Context) {
	if err := h.ledger.SwitchBudget(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_budget_id": c.Param("id")})
}

// UpdateBudget updates a budget's name and display settings.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledger.UpdateBudget(c.Param("id"), req.Name, ledger.BudgetSettings{
		Currency:          req.Currency,
		CurrencyPlacement: models.CurrencyPlacement(req.CurrencyPlacement),
		NumberFormat:      req.NumberFormat,
		DateFormat:        req.DateFormat,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget deletes a budget and everything scoped to it.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.ledger.DeleteBudget(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetCurrentMonth navigates the budget view to the given month.
func (h *BudgetHandler) SetCurrentMonth(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.ledger.SetCurrentMonth(month); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_month": month})
}
