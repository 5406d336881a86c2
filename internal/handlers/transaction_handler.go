package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
	"zeroledger/internal/pagination"
)

// TransactionHandler handles transaction requests.
type TransactionHandler struct {
	ledger *ledger.Ledger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(l *ledger.Ledger) *TransactionHandler {
	return &TransactionHandler{ledger: l}
}

// TransactionRequest represents the payload for creating or editing a
// transaction. Amount is signed: negative = outflow, positive = inflow.
// A pointer so that a zero amount, accepted by the engine, passes the
// required check.
type TransactionRequest struct {
	AccountID  string   `json:"account_id" binding:"required"`
	Date       string   `json:"date"`
	Payee      string   `json:"payee" binding:"required,min=1,max=200"`
	CategoryID string   `json:"category_id"`
	Amount     *float64 `json:"amount" binding:"required"`
	Memo       string   `json:"memo" binding:"omitempty,max=500"`
	Cleared    bool     `json:"cleared"`
}

// ClearedRequest represents the payload for flipping the cleared flag.
type ClearedRequest struct {
	Cleared *bool `json:"cleared" binding:"required"`
}

// listFilter holds optional query filters for listing transactions.
type listFilter struct {
	AccountID  string `form:"account_id"`
	CategoryID string `form:"category_id"`
	Month      string `form:"month" binding:"omitempty,budget_month"`
	Cleared    *bool  `form:"cleared"`
}

func (h *TransactionHandler) input(req TransactionRequest) (ledger.TransactionInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return ledger.TransactionInput{}, err
	}
	return ledger.TransactionInput{
		AccountID:  req.AccountID,
		Date:       date,
		Payee:      req.Payee,
		CategoryID: req.CategoryID,
		Amount:     *req.Amount,
		Memo:       req.Memo,
		Cleared:    req.Cleared,
	}, nil
}

// CreateTransaction posts a transaction against an account.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := h.input(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transaction, err := h.ledger.CreateTransaction(input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions returns a paginated, filtered list of the active
// budget's transactions, newest first.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var filter listFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	transactions := h.ledger.Transactions()
	filtered := transactions[:0:0]
	var month models.Month
	if filter.Month != "" {
		month, _ = models.ParseMonth(filter.Month)
	}
	for _, t := range transactions {
		if filter.AccountID != "" && t.AccountID != filter.AccountID {
			continue
		}
		if filter.CategoryID != "" && t.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Month != "" && !month.Contains(t.Date) {
			continue
		}
		if filter.Cleared != nil && t.Cleared != *filter.Cleared {
			continue
		}
		filtered = append(filtered, t)
	}

	window, total := pagination.Paginate(filtered, page)
	c.JSON(http.StatusOK, pagination.NewPageResponse(window, page.Page, page.PageSize, total))
}

// GetTransaction returns a single transaction.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction := h.ledger.Transaction(c.Param("id"))
	if transaction == nil {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction edits a transaction, rebalancing the affected accounts.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := h.input(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transaction, err := h.ledger.UpdateTransaction(c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// SetCleared flips a transaction's cleared flag.
func (h *TransactionHandler) SetCleared(c *gin.Context) {
	var req ClearedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	transaction, err := h.ledger.SetTransactionCleared(c.Param("id"), *req.Cleared)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledger.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
