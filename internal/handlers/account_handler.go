package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/loan"
	"zeroledger/internal/models"
)

// AccountHandler handles account requests, including loan payoff
// projections derived from account fields.
type AccountHandler struct {
	ledger *ledger.Ledger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(l *ledger.Ledger) *AccountHandler {
	return &AccountHandler{ledger: l}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Type           string  `json:"type" binding:"required,account_type"`
	OpeningBalance float64 `json:"opening_balance"`

	// Loan terms, honored for type "loan" only.
	InterestRate      float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	MonthlyPayment    float64 `json:"monthly_payment" binding:"omitempty,gte=0"`
	OriginalPrincipal float64 `json:"original_principal" binding:"omitempty,gte=0"`
	LoanStartDate     string  `json:"loan_start_date"`
}

// UpdateAccountRequest represents the request payload for editing an account.
type UpdateAccountRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Balance        *float64 `json:"balance"`
	InterestRate   *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	MonthlyPayment *float64 `json:"monthly_payment" binding:"omitempty,gte=0"`
}

// CreateAccount creates an account in the active budget. A non-zero
// opening balance is seeded through an opening-balance transaction.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var terms *ledger.LoanTerms
	if models.AccountType(req.Type) == models.AccountTypeLoan {
		startDate, err := parseDate(req.LoanStartDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		terms = &ledger.LoanTerms{
			InterestRate:      req.InterestRate,
			MonthlyPayment:    req.MonthlyPayment,
			OriginalPrincipal: req.OriginalPrincipal,
			StartDate:         startDate,
		}
	}

	account, err := h.ledger.CreateAccount(req.Name, models.AccountType(req.Type), req.OpeningBalance, terms)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts lists the active budget's accounts.
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": h.ledger.Accounts()})
}

// GetAccount returns a single account.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account := h.ledger.Account(c.Param("id"))
	if account == nil {
		respondWithError(c, apperrors.ErrAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount applies field edits to an account.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.ledger.UpdateAccount(c.Param("id"), ledger.AccountUpdate{
		Name:           req.Name,
		Balance:        req.Balance,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount removes an account and its transactions.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.ledger.DeleteAccount(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLoanProjection renders the payoff outlook of a loan account: the
// current-track projection from the live balance, the as-planned original
// schedule, and progress against the original principal.
func (h *AccountHandler) GetLoanProjection(c *gin.Context) {
	account := h.ledger.Account(c.Param("id"))
	if account == nil {
		respondWithError(c, apperrors.ErrAccountNotFound)
		return
	}
	if account.Type != models.AccountTypeLoan {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Projections are available for loan accounts only"))
		return
	}

	current, err := loan.Project(account.Balance, account.InterestRate, account.MonthlyPayment, account.LoanStartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := gin.H{
		"current":          current,
		"payoff_date":      loan.FormatPayoffDate(current.PayoffDate),
		"time_remaining":   loan.FormatTimeRemaining(current.MonthsRemaining),
		"progress_percent": loan.ProgressPercent(account.Balance, account.OriginalPrincipal),
		"minimum_payment":  loan.MinimumInterestPayment(account.Balance, account.InterestRate),
	}

	if account.OriginalPrincipal > 0 {
		original, err := loan.OriginalSchedule(account.OriginalPrincipal, account.InterestRate, account.MonthlyPayment, account.LoanStartDate)
		if err == nil {
			response["original_schedule"] = original
		}
	}

	c.JSON(http.StatusOK, response)
}
