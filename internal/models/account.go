package models

import "time"

// AccountType represents the type of account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeLoan     AccountType = "loan"
)

// IsBudget reports whether the account's balance counts as spendable cash.
func (t AccountType) IsBudget() bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

// IsLiability reports whether the account carries debt.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// Account is a financial account within a budget. Balance is signed:
// positive = asset, negative = owed. It is maintained exclusively through
// transaction posting; the loan fields apply to loan accounts only.
type Account struct {
	ID       string      `json:"id"`
	BudgetID string      `json:"budget_id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  float64     `json:"balance"`
	IsActive bool        `json:"is_active"`

	// Loan terms
	InterestRate      float64   `json:"interest_rate,omitempty"`      // annual percentage
	MonthlyPayment    float64   `json:"monthly_payment,omitempty"`
	OriginalPrincipal float64   `json:"original_principal,omitempty"`
	LoanStartDate     time.Time `json:"loan_start_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
