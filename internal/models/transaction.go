package models

import "time"

// Transaction is a single ledger entry against an account. Amount is
// signed: negative = outflow, positive = inflow. CategoryID may be empty,
// in which case the money is either unclassified spending or inflow
// treated as ready to assign. Posting, editing, and deleting transactions
// is the only path by which account balances change.
type Transaction struct {
	ID             string    `json:"id"`
	BudgetID       string    `json:"budget_id"`
	AccountID      string    `json:"account_id"`
	Date           time.Time `json:"date"`
	Payee          string    `json:"payee"`
	CategoryID     string    `json:"category_id,omitempty"`
	Amount         float64   `json:"amount"`
	Memo           string    `json:"memo,omitempty"`
	Cleared        bool      `json:"cleared"`
	OpeningBalance bool      `json:"opening_balance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
