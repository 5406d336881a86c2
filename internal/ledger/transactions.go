package ledger

import (
	"sort"
	"time"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// TransactionInput carries the caller-supplied fields of a transaction.
// Amount is signed: negative = outflow, positive = inflow. CategoryID may
// be empty for unclassified spending or inflow to assign.
type TransactionInput struct {
	AccountID  string
	Date       time.Time
	Payee      string
	CategoryID string
	Amount     float64
	Memo       string
	Cleared    bool
}

// CreateTransaction posts a transaction and adds its signed amount to the
// target account's balance in the same mutation, so the balance always
// equals the sum of the account's transactions. The account must belong
// to the active budget. Posting against a loan account also reconciles
// its active/closed state.
func (l *Ledger) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	if input.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	if input.Date.IsZero() {
		input.Date = l.now()
	}

	transaction := models.Transaction{
		ID:         uuid.New(),
		AccountID:  input.AccountID,
		Date:       input.Date,
		Payee:      input.Payee,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Memo:       input.Memo,
		Cleared:    input.Cleared,
		CreatedAt:  l.now(),
	}

	err := l.mutate(func(s *state) error {
		if activeAccountIndex(s, input.AccountID) < 0 {
			return apperrors.ErrAccountNotFound
		}
		transaction.BudgetID = s.activeBudgetID
		s.transactions = append(s.transactions, transaction)
		applyToBalance(s, input.AccountID, input.Amount)
		reconcileLoanState(s, input.AccountID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction edits a transaction. The old amount is first reversed
// against the old account, then the new amount is applied against the
// (possibly different) target account; both accounts' loan states are
// reconciled in the same mutation.
func (l *Ledger) UpdateTransaction(transactionID string, input TransactionInput) (*models.Transaction, error) {
	if input.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	var updated models.Transaction
	err := l.mutate(func(s *state) error {
		i := transactionIndex(s, transactionID)
		if i < 0 {
			return apperrors.ErrTransactionNotFound
		}
		if activeAccountIndex(s, input.AccountID) < 0 {
			return apperrors.ErrAccountNotFound
		}

		old := s.transactions[i]
		applyToBalance(s, old.AccountID, -old.Amount)

		next := old
		next.AccountID = input.AccountID
		if !input.Date.IsZero() {
			next.Date = input.Date
		}
		next.Payee = input.Payee
		next.CategoryID = input.CategoryID
		next.Amount = input.Amount
		next.Memo = input.Memo
		next.Cleared = input.Cleared
		s.transactions[i] = next

		applyToBalance(s, next.AccountID, next.Amount)
		reconcileLoanState(s, old.AccountID)
		if next.AccountID != old.AccountID {
			reconcileLoanState(s, next.AccountID)
		}

		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetTransactionCleared flips a transaction's cleared flag without
// touching its amount.
func (l *Ledger) SetTransactionCleared(transactionID string, cleared bool) (*models.Transaction, error) {
	var updated models.Transaction
	err := l.mutate(func(s *state) error {
		i := transactionIndex(s, transactionID)
		if i < 0 {
			return apperrors.ErrTransactionNotFound
		}
		s.transactions[i].Cleared = cleared
		updated = s.transactions[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its amount against
// the account balance, reconciling the account's loan state. Deleting a
// missing transaction is a no-op.
func (l *Ledger) DeleteTransaction(transactionID string) error {
	return l.mutate(func(s *state) error {
		i := transactionIndex(s, transactionID)
		if i < 0 {
			return nil
		}
		deleted := s.transactions[i]
		s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
		applyToBalance(s, deleted.AccountID, -deleted.Amount)
		reconcileLoanState(s, deleted.AccountID)
		return nil
	})
}

// Transactions returns all transactions in the active budget, newest first.
func (l *Ledger) Transactions() []models.Transaction {
	var transactions []models.Transaction
	l.read(func(s *state) {
		for _, t := range s.transactions {
			if t.BudgetID == s.activeBudgetID {
				transactions = append(transactions, t)
			}
		}
	})
	sortTransactionsByDateDesc(transactions)
	return transactions
}

// AccountTransactions returns an account's transactions, newest first.
func (l *Ledger) AccountTransactions(accountID string) []models.Transaction {
	var transactions []models.Transaction
	l.read(func(s *state) {
		for _, t := range s.transactions {
			if t.AccountID == accountID {
				transactions = append(transactions, t)
			}
		}
	})
	sortTransactionsByDateDesc(transactions)
	return transactions
}

// Transaction returns the transaction with the given id, or nil if it
// does not exist.
func (l *Ledger) Transaction(transactionID string) *models.Transaction {
	var found *models.Transaction
	l.read(func(s *state) {
		if i := transactionIndex(s, transactionID); i >= 0 {
			transaction := s.transactions[i]
			found = &transaction
		}
	})
	return found
}

func transactionIndex(s *state, transactionID string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == transactionID {
			return i
		}
	}
	return -1
}

func sortTransactionsByDateDesc(transactions []models.Transaction) {
	// Stable so that same-day entries keep posting order.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
