package ledger

import (
	"time"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// LoanTerms carries the debt attributes of a loan account.
type LoanTerms struct {
	InterestRate      float64 // annual percentage, e.g. 12.0 for 12%
	MonthlyPayment    float64
	OriginalPrincipal float64
	StartDate         time.Time
}

// CreateAccount creates an account in the active budget. The account is
// created with a zero balance; a non-zero opening balance is applied by
// posting a synthetic opening-balance transaction through the normal
// posting path, so the transaction log stays the single source of truth
// for the balance.
func (l *Ledger) CreateAccount(name string, accountType models.AccountType, openingBalance float64, terms *LoanTerms) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	switch accountType {
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeCredit, models.AccountTypeLoan:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown account type")
	}

	account := models.Account{
		ID:        uuid.New(),
		Name:      name,
		Type:      accountType,
		Balance:   0,
		IsActive:  true,
		CreatedAt: l.now(),
	}
	if accountType == models.AccountTypeLoan && terms != nil {
		account.InterestRate = terms.InterestRate
		account.MonthlyPayment = terms.MonthlyPayment
		account.OriginalPrincipal = terms.OriginalPrincipal
		account.LoanStartDate = terms.StartDate
	}

	err := l.mutate(func(s *state) error {
		account.BudgetID = s.activeBudgetID
		s.accounts = append(s.accounts, account)

		if openingBalance != 0 {
			opening := models.Transaction{
				ID:             uuid.New(),
				BudgetID:       s.activeBudgetID,
				AccountID:      account.ID,
				Date:           l.now(),
				Payee:          "Opening Balance",
				Amount:         openingBalance,
				Cleared:        true,
				OpeningBalance: true,
				CreatedAt:      l.now(),
			}
			s.transactions = append(s.transactions, opening)
			applyToBalance(s, account.ID, openingBalance)
			reconcileLoanState(s, account.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := l.Account(account.ID)
	if created == nil {
		return nil, apperrors.ErrInternalServer
	}
	return created, nil
}

// AccountUpdate carries optional field edits for an account. Nil fields
// are left unchanged. Balance, InterestRate, and MonthlyPayment may only
// be edited on credit and loan accounts: the direct balance edit is the
// documented escape hatch for correcting a stated statement balance and
// intentionally bypasses the transaction log.
type AccountUpdate struct {
	Name           *string
	Balance        *float64
	InterestRate   *float64
	MonthlyPayment *float64
}

// UpdateAccount applies field edits to an account in the active budget.
func (l *Ledger) UpdateAccount(accountID string, update AccountUpdate) (*models.Account, error) {
	var updated models.Account
	err := l.mutate(func(s *state) error {
		i := accountIndex(s, accountID)
		if i < 0 {
			return apperrors.ErrAccountNotFound
		}
		account := &s.accounts[i]

		if update.Name != nil {
			if *update.Name == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
			}
			account.Name = *update.Name
		}

		editable := account.Type.IsLiability()
		if update.Balance != nil {
			if !editable {
				return apperrors.ErrBalanceNotEditable
			}
			account.Balance = *update.Balance
			reconcileLoanState(s, account.ID)
		}
		if update.InterestRate != nil {
			if !editable {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate applies to credit and loan accounts only")
			}
			account.InterestRate = *update.InterestRate
		}
		if update.MonthlyPayment != nil {
			if !editable {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly payment applies to credit and loan accounts only")
			}
			account.MonthlyPayment = *update.MonthlyPayment
		}

		updated = *account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAccount removes an account and cascades to its transactions.
// Deleting a missing account is a no-op.
func (l *Ledger) DeleteAccount(accountID string) error {
	return l.mutate(func(s *state) error {
		i := accountIndex(s, accountID)
		if i < 0 {
			return nil
		}
		s.accounts = append(s.accounts[:i:i], s.accounts[i+1:]...)

		transactions := s.transactions[:0:0]
		for _, t := range s.transactions {
			if t.AccountID != accountID {
				transactions = append(transactions, t)
			}
		}
		s.transactions = transactions
		return nil
	})
}

// Accounts returns all accounts in the active budget.
func (l *Ledger) Accounts() []models.Account {
	var accounts []models.Account
	l.read(func(s *state) {
		for _, a := range s.accounts {
			if a.BudgetID == s.activeBudgetID {
				accounts = append(accounts, a)
			}
		}
	})
	return accounts
}

// Account returns the account with the given id, or nil if it does not exist.
func (l *Ledger) Account(accountID string) *models.Account {
	var found *models.Account
	l.read(func(s *state) {
		if i := accountIndex(s, accountID); i >= 0 {
			account := s.accounts[i]
			found = &account
		}
	})
	return found
}

func accountIndex(s *state, accountID string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == accountID {
			return i
		}
	}
	return -1
}

// activeAccountIndex resolves an account id within the active budget.
// Accounts belonging to other budgets are treated as not found, so a
// posting can never land on an account its budget does not own.
func activeAccountIndex(s *state, accountID string) int {
	i := accountIndex(s, accountID)
	if i >= 0 && s.accounts[i].BudgetID != s.activeBudgetID {
		return -1
	}
	return i
}

// applyToBalance adds a signed transaction amount to an account's balance.
// Missing accounts are tolerated; the transaction then simply has no
// balance effect.
func applyToBalance(s *state, accountID string, amount float64) {
	if i := accountIndex(s, accountID); i >= 0 {
		s.accounts[i].Balance += amount
	}
}

// reconcileLoanState recomputes the active/closed state of a loan account
// from the sign of its balance. A loan driven to zero or above is closed;
// a closed loan driven back below zero is reopened. The transition is
// derived, never cached, so it stays consistent under arbitrary edit and
// delete sequences.
func reconcileLoanState(s *state, accountID string) {
	i := accountIndex(s, accountID)
	if i < 0 || s.accounts[i].Type != models.AccountTypeLoan {
		return
	}
	account := &s.accounts[i]
	switch {
	case account.Balance >= 0 && account.IsActive:
		account.IsActive = false
	case account.Balance < 0 && !account.IsActive:
		account.IsActive = true
	}
}
