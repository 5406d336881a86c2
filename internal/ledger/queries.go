package ledger

import "zeroledger/internal/models"

// Derived queries. All of them are pure functions of the current state:
// they hold the read lock, never mutate, and return neutral zero values
// for ids that do not exist.

// AccountBalance returns an account's balance, or 0 for a missing id.
func (l *Ledger) AccountBalance(accountID string) float64 {
	var balance float64
	l.read(func(s *state) {
		if i := accountIndex(s, accountID); i >= 0 {
			balance = s.accounts[i].Balance
		}
	})
	return balance
}

// CategoryActivity returns the sum of transaction amounts in the active
// budget posted to the category with a date inside the given calendar
// month. Spending is negative, refunds positive.
func (l *Ledger) CategoryActivity(month models.Month, categoryID string) float64 {
	var activity float64
	l.read(func(s *state) {
		activity = categoryActivity(s, month, categoryID)
	})
	return activity
}

func categoryActivity(s *state, month models.Month, categoryID string) float64 {
	var activity float64
	for _, t := range s.transactions {
		if t.BudgetID == s.activeBudgetID && t.CategoryID == categoryID && month.Contains(t.Date) {
			activity += t.Amount
		}
	}
	return activity
}

// CategoryAvailable returns assigned + activity for the month. Each
// month's available is independent; unspent funds do not roll over from
// prior months. Negative means overspent.
func (l *Ledger) CategoryAvailable(month models.Month, categoryID string) float64 {
	var available float64
	l.read(func(s *state) {
		assigned := s.assignments[models.AssignmentKey{
			BudgetID:   s.activeBudgetID,
			Month:      month,
			CategoryID: categoryID,
		}]
		available = assigned + categoryActivity(s, month, categoryID)
	})
	return available
}

// ReadyToAssign returns the cash in the active budget's active checking
// and savings accounts minus everything assigned for the month. Negative
// means the month is over-assigned.
func (l *Ledger) ReadyToAssign(month models.Month) float64 {
	var ready float64
	l.read(func(s *state) {
		var cash float64
		for _, a := range s.accounts {
			if a.BudgetID == s.activeBudgetID && a.IsActive && a.Type.IsBudget() {
				cash += a.Balance
			}
		}
		ready = cash - totalAssigned(s, month)
	})
	return ready
}

// NetWorth returns the sum of every account balance in the active budget
// (loans and credit subtract through their negative balances) plus the
// value of all tracked assets.
func (l *Ledger) NetWorth() float64 {
	var netWorth float64
	l.read(func(s *state) {
		for _, a := range s.accounts {
			if a.BudgetID == s.activeBudgetID {
				netWorth += a.Balance
			}
		}
		for _, a := range s.assets {
			if a.BudgetID == s.activeBudgetID {
				netWorth += a.Value
			}
		}
	})
	return netWorth
}

// SpendingByCategory returns each category's total outflow magnitude for
// the month, keyed by category id. Only spending (negative amounts)
// counts; inflows are ignored.
func (l *Ledger) SpendingByCategory(month models.Month) map[string]float64 {
	spending := make(map[string]float64)
	l.read(func(s *state) {
		for _, t := range s.transactions {
			if t.BudgetID != s.activeBudgetID || t.CategoryID == "" || t.Amount >= 0 {
				continue
			}
			if month.Contains(t.Date) {
				spending[t.CategoryID] += -t.Amount
			}
		}
	})
	return spending
}
