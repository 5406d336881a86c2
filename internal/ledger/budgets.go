package ledger

import (
	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// BudgetSettings carries the display settings of a budget. Zero-value
// fields fall back to the documented defaults.
type BudgetSettings struct {
	Currency          string
	CurrencyPlacement models.CurrencyPlacement
	NumberFormat      string
	DateFormat        string
}

func (bs BudgetSettings) withDefaults() BudgetSettings {
	if bs.Currency == "" {
		bs.Currency = models.DefaultCurrency
	}
	if bs.CurrencyPlacement == "" {
		bs.CurrencyPlacement = models.CurrencyBefore
	}
	if bs.NumberFormat == "" {
		bs.NumberFormat = models.DefaultNumberFormat
	}
	if bs.DateFormat == "" {
		bs.DateFormat = models.DefaultDateFormat
	}
	return bs
}

// CreateBudget creates a new budget and makes it the active scope for all
// subsequently created accounts, categories, transactions, and assignments.
func (l *Ledger) CreateBudget(name string, settings BudgetSettings) (*models.Budget, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	settings = settings.withDefaults()

	budget := models.Budget{
		ID:                uuid.New(),
		Name:              name,
		Currency:          settings.Currency,
		CurrencyPlacement: settings.CurrencyPlacement,
		NumberFormat:      settings.NumberFormat,
		DateFormat:        settings.DateFormat,
		CreatedAt:         l.now(),
	}

	err := l.mutate(func(s *state) error {
		s.budgets = append(s.budgets, budget)
		s.activeBudgetID = budget.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// SwitchBudget makes the given budget the active scope.
func (l *Ledger) SwitchBudget(budgetID string) error {
	return l.mutate(func(s *state) error {
		if !l.budgetExists(s, budgetID) {
			return apperrors.ErrBudgetNotFound
		}
		s.activeBudgetID = budgetID
		return nil
	})
}

// UpdateBudget updates a budget's name and display settings. Empty setting
// fields are left unchanged.
func (l *Ledger) UpdateBudget(budgetID, name string, settings BudgetSettings) (*models.Budget, error) {
	var updated models.Budget
	err := l.mutate(func(s *state) error {
		for i := range s.budgets {
			if s.budgets[i].ID != budgetID {
				continue
			}
			if name != "" {
				s.budgets[i].Name = name
			}
			if settings.Currency != "" {
				s.budgets[i].Currency = settings.Currency
			}
			if settings.CurrencyPlacement != "" {
				s.budgets[i].CurrencyPlacement = settings.CurrencyPlacement
			}
			if settings.NumberFormat != "" {
				s.budgets[i].NumberFormat = settings.NumberFormat
			}
			if settings.DateFormat != "" {
				s.budgets[i].DateFormat = settings.DateFormat
			}
			updated = s.budgets[i]
			return nil
		}
		return apperrors.ErrBudgetNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBudget removes a budget and cascades to every entity scoped to it:
// accounts, category groups, categories, transactions, assets, and its
// slice of the assignment table. Deleting the last remaining budget is
// refused so that at least one budget always exists.
func (l *Ledger) DeleteBudget(budgetID string) error {
	return l.mutate(func(s *state) error {
		if !l.budgetExists(s, budgetID) {
			return apperrors.ErrBudgetNotFound
		}
		if len(s.budgets) == 1 {
			return apperrors.ErrLastBudget
		}

		budgets := s.budgets[:0:0]
		for _, b := range s.budgets {
			if b.ID != budgetID {
				budgets = append(budgets, b)
			}
		}
		s.budgets = budgets

		accounts := s.accounts[:0:0]
		for _, a := range s.accounts {
			if a.BudgetID != budgetID {
				accounts = append(accounts, a)
			}
		}
		s.accounts = accounts

		groups := s.groups[:0:0]
		for _, g := range s.groups {
			if g.BudgetID != budgetID {
				groups = append(groups, g)
			}
		}
		s.groups = groups

		categories := s.categories[:0:0]
		for _, c := range s.categories {
			if c.BudgetID != budgetID {
				categories = append(categories, c)
			}
		}
		s.categories = categories

		transactions := s.transactions[:0:0]
		for _, t := range s.transactions {
			if t.BudgetID != budgetID {
				transactions = append(transactions, t)
			}
		}
		s.transactions = transactions

		assets := s.assets[:0:0]
		for _, a := range s.assets {
			if a.BudgetID != budgetID {
				assets = append(assets, a)
			}
		}
		s.assets = assets

		for key := range s.assignments {
			if key.BudgetID == budgetID {
				delete(s.assignments, key)
			}
		}

		if s.activeBudgetID == budgetID {
			s.activeBudgetID = s.budgets[0].ID
		}
		return nil
	})
}

// Budgets returns all budgets.
func (l *Ledger) Budgets() []models.Budget {
	var budgets []models.Budget
	l.read(func(s *state) {
		budgets = append([]models.Budget(nil), s.budgets...)
	})
	return budgets
}

// ActiveBudget returns the budget that currently scopes all operations.
func (l *Ledger) ActiveBudget() models.Budget {
	var active models.Budget
	l.read(func(s *state) {
		for _, b := range s.budgets {
			if b.ID == s.activeBudgetID {
				active = b
				return
			}
		}
	})
	return active
}

// CurrentMonth returns the month the budget view is navigated to.
func (l *Ledger) CurrentMonth() models.Month {
	var month models.Month
	l.read(func(s *state) {
		month = s.currentMonth
	})
	return month
}

// SetCurrentMonth navigates the budget view to the given month. Months are
// navigable indefinitely in both directions.
func (l *Ledger) SetCurrentMonth(month models.Month) error {
	if month.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	return l.mutate(func(s *state) error {
		s.currentMonth = month
		return nil
	})
}
