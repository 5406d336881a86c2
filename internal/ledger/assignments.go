package ledger

import (
	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
)

// SetCategoryAssignment sets a category's planned allocation for a month
// in the active budget, replacing any previous value. Assignments are
// independent of transactions; they represent planned allocation, not
// spend. Setting zero removes the table entry.
func (l *Ledger) SetCategoryAssignment(month models.Month, categoryID string, amount float64) error {
	if month.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	if categoryID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}
	return l.mutate(func(s *state) error {
		key := models.AssignmentKey{BudgetID: s.activeBudgetID, Month: month, CategoryID: categoryID}
		if amount == 0 {
			delete(s.assignments, key)
		} else {
			s.assignments[key] = amount
		}
		return nil
	})
}

// MoveMoney shifts amount from one category's assignment to another's for
// the given month in a single atomic update. Total assigned funds for the
// month are unchanged. The engine deliberately performs no bounds check
// against the source's available balance; callers pre-validate with
// CategoryAvailable.
func (l *Ledger) MoveMoney(fromCategoryID, toCategoryID string, amount float64, month models.Month) error {
	if month.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	if fromCategoryID == "" || toCategoryID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "both categories are required")
	}
	if fromCategoryID == toCategoryID {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot move money within the same category")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return l.mutate(func(s *state) error {
		from := models.AssignmentKey{BudgetID: s.activeBudgetID, Month: month, CategoryID: fromCategoryID}
		to := models.AssignmentKey{BudgetID: s.activeBudgetID, Month: month, CategoryID: toCategoryID}
		s.assignments[from] -= amount
		s.assignments[to] += amount
		if s.assignments[from] == 0 {
			delete(s.assignments, from)
		}
		if s.assignments[to] == 0 {
			delete(s.assignments, to)
		}
		return nil
	})
}

// Assigned returns a category's assignment for the month in the active
// budget (0 when there is no entry).
func (l *Ledger) Assigned(month models.Month, categoryID string) float64 {
	var assigned float64
	l.read(func(s *state) {
		assigned = s.assignments[models.AssignmentKey{
			BudgetID:   s.activeBudgetID,
			Month:      month,
			CategoryID: categoryID,
		}]
	})
	return assigned
}

// TotalAssigned returns the sum of all assignments for the month across
// the active budget's categories.
func (l *Ledger) TotalAssigned(month models.Month) float64 {
	var total float64
	l.read(func(s *state) {
		total = totalAssigned(s, month)
	})
	return total
}

func totalAssigned(s *state, month models.Month) float64 {
	var total float64
	for key, amount := range s.assignments {
		if key.BudgetID == s.activeBudgetID && key.Month == month {
			total += amount
		}
	}
	return total
}
