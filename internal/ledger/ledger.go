// Package ledger implements the authoritative in-memory budgeting model:
// budgets, accounts, category groups, categories, transactions, assets,
// budget templates, and the per-budget/per-month assignment table, plus
// the derived queries and mutating operations that keep them consistent.
//
// The ledger is a single-writer aggregate. Every mutation builds the next
// state from shallow-copied slices and swaps it in whole under the write
// lock, so concurrent readers always observe either the pre- or
// post-mutation state, never a partial one.
package ledger

import (
	"sync"
	"time"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// state is one immutable-by-convention generation of ledger data. Mutations
// never modify a published state; they clone, edit the clone, and publish it.
type state struct {
	activeBudgetID string
	currentMonth   models.Month

	budgets      []models.Budget
	accounts     []models.Account
	groups       []models.CategoryGroup
	categories   []models.Category
	transactions []models.Transaction
	assets       []models.Asset
	templates    []models.BudgetTemplate

	// Flat assignment table keyed by (budgetID, month, categoryID).
	assignments map[models.AssignmentKey]float64
}

// clone returns a state whose slices and maps are independent copies.
// Entity values are copied by value; none of them hold shared pointers.
func (s *state) clone() *state {
	next := &state{
		activeBudgetID: s.activeBudgetID,
		currentMonth:   s.currentMonth,
		budgets:        append([]models.Budget(nil), s.budgets...),
		accounts:       append([]models.Account(nil), s.accounts...),
		groups:         append([]models.CategoryGroup(nil), s.groups...),
		categories:     append([]models.Category(nil), s.categories...),
		transactions:   append([]models.Transaction(nil), s.transactions...),
		assets:         append([]models.Asset(nil), s.assets...),
		templates:      make([]models.BudgetTemplate, 0, len(s.templates)),
		assignments:    make(map[models.AssignmentKey]float64, len(s.assignments)),
	}
	for _, tpl := range s.templates {
		tpl.Goals = tpl.CloneGoals()
		next.templates = append(next.templates, tpl)
	}
	for key, amount := range s.assignments {
		next.assignments[key] = amount
	}
	return next
}

// Ledger owns all budgeting state and is its only writer.
type Ledger struct {
	mu      sync.RWMutex
	state   *state
	version uint64

	now func() time.Time // injectable clock for tests
}

// New creates a ledger seeded with a single default budget, preserving the
// invariant that at least one budget always exists.
func New() *Ledger {
	l := &Ledger{
		state: &state{assignments: make(map[models.AssignmentKey]float64)},
		now:   time.Now,
	}
	budget := models.Budget{
		ID:                uuid.New(),
		Name:              "My Budget",
		Currency:          models.DefaultCurrency,
		CurrencyPlacement: models.CurrencyBefore,
		NumberFormat:      models.DefaultNumberFormat,
		DateFormat:        models.DefaultDateFormat,
		CreatedAt:         l.now(),
	}
	l.state.budgets = []models.Budget{budget}
	l.state.activeBudgetID = budget.ID
	l.state.currentMonth = models.MonthOf(l.now())
	return l
}

// Version returns the mutation counter. It increments by exactly one per
// applied mutation and is unchanged by queries and rejected operations.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// mutate runs fn against a clone of the current state and publishes the
// clone only if fn succeeds. A failed mutation leaves the ledger untouched.
func (l *Ledger) mutate(fn func(s *state) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	l.state = next
	l.version++
	return nil
}

// read runs fn against the current state under the read lock.
func (l *Ledger) read(fn func(s *state)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.state)
}

// Snapshot captures the full state for serialization. The returned value
// shares no memory with the live ledger.
func (l *Ledger) Snapshot() *models.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := l.state.clone()
	snap := &models.Snapshot{
		Version:        models.SnapshotVersion,
		ActiveBudgetID: s.activeBudgetID,
		CurrentMonth:   s.currentMonth,
		Budgets:        s.budgets,
		Accounts:       s.accounts,
		CategoryGroups: s.groups,
		Categories:     s.categories,
		Transactions:   s.transactions,
		Assets:         s.assets,
		Templates:      s.templates,
		Assignments:    make([]models.AssignmentEntry, 0, len(s.assignments)),
	}
	for key, amount := range s.assignments {
		snap.Assignments = append(snap.Assignments, models.AssignmentEntry{
			BudgetID:   key.BudgetID,
			Month:      key.Month,
			CategoryID: key.CategoryID,
			Amount:     amount,
		})
	}
	return snap
}

// FromSnapshot restores a ledger from a serialized snapshot. A snapshot
// with a different wire version is rejected outright; callers should fall
// back to New() rather than attempt a partial migration.
func FromSnapshot(snap *models.Snapshot) (*Ledger, error) {
	if snap.Version != models.SnapshotVersion {
		return nil, apperrors.ErrSnapshotVersion
	}

	s := &state{
		activeBudgetID: snap.ActiveBudgetID,
		currentMonth:   snap.CurrentMonth,
		budgets:        append([]models.Budget(nil), snap.Budgets...),
		accounts:       append([]models.Account(nil), snap.Accounts...),
		groups:         append([]models.CategoryGroup(nil), snap.CategoryGroups...),
		categories:     append([]models.Category(nil), snap.Categories...),
		transactions:   append([]models.Transaction(nil), snap.Transactions...),
		assets:         append([]models.Asset(nil), snap.Assets...),
		templates:      make([]models.BudgetTemplate, 0, len(snap.Templates)),
		assignments:    make(map[models.AssignmentKey]float64, len(snap.Assignments)),
	}
	for _, tpl := range snap.Templates {
		tpl.Goals = tpl.CloneGoals()
		s.templates = append(s.templates, tpl)
	}
	for _, entry := range snap.Assignments {
		s.assignments[entry.Key()] = entry.Amount
	}

	l := &Ledger{state: s, now: time.Now}
	if len(s.budgets) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "snapshot contains no budgets")
	}
	if !l.budgetExists(s, s.activeBudgetID) {
		s.activeBudgetID = s.budgets[0].ID
	}
	if s.currentMonth.IsZero() {
		s.currentMonth = models.MonthOf(l.now())
	}
	return l, nil
}

func (l *Ledger) budgetExists(s *state, id string) bool {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			return true
		}
	}
	return false
}
