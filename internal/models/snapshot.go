package models

// SnapshotVersion is the current wire version of the serialized snapshot.
// A persisted snapshot with a different version is discarded on load
// rather than partially migrated.
const SnapshotVersion = 1

// AssignmentKey is the composite key of the monthly assignment table.
type AssignmentKey struct {
	BudgetID   string
	Month      Month
	CategoryID string
}

// AssignmentEntry is one row of the assignment table in serialized form.
type AssignmentEntry struct {
	BudgetID   string  `json:"budget_id"`
	Month      Month   `json:"month"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
}

// Key returns the entry's composite key.
func (e AssignmentEntry) Key() AssignmentKey {
	return AssignmentKey{BudgetID: e.BudgetID, Month: e.Month, CategoryID: e.CategoryID}
}

// Snapshot is the full serializable state of the ledger.
type Snapshot struct {
	Version        int               `json:"version"`
	ActiveBudgetID string            `json:"active_budget_id"`
	CurrentMonth   Month             `json:"current_month"`
	Budgets        []Budget          `json:"budgets"`
	Accounts       []Account         `json:"accounts"`
	CategoryGroups []CategoryGroup   `json:"category_groups"`
	Categories     []Category        `json:"categories"`
	Transactions   []Transaction     `json:"transactions"`
	Assignments    []AssignmentEntry `json:"assignments"`
	Assets         []Asset           `json:"assets"`
	Templates      []BudgetTemplate  `json:"templates"`
}
