package models

import "time"

// CategoryGroup is a named, purely organizational bucket of categories.
// It has no financial attributes of its own; group totals are derived by
// summing member categories.
type CategoryGroup struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a spending envelope within a group. Goal is the optional
// monthly target assignment amount (0 = no goal).
type Category struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	Goal      float64   `json:"goal,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
