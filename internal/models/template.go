package models

import "time"

// BudgetTemplate is a named, budget-independent capture of category goals.
// Applying a template replaces a month's entire assignment map with Goals.
// At most one template is marked default at any time.
type BudgetTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Goals     map[string]float64 `json:"goals"` // categoryID -> goal amount
	IsDefault bool               `json:"is_default"`
	CreatedAt time.Time          `json:"created_at"`
}

// CloneGoals returns an independent copy of the template's goal map.
func (t *BudgetTemplate) CloneGoals() map[string]float64 {
	goals := make(map[string]float64, len(t.Goals))
	for id, amount := range t.Goals {
		goals[id] = amount
	}
	return goals
}
