// Package planner distributes a month's ready-to-assign pool across
// categories by a fixed priority policy: cover overspending first, then
// fund goals least-funded first.
package planner

import (
	"sort"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
)

// Store is the slice of the ledger contract the planner needs: derived
// queries plus the single assignment mutation entry point.
type Store interface {
	Categories() []models.Category
	CategoryAvailable(month models.Month, categoryID string) float64
	Assigned(month models.Month, categoryID string) float64
	ReadyToAssign(month models.Month) float64
	SetCategoryAssignment(month models.Month, categoryID string, amount float64) error
}

// Result reports what an auto-assign run distributed, for caller display.
type Result struct {
	TotalAssigned   float64 `json:"total_assigned"`
	CategoriesAdded int     `json:"categories_funded"`
}

// AutoAssign allocates the month's ready-to-assign pool in two ordered
// passes: overspend coverage (most-negative available first), then goal
// funding (funded fraction ascending). It stops as soon as the pool is
// exhausted. A pool of zero or less is reported as an error, not a
// silent no-op.
func AutoAssign(store Store, month models.Month) (*Result, error) {
	pool := store.ReadyToAssign(month)
	if pool <= 0 {
		return nil, apperrors.ErrNothingToAssign
	}

	result := &Result{}
	categories := store.Categories()

	// Pass 1: cover overspent categories, worst first.
	type overspent struct {
		categoryID string
		available  float64
	}
	var over []overspent
	for _, c := range categories {
		if available := store.CategoryAvailable(month, c.ID); available < 0 {
			over = append(over, overspent{categoryID: c.ID, available: available})
		}
	}
	sort.SliceStable(over, func(i, j int) bool {
		return over[i].available < over[j].available
	})
	for _, o := range over {
		if pool <= 0 {
			break
		}
		add := -o.available
		if add > pool {
			add = pool
		}
		assigned := store.Assigned(month, o.categoryID)
		if err := store.SetCategoryAssignment(month, o.categoryID, assigned+add); err != nil {
			return nil, err
		}
		pool -= add
		result.TotalAssigned += add
		result.CategoriesAdded++
	}

	// Pass 2: fund goals, least-funded fraction first.
	type underfunded struct {
		categoryID string
		assigned   float64
		gap        float64
		fraction   float64
	}
	var under []underfunded
	for _, c := range categories {
		if c.Goal <= 0 {
			continue
		}
		if store.CategoryAvailable(month, c.ID) < 0 {
			continue
		}
		assigned := store.Assigned(month, c.ID)
		if assigned >= c.Goal {
			continue
		}
		under = append(under, underfunded{
			categoryID: c.ID,
			assigned:   assigned,
			gap:        c.Goal - assigned,
			fraction:   assigned / c.Goal,
		})
	}
	sort.SliceStable(under, func(i, j int) bool {
		return under[i].fraction < under[j].fraction
	})
	for _, u := range under {
		if pool <= 0 {
			break
		}
		add := u.gap
		if add > pool {
			add = pool
		}
		if err := store.SetCategoryAssignment(month, u.categoryID, u.assigned+add); err != nil {
			return nil, err
		}
		pool -= add
		result.TotalAssigned += add
		result.CategoriesAdded++
	}

	return result, nil
}
