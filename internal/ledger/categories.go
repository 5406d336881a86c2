package ledger

import (
	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// CreateCategoryGroup creates a named category group in the active budget.
func (l *Ledger) CreateCategoryGroup(name string) (*models.CategoryGroup, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name is required")
	}

	group := models.CategoryGroup{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: l.now(),
	}
	err := l.mutate(func(s *state) error {
		group.BudgetID = s.activeBudgetID
		s.groups = append(s.groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// UpdateCategoryGroup renames a category group.
func (l *Ledger) UpdateCategoryGroup(groupID, name string) (*models.CategoryGroup, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name is required")
	}
	var updated models.CategoryGroup
	err := l.mutate(func(s *state) error {
		for i := range s.groups {
			if s.groups[i].ID == groupID {
				s.groups[i].Name = name
				updated = s.groups[i]
				return nil
			}
		}
		return apperrors.ErrGroupNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategoryGroup removes a group and cascades to its member
// categories, stripping their assignment entries across all months.
// Deleting a missing group is a no-op.
func (l *Ledger) DeleteCategoryGroup(groupID string) error {
	return l.mutate(func(s *state) error {
		groups := s.groups[:0:0]
		found := false
		for _, g := range s.groups {
			if g.ID == groupID {
				found = true
				continue
			}
			groups = append(groups, g)
		}
		if !found {
			return nil
		}
		s.groups = groups

		categories := s.categories[:0:0]
		for _, c := range s.categories {
			if c.GroupID == groupID {
				stripAssignments(s, c.ID)
				continue
			}
			categories = append(categories, c)
		}
		s.categories = categories
		return nil
	})
}

// CreateCategory creates a category in the given group with an optional
// monthly goal (0 = no goal).
func (l *Ledger) CreateCategory(groupID, name string, goal float64) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := models.Category{
		ID:        uuid.New(),
		GroupID:   groupID,
		Name:      name,
		Goal:      goal,
		CreatedAt: l.now(),
	}
	err := l.mutate(func(s *state) error {
		if !groupExists(s, groupID) {
			return apperrors.ErrGroupNotFound
		}
		category.BudgetID = s.activeBudgetID
		s.categories = append(s.categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category and/or moves it to a different group.
// A group move keeps the category's transaction and assignment history.
func (l *Ledger) UpdateCategory(categoryID string, name string, groupID string) (*models.Category, error) {
	var updated models.Category
	err := l.mutate(func(s *state) error {
		for i := range s.categories {
			if s.categories[i].ID != categoryID {
				continue
			}
			if name != "" {
				s.categories[i].Name = name
			}
			if groupID != "" {
				if !groupExists(s, groupID) {
					return apperrors.ErrGroupNotFound
				}
				s.categories[i].GroupID = groupID
			}
			updated = s.categories[i]
			return nil
		}
		return apperrors.ErrCategoryNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetCategoryGoal sets a category's monthly goal (target assignment amount).
func (l *Ledger) SetCategoryGoal(categoryID string, goal float64) (*models.Category, error) {
	if goal < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal must not be negative")
	}
	var updated models.Category
	err := l.mutate(func(s *state) error {
		for i := range s.categories {
			if s.categories[i].ID == categoryID {
				s.categories[i].Goal = goal
				updated = s.categories[i]
				return nil
			}
		}
		return apperrors.ErrCategoryNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category and strips its assignment entries
// across all months. Transactions that reference the category keep their
// now-dangling id; every query treats the reference as uncategorized.
// Deleting a missing category is a no-op.
func (l *Ledger) DeleteCategory(categoryID string) error {
	return l.mutate(func(s *state) error {
		categories := s.categories[:0:0]
		found := false
		for _, c := range s.categories {
			if c.ID == categoryID {
				found = true
				continue
			}
			categories = append(categories, c)
		}
		if !found {
			return nil
		}
		s.categories = categories
		stripAssignments(s, categoryID)
		return nil
	})
}

// CategoryGroups returns all groups in the active budget.
func (l *Ledger) CategoryGroups() []models.CategoryGroup {
	var groups []models.CategoryGroup
	l.read(func(s *state) {
		for _, g := range s.groups {
			if g.BudgetID == s.activeBudgetID {
				groups = append(groups, g)
			}
		}
	})
	return groups
}

// Categories returns the active budget's categories in stable order:
// group creation order, then in-group creation order.
func (l *Ledger) Categories() []models.Category {
	var categories []models.Category
	l.read(func(s *state) {
		for _, g := range s.groups {
			if g.BudgetID != s.activeBudgetID {
				continue
			}
			for _, c := range s.categories {
				if c.GroupID == g.ID {
					categories = append(categories, c)
				}
			}
		}
	})
	return categories
}

// Category returns the category with the given id, or nil if it does not exist.
func (l *Ledger) Category(categoryID string) *models.Category {
	var found *models.Category
	l.read(func(s *state) {
		for _, c := range s.categories {
			if c.ID == categoryID {
				category := c
				found = &category
				return
			}
		}
	})
	return found
}

// groupExists reports whether the active budget owns the group, so a
// category can never be filed under another budget's group.
func groupExists(s *state, groupID string) bool {
	for i := range s.groups {
		if s.groups[i].ID == groupID && s.groups[i].BudgetID == s.activeBudgetID {
			return true
		}
	}
	return false
}

// stripAssignments removes a category's assignment entries for all months
// in every budget.
func stripAssignments(s *state, categoryID string) {
	for key := range s.assignments {
		if key.CategoryID == categoryID {
			delete(s.assignments, key)
		}
	}
}
