package ledger

import (
	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// CreateBudgetTemplate creates a template from an explicit goal map.
// If isDefault is set, the default flag is cleared on every other template
// first, so at most one template is default at any time.
func (l *Ledger) CreateBudgetTemplate(name string, goals map[string]float64, isDefault bool) (*models.BudgetTemplate, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "template name is required")
	}

	template := models.BudgetTemplate{
		ID:        uuid.New(),
		Name:      name,
		Goals:     make(map[string]float64, len(goals)),
		IsDefault: isDefault,
		CreatedAt: l.now(),
	}
	for id, amount := range goals {
		template.Goals[id] = amount
	}

	err := l.mutate(func(s *state) error {
		if isDefault {
			clearDefaultTemplate(s)
		}
		s.templates = append(s.templates, template)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// SaveCurrentAsTemplate snapshots every category with a positive goal in
// the active budget into a new template.
func (l *Ledger) SaveCurrentAsTemplate(name string, isDefault bool) (*models.BudgetTemplate, error) {
	goals := make(map[string]float64)
	l.read(func(s *state) {
		for _, c := range s.categories {
			if c.BudgetID == s.activeBudgetID && c.Goal > 0 {
				goals[c.ID] = c.Goal
			}
		}
	})
	return l.CreateBudgetTemplate(name, goals, isDefault)
}

// UpdateBudgetTemplate updates a template's name, goals, and default flag.
// A nil goal map leaves the goals unchanged.
func (l *Ledger) UpdateBudgetTemplate(templateID, name string, goals map[string]float64, isDefault *bool) (*models.BudgetTemplate, error) {
	var updated models.BudgetTemplate
	err := l.mutate(func(s *state) error {
		for i := range s.templates {
			if s.templates[i].ID != templateID {
				continue
			}
			if name != "" {
				s.templates[i].Name = name
			}
			if goals != nil {
				replacement := make(map[string]float64, len(goals))
				for id, amount := range goals {
					replacement[id] = amount
				}
				s.templates[i].Goals = replacement
			}
			if isDefault != nil {
				if *isDefault {
					clearDefaultTemplate(s)
				}
				s.templates[i].IsDefault = *isDefault
			}
			updated = s.templates[i]
			return nil
		}
		return apperrors.ErrTemplateNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBudgetTemplate removes a template. Deleting a missing template is
// a no-op.
func (l *Ledger) DeleteBudgetTemplate(templateID string) error {
	return l.mutate(func(s *state) error {
		templates := s.templates[:0:0]
		for _, t := range s.templates {
			if t.ID != templateID {
				templates = append(templates, t)
			}
		}
		s.templates = templates
		return nil
	})
}

// ApplyBudgetTemplate replaces the target month's entire assignment map
// for the active budget with the template's goal map. This is a
// destructive overwrite, not additive funding: existing assignments for
// categories absent from the template are removed.
func (l *Ledger) ApplyBudgetTemplate(templateID string, month models.Month) error {
	if month.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}
	return l.mutate(func(s *state) error {
		var template *models.BudgetTemplate
		for i := range s.templates {
			if s.templates[i].ID == templateID {
				template = &s.templates[i]
				break
			}
		}
		if template == nil {
			return apperrors.ErrTemplateNotFound
		}

		for key := range s.assignments {
			if key.BudgetID == s.activeBudgetID && key.Month == month {
				delete(s.assignments, key)
			}
		}
		for categoryID, amount := range template.Goals {
			if amount == 0 {
				continue
			}
			s.assignments[models.AssignmentKey{
				BudgetID:   s.activeBudgetID,
				Month:      month,
				CategoryID: categoryID,
			}] = amount
		}
		return nil
	})
}

// Templates returns all budget templates.
func (l *Ledger) Templates() []models.BudgetTemplate {
	var templates []models.BudgetTemplate
	l.read(func(s *state) {
		for _, t := range s.templates {
			t.Goals = t.CloneGoals()
			templates = append(templates, t)
		}
	})
	return templates
}

func clearDefaultTemplate(s *state) {
	for i := range s.templates {
		s.templates[i].IsDefault = false
	}
}
