package ledger

import (
	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/models"
	"zeroledger/internal/uuid"
)

// CreateAsset adds a tracking item to the active budget. Value is signed;
// a liability tracked here carries a negative value.
func (l *Ledger) CreateAsset(name string, kind models.AssetKind, value float64) (*models.Asset, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name is required")
	}
	if kind == "" {
		kind = models.AssetKindOther
	}

	asset := models.Asset{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Value:     value,
		CreatedAt: l.now(),
	}
	err := l.mutate(func(s *state) error {
		asset.BudgetID = s.activeBudgetID
		s.assets = append(s.assets, asset)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateAssetValue restates a tracked asset's current value.
func (l *Ledger) UpdateAssetValue(assetID string, value float64) (*models.Asset, error) {
	var updated models.Asset
	err := l.mutate(func(s *state) error {
		for i := range s.assets {
			if s.assets[i].ID == assetID {
				s.assets[i].Value = value
				updated = s.assets[i]
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAsset removes a tracked asset. Deleting a missing asset is a no-op.
func (l *Ledger) DeleteAsset(assetID string) error {
	return l.mutate(func(s *state) error {
		assets := s.assets[:0:0]
		for _, a := range s.assets {
			if a.ID != assetID {
				assets = append(assets, a)
			}
		}
		s.assets = assets
		return nil
	})
}

// Assets returns all tracked assets in the active budget.
func (l *Ledger) Assets() []models.Asset {
	var assets []models.Asset
	l.read(func(s *state) {
		for _, a := range s.assets {
			if a.BudgetID == s.activeBudgetID {
				assets = append(assets, a)
			}
		}
	})
	return assets
}
