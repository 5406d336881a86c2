package models

import "time"

// AssetKind classifies a tracked asset.
type AssetKind string

const (
	AssetKindProperty   AssetKind = "property"
	AssetKindVehicle    AssetKind = "vehicle"
	AssetKindInvestment AssetKind = "investment"
	AssetKindOther      AssetKind = "other"
)

// Asset is a tracking item outside the budget accounts' cash-flow
// accounting. Its signed value contributes to net worth only (assets add,
// liabilities subtract).
type Asset struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Name      string    `json:"name"`
	Kind      AssetKind `json:"kind"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
