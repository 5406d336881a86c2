package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
)

// AssetHandler handles tracked asset requests.
type AssetHandler struct {
	ledger *ledger.Ledger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(l *ledger.Ledger) *AssetHandler {
	return &AssetHandler{ledger: l}
}

// CreateAssetRequest represents the payload for tracking a new asset.
type CreateAssetRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Kind  string  `json:"kind" binding:"omitempty,asset_kind"`
	Value float64 `json:"value"`
}

// UpdateAssetRequest represents the payload for restating an asset's value.
type UpdateAssetRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// CreateAsset tracks a new asset in the active budget.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	asset, err := h.ledger.CreateAsset(req.Name, models.AssetKind(req.Kind), req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets lists the active budget's tracked assets.
func (h *AssetHandler) GetAssets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": h.ledger.Assets()})
}

// UpdateAsset restates an asset's current value.
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	asset, err := h.ledger.UpdateAssetValue(c.Param("id"), *req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset stops tracking an asset.
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	if err := h.ledger.DeleteAsset(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
