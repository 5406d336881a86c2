package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
)

// TemplateHandler handles budget template requests.
type TemplateHandler struct {
	ledger *ledger.Ledger
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(l *ledger.Ledger) *TemplateHandler {
	return &TemplateHandler{ledger: l}
}

// CreateTemplateRequest represents the payload for creating a template
// from an explicit goal map.
type CreateTemplateRequest struct {
	Name      string             `json:"name" binding:"required,min=1,max=100"`
	Goals     map[string]float64 `json:"goals"`
	IsDefault bool               `json:"is_default"`
}

// CaptureTemplateRequest represents the payload for snapshotting the
// current category goals into a template.
type CaptureTemplateRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	IsDefault bool   `json:"is_default"`
}

// UpdateTemplateRequest represents the payload for editing a template.
type UpdateTemplateRequest struct {
	Name      string             `json:"name" binding:"omitempty,min=1,max=100"`
	Goals     map[string]float64 `json:"goals"`
	IsDefault *bool              `json:"is_default"`
}

// ApplyTemplateRequest represents the payload for applying a template to
// a month. The month's existing assignment map is replaced, not merged.
type ApplyTemplateRequest struct {
	Month string `json:"month" binding:"required,budget_month"`
}

// CreateTemplate creates a template from an explicit goal map.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	template, err := h.ledger.CreateBudgetTemplate(req.Name, req.Goals, req.IsDefault)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// CaptureTemplate snapshots every category with a positive goal into a
// new template.
func (h *TemplateHandler) CaptureTemplate(c *gin.Context) {
	var req CaptureTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	template, err := h.ledger.SaveCurrentAsTemplate(req.Name, req.IsDefault)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// GetTemplates lists all templates.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.ledger.Templates()})
}

// UpdateTemplate edits a template's name, goals, or default flag.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	template, err := h.ledger.UpdateBudgetTemplate(c.Param("id"), req.Name, req.Goals, req.IsDefault)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": template})
}

// DeleteTemplate removes a template.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.ledger.DeleteBudgetTemplate(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyTemplate replaces a month's assignment map with the template's goals.
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	month, err := parseMonthString(req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.ledger.ApplyBudgetTemplate(c.Param("id"), month); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month":           month,
		"total_assigned":  h.ledger.TotalAssigned(month),
		"ready_to_assign": h.ledger.ReadyToAssign(month),
	})
}
