package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
	"zeroledger/internal/planner"
)

// MonthHandler serves the per-month budget view and assignment mutations.
type MonthHandler struct {
	ledger *ledger.Ledger
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(l *ledger.Ledger) *MonthHandler {
	return &MonthHandler{ledger: l}
}

// AssignmentRequest represents the payload for setting an assignment.
type AssignmentRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount"`
}

// MoveMoneyRequest represents the payload for moving assigned funds
// between two categories within a month.
type MoveMoneyRequest struct {
	FromCategoryID string  `json:"from_category_id" binding:"required"`
	ToCategoryID   string  `json:"to_category_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

// categoryView is one row of the month view.
type categoryView struct {
	models.Category
	Assigned  float64 `json:"assigned"`
	Activity  float64 `json:"activity"`
	Available float64 `json:"available"`
}

// GetMonth renders the month's budget table: every category with its
// assigned, activity, and available amounts, grouped, plus the month's
// ready-to-assign figure.
func (h *MonthHandler) GetMonth(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	type groupView struct {
		models.CategoryGroup
		Categories []categoryView `json:"categories"`
	}

	categories := h.ledger.Categories()
	var groups []groupView
	for _, g := range h.ledger.CategoryGroups() {
		view := groupView{CategoryGroup: g, Categories: []categoryView{}}
		for _, cat := range categories {
			if cat.GroupID != g.ID {
				continue
			}
			view.Categories = append(view.Categories, categoryView{
				Category:  cat,
				Assigned:  h.ledger.Assigned(month, cat.ID),
				Activity:  h.ledger.CategoryActivity(month, cat.ID),
				Available: h.ledger.CategoryAvailable(month, cat.ID),
			})
		}
		groups = append(groups, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"month":           month,
		"ready_to_assign": h.ledger.ReadyToAssign(month),
		"total_assigned":  h.ledger.TotalAssigned(month),
		"groups":          groups,
	})
}

// SetAssignment sets a category's planned allocation for the month.
func (h *MonthHandler) SetAssignment(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.ledger.SetCategoryAssignment(month, req.CategoryID, req.Amount); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assigned":        h.ledger.Assigned(month, req.CategoryID),
		"ready_to_assign": h.ledger.ReadyToAssign(month),
	})
}

// MoveMoney shifts assigned funds between two categories for the month.
func (h *MonthHandler) MoveMoney(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var req MoveMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.ledger.MoveMoney(req.FromCategoryID, req.ToCategoryID, req.Amount, month); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from_available": h.ledger.CategoryAvailable(month, req.FromCategoryID),
		"to_available":   h.ledger.CategoryAvailable(month, req.ToCategoryID),
	})
}

// AutoAssign distributes the month's ready-to-assign pool across
// categories: overspend coverage first, then goal funding.
func (h *MonthHandler) AutoAssign(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := planner.AutoAssign(h.ledger, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":          result,
		"ready_to_assign": h.ledger.ReadyToAssign(month),
	})
}
