package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zeroledger/internal/errors"
	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
)

// CategoryHandler handles category group and category requests.
type CategoryHandler struct {
	ledger *ledger.Ledger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(l *ledger.Ledger) *CategoryHandler {
	return &CategoryHandler{ledger: l}
}

// GroupRequest represents the payload for creating or renaming a group.
type GroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateCategoryRequest represents the payload for creating a category.
type CreateCategoryRequest struct {
	GroupID string  `json:"group_id" binding:"required"`
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Goal    float64 `json:"goal" binding:"omitempty,gte=0"`
}

// UpdateCategoryRequest represents the payload for renaming or moving a
// category to another group.
type UpdateCategoryRequest struct {
	Name    string `json:"name" binding:"omitempty,min=1,max=100"`
	GroupID string `json:"group_id"`
}

// GoalRequest represents the payload for setting a category goal.
type GoalRequest struct {
	Goal float64 `json:"goal" binding:"gte=0"`
}

// CreateGroup creates a category group in the active budget.
func (h *CategoryHandler) CreateGroup(c *gin.Context) {
	var req GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	group, err := h.ledger.CreateCategoryGroup(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// GetGroups returns the active budget's groups with their member categories.
func (h *CategoryHandler) GetGroups(c *gin.Context) {
	type groupView struct {
		models.CategoryGroup
		Categories []models.Category `json:"categories"`
	}

	categories := h.ledger.Categories()
	var views []groupView
	for _, g := range h.ledger.CategoryGroups() {
		view := groupView{CategoryGroup: g, Categories: []models.Category{}}
		for _, cat := range categories {
			if cat.GroupID == g.ID {
				view.Categories = append(view.Categories, cat)
			}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"groups": views})
}

// UpdateGroup renames a category group.
func (h *CategoryHandler) UpdateGroup(c *gin.Context) {
	var req GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	group, err := h.ledger.UpdateCategoryGroup(c.Param("id"), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// DeleteGroup removes a group and its member categories.
func (h *CategoryHandler) DeleteGroup(c *gin.Context) {
	if err := h.ledger.DeleteCategoryGroup(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCategory creates a category within a group.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	category, err := h.ledger.CreateCategory(req.GroupID, req.Name, req.Goal)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory renames a category and/or moves it to another group.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	category, err := h.ledger.UpdateCategory(c.Param("id"), req.Name, req.GroupID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// SetGoal sets a category's monthly goal.
func (h *CategoryHandler) SetGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	category, err := h.ledger.SetCategoryGoal(c.Param("id"), req.Goal)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category, stripping its assignments.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.ledger.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
