package handler

import (
	"context"
	"errors"
	"net/http"

	"address-resolver/internal/models"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
)

// SelectionHandler handles results posted by the address-selection popup
type SelectionHandler struct {
	service Selector
}

// Service interface for dependency injection
type Selector interface {
	Select(context.Context, models.SelectionOutcome) (models.AddressRecord, error)
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(svc Selector) *SelectionHandler {
	return &SelectionHandler{service: svc}
}

// Select handles POST /selections requests
//
//	@Summary	Assemble a record from a popup selection
//	@Accept		json
//	@Produce	json
//	@Param		outcome	body		models.SelectionOutcome	true	"popup outcome"
//	@Success	200		{object}	models.AddressRecord
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Router		/selections [post]
func (h *SelectionHandler) Select(c *gin.Context) {
	var outcome models.SelectionOutcome
	if err := c.ShouldBindJSON(&outcome); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload"})
		return
	}
	if !outcome.Cancelled && outcome.Selection == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selection is required unless cancelled"})
		return
	}

	rec, err := h.service.Select(c.Request.Context(), outcome)
	if errors.Is(err, service.ErrSelectionCancelled) {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
