package handler

import (
	"context"
	"net/http"
	"strings"

	"address-resolver/internal/models"

	"github.com/gin-gonic/gin"
)

// ResolveHandler handles single free-text address requests
type ResolveHandler struct {
	service LineResolver
}

// Service interface for dependency injection
type LineResolver interface {
	ResolveLine(context.Context, string) models.AddressRecord
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(svc LineResolver) *ResolveHandler {
	return &ResolveHandler{service: svc}
}

// Resolve handles GET /resolve requests
//
//	@Summary	Resolve a single address line
//	@Produce	json
//	@Param		q	query		string	true	"raw address line"
//	@Success	200	{object}	models.AddressRecord
//	@Failure	400	{object}	map[string]string
//	@Router		/resolve [get]
func (h *ResolveHandler) Resolve(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	c.JSON(http.StatusOK, h.service.ResolveLine(c.Request.Context(), query))
}
