package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"address-resolver/internal/export"
	"address-resolver/internal/models"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BatchHandler handles batch address resolution requests
type BatchHandler struct {
	service BatchRunner
}

// Service interface for dependency injection
type BatchRunner interface {
	Start(context.Context, []string) (string, error)
	Get(context.Context, string) (*models.BatchRun, error)
}

// BatchRequest carries the input lines either as one text block or as a list
type BatchRequest struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(svc BatchRunner) *BatchHandler {
	return &BatchHandler{service: svc}
}

// Start handles POST /batches requests
//
//	@Summary	Start a batch run
//	@Accept		json
//	@Produce	json
//	@Param		request	body		BatchRequest	true	"address lines"
//	@Success	202		{object}	map[string]string
//	@Failure	400		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Router		/batches [post]
func (h *BatchHandler) Start(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch payload"})
		return
	}

	lines := req.Lines
	if req.Text != "" {
		lines = append(service.SplitLines(req.Text), lines...)
	}

	id, err := h.service.Start(c.Request.Context(), lines)
	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no addresses supplied"})
		return
	case errors.Is(err, service.ErrBatchInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "a batch is already running"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// Get handles GET /batches/:id requests
//
//	@Summary	Get a batch run with its progress and records
//	@Produce	json
//	@Param		id	path		string	true	"run id"
//	@Success	200	{object}	models.BatchRun
//	@Failure	404	{object}	map[string]string
//	@Router		/batches/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	run, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run)
}

// Export handles GET /batches/:id/export requests
//
//	@Summary	Download the records of a finished batch run
//	@Produce	text/csv
//	@Produce	json
//	@Param		id			path	string	true	"run id"
//	@Param		format		query	string	false	"csv or json"
//	@Param		confidence	query	string	false	"high, medium, low or none"
//	@Success	200
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	409	{object}	map[string]string
//	@Router		/batches/{id}/export [get]
func (h *BatchHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
		return
	}
	confidence := models.Confidence(c.Query("confidence"))
	if confidence != "" && !confidence.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confidence filter"})
		return
	}

	run, ok := h.load(c)
	if !ok {
		return
	}
	if run.Status != models.RunStatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "batch is still running"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="address_batch_result_%s.%s"`, run.ID, format))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, export.Filter(run.Records, confidence)); err != nil {
		log.Error().Err(err).Str("run_id", run.ID).Msg("export failed")
	}
}

func (h *BatchHandler) load(c *gin.Context) (*models.BatchRun, bool) {
	run, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return nil, false
	}
	return run, true
}
