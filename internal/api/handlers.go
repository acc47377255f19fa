// Package api exposes the ingestion pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/questionforge/ingestor/internal/config"
	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/extractor"
	"github.com/questionforge/ingestor/internal/logger"
	"github.com/questionforge/ingestor/internal/pipeline"
)

// Ingestor runs one ingestion request.
type Ingestor interface {
	Ingest(ctx context.Context, input string) (*pipeline.Summary, error)
}

// Reviewer drives approve/reject transitions.
type Reviewer interface {
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
}

// StagingLister reads staged rows for review listings.
type StagingLister interface {
	ListByStatus(ctx context.Context, status string, limit int) ([]*domain.CrawledQuestion, error)
}

// Pinger verifies a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the ingestor API.
type Handler struct {
	ingestor Ingestor
	reviewer Reviewer
	lister   StagingLister
	db       Pinger
	log      logger.Logger
}

// NewHandler creates an API handler.
func NewHandler(ingestor Ingestor, reviewer Reviewer, lister StagingLister, db Pinger, log logger.Logger) *Handler {
	return &Handler{
		ingestor: ingestor,
		reviewer: reviewer,
		lister:   lister,
		db:       db,
		log:      log,
	}
}

// CrawlRequest is the ingestion entrypoint payload.
type CrawlRequest struct {
	URL string `json:"url" binding:"required"`
}

// CrawledQuestionResponse is one row in a review listing.
type CrawledQuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Source        string    `json:"source"`
	DetectedTopic string    `json:"detected_topic"`
	DetectedRole  string    `json:"detected_role"`
	DetectedLevel string    `json:"detected_level"`
	Status        string    `json:"status"`
}

// Crawl handles POST /api/v1/crawl.
func (h *Handler) Crawl(c *gin.Context) {
	var req CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.ingestor.Ingest(c.Request.Context(), req.URL)
	if err != nil {
		h.renderIngestError(c, req.URL, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": summary})
}

func (h *Handler) renderIngestError(c *gin.Context, input string, err error) {
	var fetchErr *extractor.FetchError

	switch {
	case errors.Is(err, domain.ErrNoHandler):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no suitable extractor found"})
	case errors.As(err, &fetchErr):
		h.log.Error("ingestion fetch failed", logger.String("input", input), logger.Err(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.log.Error("ingestion failed", logger.String("input", input), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// List handles GET /api/v1/crawled-questions.
func (h *Handler) List(c *gin.Context) {
	status := c.DefaultQuery("status", domain.StatusPending)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.DefaultListLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	questions, err := h.lister.ListByStatus(c.Request.Context(), status, limit)
	if err != nil {
		h.log.Error("list crawled questions failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]CrawledQuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, CrawledQuestionResponse{
			ID:            q.ID,
			Title:         q.RawTitle,
			Source:        q.Source,
			DetectedTopic: q.DetectedTopic,
			DetectedRole:  q.DetectedRole,
			DetectedLevel: q.DetectedLevel,
			Status:        q.Status,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Approve handles POST /api/v1/crawled-questions/:id/approve.
func (h *Handler) Approve(c *gin.Context) {
	h.review(c, domain.StatusApproved, h.reviewer.Approve)
}

// Reject handles POST /api/v1/crawled-questions/:id/reject.
func (h *Handler) Reject(c *gin.Context) {
	h.review(c, domain.StatusRejected, h.reviewer.Reject)
}

func (h *Handler) review(c *gin.Context, outcome string, transition func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	if err := transition(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.log.Error("review transition failed",
				logger.String("id", id.String()),
				logger.String("outcome", outcome),
				logger.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": outcome, "id": id})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready: the service is ready when the database
// answers a ping.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
