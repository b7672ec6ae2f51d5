package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/database"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/feedback"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/processor"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/statutes"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

// Handler serves the classification, feedback and statute endpoints.
type Handler struct {
	classifier   *classifier.Classifier
	batch        *processor.BatchProcessor
	adjuster     *feedback.Adjuster
	statutes     *statutes.Index
	feedbackRepo *database.FeedbackRepository
	log          logger.Logger
	telemetry    *telemetry.Provider
	batchMaxSize int
}

// NewHandler wires the handler. feedbackRepo may be nil when running without
// a database.
func NewHandler(
	c *classifier.Classifier,
	batch *processor.BatchProcessor,
	adjuster *feedback.Adjuster,
	idx *statutes.Index,
	feedbackRepo *database.FeedbackRepository,
	batchMaxSize int,
	log logger.Logger,
	tp *telemetry.Provider,
) *Handler {
	return &Handler{
		classifier:   c,
		batch:        batch,
		adjuster:     adjuster,
		statutes:     idx,
		feedbackRepo: feedbackRepo,
		log:          log,
		telemetry:    tp,
		batchMaxSize: batchMaxSize,
	}
}

type classifyRequest struct {
	// Query may be empty: empty queries get the enumerate-all fallback
	// rather than an error.
	Query string `json:"query"`
}

type batchRequest struct {
	Queries []string `json:"queries" binding:"required,min=1"`
}

type feedbackRequest struct {
	Query        string  `json:"query"`
	Domain       string  `json:"domain" binding:"required"`
	Subdomain    string  `json:"subdomain" binding:"required"`
	Confidence   float64 `json:"confidence" binding:"omitempty,min=0,max=1"`
	FeedbackText string  `json:"feedback_text"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result := h.classifier.Classify(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, h.enrich(result))
}

// ClassifyBatch handles POST /api/v1/classify/batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if h.batchMaxSize > 0 && len(req.Queries) > h.batchMaxSize {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "batch exceeds maximum size"})
		return
	}

	results := h.batch.Process(c.Request.Context(), req.Queries)

	enriched := make([]*ClassifyResponse, len(results))
	for i, r := range results {
		enriched[i] = h.enrich(r)
	}
	c.JSON(http.StatusOK, BatchResponse{Count: len(enriched), Results: enriched})
}

// SubmitFeedback handles POST /api/v1/feedback.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if !domain.IsKnownDomain(req.Domain) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown domain: " + req.Domain})
		return
	}

	record, err := h.adjuster.Record(
		c.Request.Context(),
		req.Query,
		req.Domain,
		req.Subdomain,
		req.Confidence,
		req.FeedbackText,
		req.Rating,
	)
	if err != nil {
		h.log.Error("failed to store feedback", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store feedback"})
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{
		ID:            record.ID,
		Polarity:      record.Polarity,
		Applied:       record.Applied,
		Step:          record.Step,
		NewAdjustment: h.adjuster.State().Get(req.Domain, req.Subdomain),
	})
}

// ListDomains handles GET /api/v1/domains.
func (h *Handler) ListDomains(rules []domain.SubdomainRule) gin.HandlerFunc {
	bySubdomain := make(map[string][]string)
	for _, r := range rules {
		bySubdomain[r.Domain] = append(bySubdomain[r.Domain], r.Subdomain)
	}

	infos := make([]DomainInfo, 0, len(domain.Domains()))
	for _, d := range domain.Domains() {
		infos = append(infos, DomainInfo{Domain: d, Subdomains: bySubdomain[d]})
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": len(infos), "domains": infos})
	}
}

// GetSection handles GET /api/v1/sections/:code/:id.
func (h *Handler) GetSection(c *gin.Context) {
	code := c.Param("code")
	id := c.Param("id")

	section, err := h.statutes.Section(code, id)
	if err != nil {
		if errors.Is(err, statutes.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	h.telemetry.RecordSectionLookup(section.Code)
	c.JSON(http.StatusOK, section)
}

// GetArticle handles GET /api/v1/articles/:article.
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.statutes.Article(c.Param("article"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListFeedback handles GET /api/v1/feedback/recent.
func (h *Handler) ListFeedback(c *gin.Context) {
	if h.feedbackRepo == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "feedback log not available"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.feedbackRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("failed to list feedback", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(records), "feedback": records})
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	resp := StatsResponse{
		ClassifierVersion: h.classifier.Version(),
		MinConfidence:     h.classifier.MinConfidence(),
		Adjustments:       h.adjuster.State().Snapshot(),
	}

	if h.feedbackRepo != nil {
		counts, err := h.feedbackRepo.CountByPolarity(c.Request.Context())
		if err != nil {
			h.log.Error("failed to count feedback", logger.Error(err))
		} else {
			resp.FeedbackCounts = counts
		}
	}

	c.JSON(http.StatusOK, resp)
}

// enrich attaches statute sections and constitutional articles to a
// classification result. Empty-query results enumerate the full tables.
func (h *Handler) enrich(result *domain.ClassificationResult) *ClassifyResponse {
	resp := &ClassifyResponse{ClassificationResult: result}

	switch {
	case result.EnumerateAll:
		resp.Sections = h.statutes.AllSections()
		resp.Articles = h.statutes.AllArticles()
	case result.Domain != domain.DomainUnknown:
		resp.Sections = h.statutes.SectionsFor(result.Domain, result.Subdomain)
		resp.Articles = h.statutes.ArticlesFor(result.Domain)
	}

	if resp.Sections == nil {
		resp.Sections = []domain.StatuteSection{}
	}
	if resp.Articles == nil {
		resp.Articles = []domain.ConstitutionArticle{}
	}
	return resp
}
