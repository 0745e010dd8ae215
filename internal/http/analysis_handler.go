package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindvibe/internal/domain"
	"mindvibe/internal/repository"
	"mindvibe/internal/service"
)

// AnalysisHandler mantiene dependencias para los endpoints de analisis.
type AnalysisHandler struct {
	logger      *zap.Logger
	analysisSvc *service.AnalysisService
	historySvc  *service.HistoryService
	feedback    repository.FeedbackRepository
	limiter     service.RateLimiter
}

// NewAnalysisHandler crea una instancia de AnalysisHandler con dependencias necesarias.
func NewAnalysisHandler(
	logger *zap.Logger,
	analysisSvc *service.AnalysisService,
	historySvc *service.HistoryService,
	feedback repository.FeedbackRepository,
	limiter service.RateLimiter,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:      logger,
		analysisSvc: analysisSvc,
		historySvc:  historySvc,
		feedback:    feedback,
		limiter:     limiter,
	}
}

// analysisResponse agrega los campos de compatibilidad que espera el frontend.
type analysisResponse struct {
	domain.MoodAnalysis
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// AnalyzeMood maneja POST /analyze-mood.
func (h *AnalysisHandler) AnalyzeMood(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	if h.limiter != nil {
		key := req.UserID
		if key == "" {
			key = c.ClientIP()
		}
		if !h.limiter.Allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
	}

	analysis, err := h.analysisSvc.Analyze(c.Request.Context(), req.Text, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTextTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text too short for analysis"})
		case errors.Is(err, service.ErrPersistence):
			h.logger.Error("persist analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save entry. Please try again."})
		default:
			// Mensaje generico a proposito: superficie sensible.
			h.logger.Error("analyze mood failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, analysisResponse{
		MoodAnalysis: analysis,
		Polarity:     polarityFor(analysis.SentimentLabel),
		Subjectivity: analysis.SentimentScore,
	})
}

func polarityFor(label string) float64 {
	if domain.IsPositiveLabel(label) {
		return 1.0
	}
	if domain.IsNegativeLabel(label) {
		return -1.0
	}
	return 0.0
}

// MoodHistory maneja GET /mood-history.
func (h *AnalysisHandler) MoodHistory(c *gin.Context) {
	entries, stats, err := h.historySvc.RecentHistory(c.Request.Context())
	if err != nil {
		h.logger.Error("mood history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load history. Please try again."})
		return
	}

	if entries == nil {
		entries = []domain.MoodAnalysis{}
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"stats":   stats,
	})
}

// RecommendationFeedback maneja POST /recommendation-feedback.
func (h *AnalysisHandler) RecommendationFeedback(c *gin.Context) {
	var req struct {
		EntryID string   `json:"entry_id" binding:"required"`
		Helpful *bool    `json:"helpful" binding:"required"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	feedback := domain.RecommendationFeedback{
		ID:        uuid.NewString(),
		EntryID:   req.EntryID,
		Helpful:   *req.Helpful,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.feedback.Create(c.Request.Context(), feedback); err != nil {
		h.logger.Error("save feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "feedback_saved", "id": feedback.ID})
}
