package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindvibe/internal/domain"
	"mindvibe/internal/repository"
)

// OnboardingHandler mantiene dependencias para el endpoint de onboarding.
type OnboardingHandler struct {
	logger   *zap.Logger
	profiles repository.UserProfileRepository
}

// NewOnboardingHandler crea una instancia de OnboardingHandler.
func NewOnboardingHandler(logger *zap.Logger, profiles repository.UserProfileRepository) *OnboardingHandler {
	return &OnboardingHandler{
		logger:   logger,
		profiles: profiles,
	}
}

// SaveOnboarding maneja POST /save-onboarding.
func (h *OnboardingHandler) SaveOnboarding(c *gin.Context) {
	var req struct {
		Name                   string   `json:"name"`
		Gender                 string   `json:"gender"`
		Age                    string   `json:"age"`
		SelfKnowledge          string   `json:"self_knowledge"`
		BottlingFeelings       string   `json:"bottling_feelings"`
		Overthinking           string   `json:"overthinking"`
		AnxietyMoments         string   `json:"anxiety_moments"`
		ReferredByProfessional string   `json:"referred_by_professional"`
		SupportAreas           []string `json:"support_areas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid onboarding request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile := domain.UserProfile{
		ID:                     uuid.NewString(),
		Name:                   req.Name,
		Gender:                 req.Gender,
		Age:                    req.Age,
		SelfKnowledge:          req.SelfKnowledge,
		BottlingFeelings:       req.BottlingFeelings,
		Overthinking:           req.Overthinking,
		AnxietyMoments:         req.AnxietyMoments,
		ReferredByProfessional: req.ReferredByProfessional,
		SupportAreas:           req.SupportAreas,
		CreatedAt:              time.Now().UTC(),
	}

	if err := h.profiles.Create(c.Request.Context(), profile); err != nil {
		h.logger.Error("save onboarding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save onboarding data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user_id": profile.ID,
		"message": "Onboarding data saved successfully",
	})
}
