package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/service"
	"remiro-ai/internal/store"
)

// ProfileHandler expone el perfil de evaluacion y el reporte final.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles store.ProfileStore
	reports  *service.ReportService
}

func NewProfileHandler(logger *zap.Logger, profiles store.ProfileStore, reports *service.ReportService) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
		reports:  reports,
	}
}

func (h *ProfileHandler) loadProfile(c *gin.Context) (*domain.UserProfile, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return nil, false
	}

	profile, err := h.profiles.Load(claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return nil, false
		}
		h.logger.Error("load profile failed", zap.Error(err), zap.String("user_id", claims.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return nil, false
	}
	return profile, true
}

// GetProfile maneja GET /profile: el perfil completo con analisis por dimension.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetProgress maneja GET /profile/progress: avance resumido sobre las 12 dimensiones.
func (h *ProfileHandler) GetProgress(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	statuses := make(map[string]domain.AssessmentStatus, domain.DimensionCount)
	for _, d := range domain.DimensionOrder {
		statuses[string(d)] = profile.Assessments[d].Status
	}

	c.JSON(http.StatusOK, gin.H{
		"completed":      profile.CompletedCount(),
		"total":          domain.DimensionCount,
		"percent":        profile.CompletionPercent(),
		"next_dimension": profile.NextDimension(),
		"dimensions":     statuses,
	})
}

// GetReport maneja GET /profile/report. El reporte se genera una sola vez y
// queda cacheado en el perfil; si la evaluacion no termino devuelve 409.
func (h *ProfileHandler) GetReport(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	if !profile.IsComplete() {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "assessment not complete",
			"completed": profile.CompletedCount(),
			"total":     domain.DimensionCount,
		})
		return
	}

	if profile.Report == nil {
		profile.Report = h.reports.Generate(c.Request.Context(), profile)
		if err := h.profiles.Save(profile); err != nil {
			h.logger.Error("profile save failed", zap.Error(err), zap.String("user_id", profile.UserID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"report": profile.Report})
}
