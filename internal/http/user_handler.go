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

// UserHandler mantiene dependencias para endpoints de usuarios y auth.
type UserHandler struct {
	logger   *zap.Logger
	profiles store.ProfileStore
	jwtServ  *service.JWTService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, profiles store.ProfileStore, jwtServ *service.JWTService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		profiles: profiles,
		jwtServ:  jwtServ,
	}
}

// CreateUser maneja POST /users. Crea el perfil con las 12 dimensiones en
// not_started y entrega el token de acceso en la misma respuesta.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.profiles.Create(req.Name)
	if err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	user := domain.User{
		ID:        profile.UserID,
		Name:      profile.Name,
		CreatedAt: profile.CreatedAt,
	}

	token, err := h.jwtServ.Generate(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// ListUsers maneja GET /users. Lo usa el cliente de terminal para retomar
// una evaluacion existente.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.profiles.ListUsers()
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// IssueToken maneja POST /auth/token. Renueva el access token de un usuario
// ya registrado.
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.profiles.Load(req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("load profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	user := domain.User{
		ID:        profile.UserID,
		Name:      profile.Name,
		CreatedAt: profile.CreatedAt,
	}

	token, err := h.jwtServ.Generate(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
