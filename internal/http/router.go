package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"remiro-ai/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	userH *UserHandler,
	chatH *ChatHandler,
	profileH *ProfileHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", userH.CreateUser)
	users.GET("", userH.ListUsers)

	auth := r.Group("/auth")
	auth.POST("/token", userH.IssueToken)

	// Todo lo conversacional y el perfil requieren token.
	protected := r.Group("")
	protected.Use(JWTAuthMiddleware(jwtServ))
	protected.POST("/session", chatH.CreateSession)
	protected.POST("/message", chatH.PostMessage)
	protected.GET("/profile", profileH.GetProfile)
	protected.GET("/profile/progress", profileH.GetProgress)
	protected.GET("/profile/report", profileH.GetReport)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
