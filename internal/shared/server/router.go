package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/account"
	googleauth "careerdraft-backend/internal/auth"
	"careerdraft-backend/internal/generation"
	"careerdraft-backend/internal/mail"
	"careerdraft-backend/internal/profile"
	"careerdraft-backend/internal/saveddocs"
	"careerdraft-backend/internal/services/health"
	"careerdraft-backend/internal/shared/config"
	"careerdraft-backend/internal/shared/server/middleware"
	"careerdraft-backend/internal/shared/server/respond"
	"careerdraft-backend/internal/usage"
)

const generateGroup = "GENERATE"

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	GenerationHandler *generation.Handler
	ProfileHandler    *profile.Handler
	UsageHandler      *usage.Handler
	SavedDocsHandler  *saveddocs.Handler
	MailHandler       *mail.Handler
	AccountHandler    *account.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				// Generations hit the completion provider; keep them at a
				// trickle per principal.
				generateGroup: {Rate: 0.2, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/generate") {
					return generateGroup
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	deps.GenerationHandler.RegisterRoutes(api)
	deps.ProfileHandler.RegisterRoutes(api)
	deps.UsageHandler.RegisterRoutes(api)
	deps.SavedDocsHandler.RegisterRoutes(api)
	deps.MailHandler.RegisterRoutes(api)
	deps.AccountHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
