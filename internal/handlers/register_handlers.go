package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/community_connect/cmd/docs"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/utils"
)

// currentSession exposes the session gateway to the auth middleware.
type currentSession struct {
	svc portssvc.SessionSvc
}

func (s currentSession) Session() *domain.Session { return s.svc.Current() }

// RegisterRoutes sets up all app server routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.Use(m.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	setupAPIV1Routes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 groups. Public and optional-auth
// routes share the prefix with the authenticated group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	sessions := currentSession{svc: services.Session}

	v1 := r.Group("/api/v1", middleware.PosthogMiddleware(posthogClient))
	public := v1.Group("", middleware.OptionalAuthMiddleware(cfg.JWTSecret, sessions))
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, sessions))

	registerSessionRoutes(public, authed, cfg, services.Session)
	registerNavigationRoutes(public, authed, services, posthogClient)
	registerMemberRoutes(authed, services.Member)
	registerProjectRoutes(authed, services.Project, services.Clock)
	registerFinanceRoutes(authed, services.Finance)
	registerCommunityRoutes(authed, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
