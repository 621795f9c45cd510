package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/utils"
)

type navigationHandler struct {
	router    portssvc.ViewRouterSvc
	dashboard portssvc.DashboardSvc
	posthog   *utils.PosthogClientWrapper
}

func registerNavigationRoutes(optional, authed *gin.RouterGroup, services *portssvc.ServiceContainer, ph *utils.PosthogClientWrapper) {
	h := &navigationHandler{router: services.Router, dashboard: services.Dashboard, posthog: ph}

	optional.GET("/pages/:page", h.resolvePage)
	authed.GET("/navigation", h.navigation)
	authed.GET("/dashboard", h.dashboardSummary)
}

// resolvePage godoc
// @Summary Resolve a page request
// @Description Resolves the page to show. Anonymous visitors land on login; unknown or forbidden pages fall back to the dashboard.
// @Tags navigation
// @Produce json
// @Param page path string true "Requested page"
// @Success 200 {object} dto.PageResolutionResponse
// @Router /pages/{page} [get]
func (h *navigationHandler) resolvePage(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	requested := c.Param("page")
	res := h.router.Resolve(sess, requested)

	middleware.PosthogEvent(c, h.posthog, "page_viewed", map[string]any{
		"requested":  requested,
		"page":       string(res.Page),
		"redirected": res.Redirected,
	})

	c.JSON(http.StatusOK, dto.PageResolutionResponse{
		Requested:  requested,
		Page:       res.Page,
		Redirected: res.Redirected,
	})
}

// navigation godoc
// @Summary List navigation entries
// @Description Lists the pages the session user's role may open, in display order.
// @Tags navigation
// @Produce json
// @Success 200 {object} dto.NavigationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /navigation [get]
func (h *navigationHandler) navigation(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	pages := h.router.Navigation(sess)
	entries := make([]dto.NavigationEntry, len(pages))
	for i, p := range pages {
		entries[i] = dto.NavigationEntry{Page: p, Path: "/pages/" + string(p)}
	}
	c.JSON(http.StatusOK, dto.NavigationResponse{Pages: entries})
}

// dashboardSummary godoc
// @Summary Dashboard summary
// @Description Totals, pending fees and projects near their deadline for the session user.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *navigationHandler) dashboardSummary(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	c.JSON(http.StatusOK, h.dashboard.Summary(c.Request.Context(), sess))
}
