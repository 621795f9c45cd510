package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
)

// communityHandler serves chat, creative history and settings.
type communityHandler struct {
	chat     portssvc.ChatSvc
	creative portssvc.CreativeSvc
	settings portssvc.SettingsSvc
}

func registerCommunityRoutes(authed *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &communityHandler{chat: services.Chat, creative: services.Creative, settings: services.Settings}

	chat := authed.Group("/chat", middleware.RequirePage(policy.PageChat))
	{
		chat.GET("/messages", h.listMessages)
		chat.POST("/messages", h.postMessage)
	}

	creative := authed.Group("/creative", middleware.RequirePage(policy.PageCreative))
	{
		creative.GET("/history", h.creativeHistory)
		creative.POST("/history", h.recordCreative)
	}

	// every page reads the theme; only admins change it
	authed.GET("/settings", h.getSettings)
	authed.PATCH("/settings", middleware.RequirePage(policy.PageSettings), h.updateSettings)
}

// listMessages godoc
// @Summary Read the chat log
// @Description Returns a chronological page; nextToken points at older messages.
// @Tags chat
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param next_token query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /chat/messages [get]
func (h *communityHandler) listMessages(c *gin.Context) {
	var params dto.ListMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.chat.ListMessages(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, res)
}

// postMessage godoc
// @Summary Post to the chat
// @Description The author is the session user.
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.PostMessageRequest true "Message"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /chat/messages [post]
func (h *communityHandler) postMessage(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	msg, err := h.chat.PostMessage(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err, "Failed to post message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// creativeHistory godoc
// @Summary List generated content
// @Tags creative
// @Produce json
// @Success 200 {array} domain.CreativeHistoryItem
// @Security BearerAuth
// @Router /creative/history [get]
func (h *communityHandler) creativeHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.creative.History(c.Request.Context()))
}

// recordCreative godoc
// @Summary Record generated content
// @Tags creative
// @Accept json
// @Produce json
// @Param item body dto.CreateCreativeItemRequest true "Generation result"
// @Success 201 {object} domain.CreativeHistoryItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /creative/history [post]
func (h *communityHandler) recordCreative(c *gin.Context) {
	var req dto.CreateCreativeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := h.creative.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record content")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// getSettings godoc
// @Summary Read the UI settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Security BearerAuth
// @Router /settings [get]
func (h *communityHandler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Get(c.Request.Context()))
}

// updateSettings godoc
// @Summary Patch the UI settings
// @Description Omitted fields keep their value.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body domain.SettingsPatch true "Fields to change"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [patch]
func (h *communityHandler) updateSettings(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	settings, err := h.settings.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
