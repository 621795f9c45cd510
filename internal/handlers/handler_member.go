package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
)

type memberHandler struct {
	members portssvc.MemberSvc
}

// registerMemberRoutes sets up the member directory (admin only) and the
// session user's own profile (any member).
func registerMemberRoutes(authed *gin.RouterGroup, members portssvc.MemberSvc) {
	h := &memberHandler{members: members}

	m := authed.Group("/members", middleware.RequirePage(policy.PageMembers))
	{
		m.GET("", h.listMembers)
		m.POST("", h.createMember)
		m.PUT("/:id", h.updateMember)
		m.PATCH("/:id/role", h.changeRole)
		m.PATCH("/:id/fees", h.setFeeStatus)
	}

	p := authed.Group("/profile", middleware.RequirePage(policy.PageProfile))
	{
		p.GET("", h.getProfile)
		p.PUT("", h.updateProfile)
	}
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListMemberResponse(h.members.ListMembers(c.Request.Context())))
}

// createMember godoc
// @Summary Add a member
// @Description Adds a member with three pending fees (January to March of the current year) at the configured fee amount.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.members.CreateMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create member")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Member created", slog.Int("member_id", member.ID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(*member))
}

// updateMember godoc
// @Summary Edit a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.members.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// changeRole godoc
// @Summary Change a member's role
// @Description Takes effect immediately, including for the session user.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param role body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/role [patch]
func (h *memberHandler) changeRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.members.ChangeRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondError(c, err, "Failed to change role")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// setFeeStatus godoc
// @Summary Mark a monthly fee
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param fee body dto.SetFeeStatusRequest true "Fee month and status"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/fees [patch]
func (h *memberHandler) setFeeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SetFeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.members.SetFeeStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update fee")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// getProfile godoc
// @Summary Show the session user's profile
// @Description Users without a member record see the profile built at login.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.MemberResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *memberHandler) getProfile(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	member, err := h.members.GetMember(c.Request.Context(), sess.CurrentUser.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.ToMemberResponse(*sess.CurrentUser))
			return
		}
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// updateProfile godoc
// @Summary Edit the session user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "The session user has no member record"
// @Security BearerAuth
// @Router /profile [put]
func (h *memberHandler) updateProfile(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.members.UpdateMember(c.Request.Context(), sess.CurrentUser.ID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}
