package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
)

type projectHandler struct {
	projects portssvc.ProjectSvc
	now      func() time.Time
}

func registerProjectRoutes(authed *gin.RouterGroup, projects portssvc.ProjectSvc, now func() time.Time) {
	h := &projectHandler{projects: projects, now: now}

	p := authed.Group("/projects", middleware.RequirePage(policy.PageProjects))
	{
		p.GET("", h.listProjects)
		p.POST("", h.createProject)
		p.PUT("/:id", h.updateProject)
		p.POST("/:id/files", h.attachFile)
	}
}

func (h *projectHandler) toResponse(p domain.Project) dto.ProjectResponse {
	return dto.ToProjectResponse(p, h.projects.ManagerName(p.ManagerID), h.now())
}

// listProjects godoc
// @Summary List projects
// @Description Includes manager name, progress and the near-deadline flag.
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects := h.projects.ListProjects(c.Request.Context())
	res := make([]dto.ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = h.toResponse(p)
	}
	c.JSON(http.StatusOK, res)
}

// createProject godoc
// @Summary Create a project
// @Description A manager holding the MEMBER role is promoted to PROJECT_MANAGER.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	project, err := h.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(*project))
}

// updateProject godoc
// @Summary Edit a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	project, err := h.projects.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*project))
}

// attachFile godoc
// @Summary Attach a file name to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param file body dto.AttachFileRequest true "File"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/files [post]
func (h *projectHandler) attachFile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AttachFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	project, err := h.projects.AttachFile(c.Request.Context(), id, req.FileName)
	if err != nil {
		respondError(c, err, "Failed to attach file")
		return
	}
	c.JSON(http.StatusOK, h.toResponse(*project))
}
