package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/community_connect/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	ManagerID   int                  `json:"managerId" binding:"required,min=1"`
	StartDate   string               `json:"startDate" binding:"required"`
	EndDate     string               `json:"endDate" binding:"required"`
	Budget      decimal.Decimal      `json:"budget"`
	Status      domain.ProjectStatus `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED SUSPENDED"`
}

// UpdateProjectRequest defines the editable project fields.
type UpdateProjectRequest struct {
	Name        *string               `json:"name" binding:"omitempty,min=1"`
	Description *string               `json:"description"`
	ManagerID   *int                  `json:"managerId" binding:"omitempty,min=1"`
	StartDate   *string               `json:"startDate"`
	EndDate     *string               `json:"endDate"`
	Budget      *decimal.Decimal      `json:"budget"`
	Status      *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED SUSPENDED"`
}

// AttachFileRequest names a file to attach to a project.
type AttachFileRequest struct {
	FileName string `json:"fileName" binding:"required,max=255"`
}

// ProjectResponse mirrors domain.Project plus derived progress.
type ProjectResponse struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	ManagerID    int                  `json:"managerId"`
	ManagerName  string               `json:"managerName,omitempty"`
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	Budget       decimal.Decimal      `json:"budget"`
	Status       domain.ProjectStatus `json:"status"`
	Files        []string             `json:"files"`
	Progress     *float64             `json:"progress,omitempty"`
	NearDeadline bool                 `json:"nearDeadline"`
}

// ToProjectResponse converts a domain.Project; managerName may be empty.
func ToProjectResponse(p domain.Project, managerName string, now time.Time) ProjectResponse {
	res := ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		ManagerID:    p.ManagerID,
		ManagerName:  managerName,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Budget:       p.Budget,
		Status:       p.Status,
		Files:        append([]string{}, p.Files...),
		NearDeadline: p.IsNearDeadline(now),
	}
	if progress, ok := p.Progress(now); ok {
		res.Progress = &progress
	}
	return res
}
