package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
)

const (
	msgEndBeforeStart  = "A data final não pode ser anterior à data de início."
	msgManagerRequired = "Por favor, selecione um responsável pelo projeto."
)

type projectService struct {
	BaseService
	store *store.Store
}

// NewProjectService creates the project service.
func NewProjectService(st *store.Store) portssvc.ProjectSvc {
	return &projectService{store: st}
}

func (s *projectService) ListProjects(_ context.Context) []domain.Project {
	return s.store.Projects()
}

// CreateProject validates the dates and the manager, promotes a plain MEMBER
// manager to PROJECT_MANAGER and adds the project.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	in := domain.NewProject{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		ManagerID:   req.ManagerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      req.Status,
	}
	if err := in.ValidateDates(); err != nil {
		return nil, apperrors.NewAppError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err), msgEndBeforeStart)
	}
	if in.Budget.IsNegative() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "O orçamento não pode ser negativo.")
	}
	if err := s.ensureManager(ctx, in.ManagerID); err != nil {
		return nil, err
	}

	p := s.store.AddProject(in)
	s.LogInfo(ctx, "Project created", slog.Int("project_id", p.ID), slog.Int("manager_id", p.ManagerID))
	return &p, nil
}

func (s *projectService) ensureManager(ctx context.Context, managerID int) error {
	manager, ok := s.store.Member(managerID)
	if !ok {
		return apperrors.NewAppError(apperrors.ErrValidation, msgManagerRequired)
	}
	if manager.Role == domain.RoleMember {
		s.store.ChangeMemberRole(manager.ID, domain.RoleProjectManager)
		s.LogInfo(ctx, "Member promoted to project manager", slog.Int("member_id", manager.ID))
	}
	return nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int, req dto.UpdateProjectRequest) (*domain.Project, error) {
	current, ok := s.store.Project(id)
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, apperrors.ErrNotFound)
	}

	assignTrimmed(&current.Name, req.Name)
	assignTrimmed(&current.Description, req.Description)
	if req.StartDate != nil {
		current.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		current.EndDate = *req.EndDate
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, apperrors.NewAppError(apperrors.ErrValidation, "O orçamento não pode ser negativo.")
		}
		current.Budget = *req.Budget
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewAppError(apperrors.ErrValidation, "Situação inválida: %s", *req.Status)
		}
		current.Status = *req.Status
	}
	if req.StartDate != nil || req.EndDate != nil {
		dates := domain.NewProject{StartDate: current.StartDate, EndDate: current.EndDate}
		if err := dates.ValidateDates(); err != nil {
			return nil, apperrors.NewAppError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err), msgEndBeforeStart)
		}
	}
	if req.ManagerID != nil && *req.ManagerID != current.ManagerID {
		if err := s.ensureManager(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
		current.ManagerID = *req.ManagerID
	}

	if !s.store.UpdateProject(current) {
		return nil, fmt.Errorf("project %d: %w", id, apperrors.ErrNotFound)
	}
	s.LogDebug(ctx, "Project updated", slog.Int("project_id", id))
	return &current, nil
}

func (s *projectService) AttachFile(ctx context.Context, id int, fileName string) (*domain.Project, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Nome de arquivo obrigatório.")
	}
	if !s.store.AttachProjectFile(id, fileName) {
		return nil, fmt.Errorf("project %d: %w", id, apperrors.ErrNotFound)
	}
	p, _ := s.store.Project(id)
	s.LogInfo(ctx, "File attached to project", slog.Int("project_id", id), slog.String("file", fileName))
	return &p, nil
}

// ManagerName resolves the weak manager reference; unknown ids give "".
func (s *projectService) ManagerName(managerID int) string {
	if m, ok := s.store.Member(managerID); ok {
		return m.Name
	}
	return ""
}
