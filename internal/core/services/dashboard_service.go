package services

import (
	"context"

	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
)

type dashboardService struct {
	BaseService
	store *store.Store
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(st *store.Store) portssvc.DashboardSvc {
	return &dashboardService{store: st}
}

func (s *dashboardService) Summary(_ context.Context, sess *domain.Session) dto.DashboardResponse {
	now := s.store.Now()
	members := s.store.Members()
	projects := s.store.Projects()

	names := make(map[int]string, len(members))
	res := dto.DashboardResponse{
		WelcomeMessage:         s.store.Settings().CustomTexts.WelcomeMessage,
		TotalMembers:           len(members),
		TotalProjects:          len(projects),
		MembersWithPendingFees: []dto.PendingFeeMember{},
		NearDeadlineProjects:   []dto.ProjectResponse{},
		MyPendingFees:          []dto.MonthlyFeeResponse{},
		PixKey:                 s.store.PixKey(),
	}

	for _, m := range members {
		names[m.ID] = m.Name
		pending := m.PendingFees()
		if len(pending) == 0 {
			continue
		}
		res.PendingFeeCount += len(pending)
		res.MembersWithPendingFees = append(res.MembersWithPendingFees, dto.PendingFeeMember{
			MemberID:     m.ID,
			Name:         m.Name,
			PendingCount: len(pending),
			PendingTotal: m.PendingTotal(),
		})
	}

	for _, p := range projects {
		if p.Status == domain.ProjectInProgress {
			res.ActiveProjects++
		}
		if p.IsNearDeadline(now) {
			res.NearDeadlineProjects = append(res.NearDeadlineProjects, dto.ToProjectResponse(p, names[p.ManagerID], now))
		}
	}

	if sess.Active() {
		for _, fee := range sess.CurrentUser.PendingFees() {
			res.MyPendingFees = append(res.MyPendingFees, dto.MonthlyFeeResponse{
				Month:  int(fee.Month),
				Year:   fee.Year,
				Status: fee.Status,
				Amount: fee.Amount,
			})
		}
	}
	return res
}
