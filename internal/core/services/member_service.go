package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
)

type memberService struct {
	BaseService
	store *store.Store
}

// NewMemberService creates the member service.
func NewMemberService(st *store.Store) portssvc.MemberSvc {
	return &memberService{store: st}
}

func (s *memberService) ListMembers(_ context.Context) []domain.Member {
	return s.store.Members()
}

func (s *memberService) GetMember(_ context.Context, id int) (*domain.Member, error) {
	m, ok := s.store.Member(id)
	if !ok {
		return nil, fmt.Errorf("member %d: %w", id, apperrors.ErrNotFound)
	}
	return &m, nil
}

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	email := strings.TrimSpace(req.Email)
	if _, taken := s.store.MemberByEmail(email); taken {
		return nil, apperrors.NewAppError(apperrors.ErrDuplicate, "Já existe um membro com o email %s", email)
	}
	if req.JoinDate != "" {
		if _, err := time.Parse(domain.DateLayout, req.JoinDate); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrValidation, "Data de entrada inválida: %s", req.JoinDate)
		}
	}

	m := s.store.AddMember(domain.NewMember{
		Name:     strings.TrimSpace(req.Name),
		CPF:      strings.TrimSpace(req.CPF),
		Address:  strings.TrimSpace(req.Address),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    email,
		JoinDate: req.JoinDate,
		Role:     req.Role,
	})
	s.LogInfo(ctx, "Member added", slog.Int("member_id", m.ID), slog.String("role", string(m.Role)))
	return &m, nil
}

func (s *memberService) UpdateMember(ctx context.Context, id int, req dto.UpdateMemberRequest) (*domain.Member, error) {
	current, ok := s.store.Member(id)
	if !ok {
		return nil, fmt.Errorf("member %d: %w", id, apperrors.ErrNotFound)
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if other, taken := s.store.MemberByEmail(email); taken && other.ID != id {
			return nil, apperrors.NewAppError(apperrors.ErrDuplicate, "Já existe um membro com o email %s", email)
		}
		current.Email = email
	}
	assignTrimmed(&current.Name, req.Name)
	assignTrimmed(&current.CPF, req.CPF)
	assignTrimmed(&current.Address, req.Address)
	assignTrimmed(&current.Phone, req.Phone)
	assignTrimmed(&current.AvatarURL, req.AvatarURL)
	if req.BannerURL != nil {
		banner := strings.TrimSpace(*req.BannerURL)
		current.BannerURL = &banner
	}

	if !s.store.UpdateMember(current) {
		return nil, fmt.Errorf("member %d: %w", id, apperrors.ErrNotFound)
	}
	s.LogDebug(ctx, "Member updated", slog.Int("member_id", id))
	return &current, nil
}

func (s *memberService) ChangeRole(ctx context.Context, id int, role domain.Role) (*domain.Member, error) {
	if !role.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Papel inválido: %s", role)
	}
	if !s.store.ChangeMemberRole(id, role) {
		return nil, fmt.Errorf("member %d: %w", id, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Member role changed", slog.Int("member_id", id), slog.String("role", string(role)))
	return s.GetMember(ctx, id)
}

// SetFeeStatus flips one monthly fee. A member without a fee for that month
// is reported as not found.
func (s *memberService) SetFeeStatus(ctx context.Context, id int, req dto.SetFeeStatusRequest) (*domain.Member, error) {
	if !req.Status.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Situação inválida: %s", req.Status)
	}
	if !s.store.SetFeeStatus(id, req.FeeMonth(), req.Year, req.Status) {
		return nil, fmt.Errorf("fee %02d/%d of member %d: %w", req.Month, req.Year, id, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Fee status changed",
		slog.Int("member_id", id),
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
		slog.String("status", string(req.Status)))
	return s.GetMember(ctx, id)
}

func assignTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
