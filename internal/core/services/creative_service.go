package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
)

type creativeService struct {
	BaseService
	store *store.Store
}

// NewCreativeService creates the creative history service. Generation itself
// happens elsewhere; this service only keeps the results.
func NewCreativeService(st *store.Store) portssvc.CreativeSvc {
	return &creativeService{store: st}
}

func (s *creativeService) History(_ context.Context) []domain.CreativeHistoryItem {
	return s.store.CreativeHistory()
}

func (s *creativeService) Record(ctx context.Context, req dto.CreateCreativeItemRequest) (*domain.CreativeHistoryItem, error) {
	if !req.Type.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Tipo de conteúdo inválido: %s", req.Type)
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" || req.Result == "" {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "Prompt e resultado são obrigatórios.")
	}

	item := s.store.AddCreativeHistoryItem(domain.NewCreativeHistoryItem{
		Type:   req.Type,
		Prompt: prompt,
		Result: req.Result,
	})
	s.LogInfo(ctx, "Creative item recorded", slog.Int("item_id", item.ID), slog.String("type", string(item.Type)))
	return &item, nil
}
