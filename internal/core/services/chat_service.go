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
	"github.com/SscSPs/community_connect/internal/utils/pagination"
)

type chatService struct {
	BaseService
	store *store.Store
}

// NewChatService creates the chat service.
func NewChatService(st *store.Store) portssvc.ChatSvc {
	return &chatService{store: st}
}

// ListMessages returns the newest page of messages older than the cursor, in
// chronological order. NextToken is set while older messages remain.
func (s *chatService) ListMessages(ctx context.Context, params dto.ListMessagesParams) (*dto.ListMessagesResponse, error) {
	limit := pagination.ClampLimit(params.Limit)
	all := s.store.ChatMessages()

	end := len(all)
	if params.NextToken != "" {
		_, beforeID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			s.LogDebug(ctx, "Rejected chat cursor", slog.String("error", err.Error()))
			return nil, apperrors.NewAppError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err), "Token de paginação inválido.")
		}
		end = 0
		for i, m := range all {
			if m.ID < beforeID {
				end = i + 1
			}
		}
	}

	start := end - limit
	if start < 0 {
		start = 0
	}
	page := make([]domain.ChatMessage, end-start)
	copy(page, all[start:end])

	res := &dto.ListMessagesResponse{Messages: page}
	if start > 0 {
		oldest := page[0]
		token := pagination.EncodeToken(oldest.Timestamp, oldest.ID)
		res.NextToken = &token
	}
	return res, nil
}

// PostMessage appends a message from the session user.
func (s *chatService) PostMessage(ctx context.Context, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "A mensagem não pode estar vazia.")
	}
	msg, ok := s.store.AddChatMessage(text)
	if !ok {
		return nil, apperrors.ErrNoSession
	}
	s.LogDebug(ctx, "Chat message posted", slog.Int("message_id", msg.ID), slog.Int("sender_id", msg.SenderID))
	return &msg, nil
}
