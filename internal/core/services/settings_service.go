package services

import (
	"context"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
)

type settingsService struct {
	BaseService
	store *store.Store
}

// NewSettingsService creates the settings service.
func NewSettingsService(st *store.Store) portssvc.SettingsSvc {
	return &settingsService{store: st}
}

func (s *settingsService) Get(_ context.Context) domain.Settings {
	return s.store.Settings()
}

// Update deep-merges patch. Only the language is constrained; colors and
// texts are free-form.
func (s *settingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	if patch.Language != nil && !patch.Language.Valid() {
		return domain.Settings{}, apperrors.NewAppError(apperrors.ErrValidation, "Idioma não suportado: %s", *patch.Language)
	}
	out := s.store.UpdateSettings(patch)
	s.LogInfo(ctx, "Settings updated")
	return out, nil
}
