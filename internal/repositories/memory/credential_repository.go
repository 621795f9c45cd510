// Package memory holds repository implementations that keep data in process
// memory. They back the authentication service when no database is configured
// and double as fakes in tests.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/community_connect/internal/apperrors"
	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	"github.com/SscSPs/community_connect/internal/models"
)

// CredentialRepository mirrors the usuarios table constraints:
// case-insensitive unique email and unique non-null CPF.
type CredentialRepository struct {
	mu     sync.RWMutex
	rows   []models.Usuario
	nextID int
	now    func() time.Time
}

var _ portsrepo.CredentialRepositoryFacade = (*CredentialRepository)(nil)

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{nextID: 1, now: time.Now}
}

func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*models.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byEmail(email); ok {
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *CredentialRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail(email)
	return ok, nil
}

func (r *CredentialRepository) ExistsByCPF(_ context.Context, cpf string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.rows {
		if u.CPF.Valid && u.CPF.String == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *CredentialRepository) SaveUsuario(_ context.Context, u models.Usuario) (*models.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail(u.Email); ok {
		return nil, fmt.Errorf("usuario violates usuarios_email_key: %w", apperrors.ErrDuplicate)
	}
	if u.CPF.Valid {
		for _, existing := range r.rows {
			if existing.CPF.Valid && existing.CPF.String == u.CPF.String {
				return nil, fmt.Errorf("usuario violates usuarios_cpf_key: %w", apperrors.ErrDuplicate)
			}
		}
	}
	u.ID = r.nextID
	u.CriadoEm = r.now().UTC()
	r.nextID++
	r.rows = append(r.rows, u)
	return &u, nil
}

func (r *CredentialRepository) byEmail(email string) (models.Usuario, bool) {
	email = strings.TrimSpace(email)
	for _, u := range r.rows {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.Usuario{}, false
}
