package repositories

import (
	"context"

	"github.com/SscSPs/community_connect/internal/models"
)

// CredentialReader defines lookups on stored credentials.
type CredentialReader interface {
	// FindByEmail returns apperrors.ErrNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)

	// ExistsByEmail reports whether email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByCPF reports whether cpf is already registered.
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
}

// CredentialWriter defines write operations on stored credentials.
type CredentialWriter interface {
	// SaveUsuario inserts u and returns it with id and criado_em filled in.
	// A unique violation is reported as apperrors.ErrDuplicate.
	SaveUsuario(ctx context.Context, u models.Usuario) (*models.Usuario, error)
}

// CredentialRepositoryFacade combines all credential repository interfaces.
type CredentialRepositoryFacade interface {
	CredentialReader
	CredentialWriter
}
