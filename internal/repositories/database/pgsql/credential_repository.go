package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/community_connect/internal/apperrors"
	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	"github.com/SscSPs/community_connect/internal/models"
)

type PgxCredentialRepository struct {
	BaseRepository
}

func newPgxCredentialRepository(db *pgxpool.Pool) portsrepo.CredentialRepositoryFacade {
	return &PgxCredentialRepository{BaseRepository{Pool: db}}
}

// Ensure PgxCredentialRepository implements the facade
var _ portsrepo.CredentialRepositoryFacade = (*PgxCredentialRepository)(nil)

func (r *PgxCredentialRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	query := `
		SELECT id, nome, email, senha, cpf, endereco, telefone, criado_em
		FROM usuarios
		WHERE lower(email) = lower($1);
	`
	var u models.Usuario
	err := r.Pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&u.ID,
		&u.Nome,
		&u.Email,
		&u.SenhaHash,
		&u.CPF,
		&u.Endereco,
		&u.Telefone,
		&u.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}
	return &u, nil
}

func (r *PgxCredentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE lower(email) = lower($1));`,
		strings.TrimSpace(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check usuario email: %w", err)
	}
	return exists, nil
}

func (r *PgxCredentialRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE cpf = $1);`,
		cpf,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check usuario cpf: %w", err)
	}
	return exists, nil
}

func (r *PgxCredentialRepository) SaveUsuario(ctx context.Context, u models.Usuario) (*models.Usuario, error) {
	query := `
		INSERT INTO usuarios (nome, email, senha, cpf, endereco, telefone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, criado_em;
	`
	err := r.Pool.QueryRow(ctx, query,
		u.Nome,
		u.Email,
		u.SenhaHash,
		u.CPF,
		u.Endereco,
		u.Telefone,
	).Scan(&u.ID, &u.CriadoEm)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return nil, fmt.Errorf("usuario violates %s: %w", constraint, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save usuario: %w", err)
	}
	return &u, nil
}
