package mapping

import (
	"database/sql"
	"strings"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/models"
)

// ToDomainIdentity converts a stored Usuario to the identity the rest of the system sees.
func ToDomainIdentity(m models.Usuario) domain.AuthIdentity {
	return domain.AuthIdentity{
		ID:        m.ID,
		Name:      m.Nome,
		Email:     m.Email,
		CPF:       m.CPF.String,
		Address:   m.Endereco.String,
		Phone:     m.Telefone.String,
		CreatedAt: m.CriadoEm,
	}
}

// ToUsuarioDTO converts an identity to the wire shape. full adds the optional
// profile fields returned by registration.
func ToUsuarioDTO(id domain.AuthIdentity, full bool) dto.Usuario {
	out := dto.Usuario{
		ID:       id.ID,
		Nome:     id.Name,
		Email:    id.Email,
		CriadoEm: id.CreatedAt,
	}
	if full {
		out.CPF = optional(id.CPF)
		out.Endereco = optional(id.Address)
		out.Telefone = optional(id.Phone)
	}
	return out
}

// FromUsuarioDTO converts the wire shape back to local vocabulary (nome -> name).
func FromUsuarioDTO(u dto.Usuario) domain.AuthIdentity {
	id := domain.AuthIdentity{
		ID:        u.ID,
		Name:      u.Nome,
		Email:     u.Email,
		CreatedAt: u.CriadoEm,
	}
	if u.CPF != nil {
		id.CPF = *u.CPF
	}
	if u.Endereco != nil {
		id.Address = *u.Endereco
	}
	if u.Telefone != nil {
		id.Phone = *u.Telefone
	}
	return id
}

// ToRegistrarRequest translates a local registration form to the service vocabulary.
func ToRegistrarRequest(r dto.RegisterRequest) dto.RegistrarRequest {
	return dto.RegistrarRequest{
		Nome:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Senha:    r.Password,
		CPF:      strings.TrimSpace(r.CPF),
		Endereco: strings.TrimSpace(r.Address),
		Telefone: strings.TrimSpace(r.Phone),
	}
}

// NullString maps "" to NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
