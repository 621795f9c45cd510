package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/models"
)

func TestToRegistrarRequest_TranslatesVocabulary(t *testing.T) {
	got := ToRegistrarRequest(dto.RegisterRequest{
		Name: " Ana ", Email: "ana@x.com", Password: "abcdef",
		CPF: "123", Address: "Rua A", Phone: "(11) 1",
	})
	assert.Equal(t, dto.RegistrarRequest{
		Nome: "Ana", Email: "ana@x.com", Senha: "abcdef",
		CPF: "123", Endereco: "Rua A", Telefone: "(11) 1",
	}, got)
}

func TestUsuarioDTO_LoginShapeOmitsProfile(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id := ToDomainIdentity(models.Usuario{
		ID: 7, Nome: "Ana", Email: "ana@x.com", CPF: NullString("123"), CriadoEm: created,
	})
	assert.Equal(t, domain.AuthIdentity{ID: 7, Name: "Ana", Email: "ana@x.com", CPF: "123", CreatedAt: created}, id)

	short := ToUsuarioDTO(id, false)
	assert.Nil(t, short.CPF)

	full := ToUsuarioDTO(id, true)
	if assert.NotNil(t, full.CPF) {
		assert.Equal(t, "123", *full.CPF)
	}
	assert.Nil(t, full.Endereco)

	assert.Equal(t, id, FromUsuarioDTO(full))
}
