package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/repositories/memory"
)

func TestCredentialService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCredentialRepository()
	svc := services.NewCredentialService(repo)

	created, err := svc.Register(ctx, dto.RegistrarRequest{
		Nome: "Bruno", Email: "bruno@example.com", Senha: "secret1", CPF: "123.456.789-00",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "123.456.789-00", created.CPF)

	stored, err := repo.FindByEmail(ctx, "bruno@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.SenhaHash, "passwords are stored hashed")

	identity, err := svc.Login(ctx, dto.LoginRequest{Email: "bruno@example.com", Senha: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, identity.ID)
	assert.Equal(t, "Bruno", identity.Name)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "bruno@example.com", Senha: "secret2"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, services.MsgInvalidCredentials, apperrors.UserMessage(err, ""))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Senha: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCredentialService_RegisterRulesInOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCredentialRepository()
	svc := services.NewCredentialService(repo)
	_, err := svc.Register(ctx, dto.RegistrarRequest{Nome: "Ana", Email: "ana@example.com", Senha: "secret1", CPF: "111"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     dto.RegistrarRequest
		wantErr error
		wantMsg string
	}{
		{"missing name", dto.RegistrarRequest{Email: "x@example.com", Senha: "secret1"}, apperrors.ErrValidation, services.MsgRequiredFields},
		{"missing password beats bad email", dto.RegistrarRequest{Nome: "X", Email: "bad"}, apperrors.ErrValidation, services.MsgRequiredFields},
		{"bad email", dto.RegistrarRequest{Nome: "X", Email: "x@example", Senha: "1"}, apperrors.ErrValidation, services.MsgInvalidEmail},
		{"email with space", dto.RegistrarRequest{Nome: "X", Email: "x y@example.com", Senha: "secret1"}, apperrors.ErrValidation, services.MsgInvalidEmail},
		{"short password", dto.RegistrarRequest{Nome: "X", Email: "x@example.com", Senha: "12345"}, apperrors.ErrValidation, services.MsgShortPassword},
		{"short multibyte password", dto.RegistrarRequest{Nome: "X", Email: "x@example.com", Senha: "ãããã"}, apperrors.ErrValidation, services.MsgShortPassword},
		{"duplicate email", dto.RegistrarRequest{Nome: "X", Email: "ANA@example.com", Senha: "secret1", CPF: "111"}, apperrors.ErrDuplicate, services.MsgEmailTaken},
		{"duplicate cpf", dto.RegistrarRequest{Nome: "X", Email: "x@example.com", Senha: "secret1", CPF: "111"}, apperrors.ErrDuplicate, services.MsgCPFTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, apperrors.UserMessage(err, ""))
		})
	}
}

func TestCredentialService_PasswordLengthCountsCharacters(t *testing.T) {
	svc := services.NewCredentialService(memory.NewCredentialRepository())

	_, err := svc.Register(context.Background(), dto.RegistrarRequest{Nome: "Ção", Email: "cao@example.com", Senha: "çãõéíú"})
	assert.NoError(t, err, "six accented characters meet the minimum")
}

func TestCredentialService_DuplicateOnSaveKeepsMessage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewCredentialService(repo)

	repo.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil).Once()
	repo.On("ExistsByCPF", mock.Anything, "123.456.789-00").Return(false, nil).Once()
	repo.On("SaveUsuario", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: usuarios_cpf_key", apperrors.ErrDuplicate)).Once()

	_, err := svc.Register(ctx, dto.RegistrarRequest{Nome: "A", Email: "a@example.com", Senha: "secret1", CPF: "123.456.789-00"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, services.MsgCPFTaken, apperrors.UserMessage(err, ""))
	assert.NotContains(t, err.Error(), "%!")
	repo.AssertExpectations(t)
}

func TestCredentialService_StorageFailures(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewCredentialService(repo)
	boom := errors.New("connection reset")

	repo.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, boom).Once()
	_, err := svc.Login(ctx, dto.LoginRequest{Email: "a@example.com", Senha: "secret1"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)

	repo.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil).Once()
	repo.On("SaveUsuario", mock.Anything, mock.Anything).
		Return(nil, errors.New("usuario violates usuarios_cpf_key: "+apperrors.ErrDuplicate.Error())).Once()
	_, err = svc.Register(ctx, dto.RegistrarRequest{Nome: "A", Email: "a@example.com", Senha: "secret1"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "cpf"))
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate, "a plain error is not promoted to a duplicate")

	repo.AssertExpectations(t)
}
