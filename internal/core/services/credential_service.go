package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/models"
	"github.com/SscSPs/community_connect/internal/utils"
	"github.com/SscSPs/community_connect/internal/utils/mapping"
)

// Messages of the authentication service contract.
const (
	MsgInvalidCredentials = "Email ou senha incorretos"
	MsgRequiredFields     = "Nome, email e senha são obrigatórios"
	MsgInvalidEmail       = "Email inválido"
	MsgShortPassword      = "A senha deve ter no mínimo 6 caracteres"
	MsgEmailTaken         = "Este email já está cadastrado"
	MsgCPFTaken           = "Este CPF já está cadastrado"
	MsgAccountCreated     = "Conta criada com sucesso!"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type credentialService struct {
	BaseService
	repo     portsrepo.CredentialRepositoryFacade
	validate *validator.Validate
}

// NewCredentialService creates the service behind /api/login and /api/registrar.
func NewCredentialService(repo portsrepo.CredentialRepositoryFacade) portssvc.CredentialSvc {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return &credentialService{repo: repo, validate: v}
}

// Login checks an email/password pair. Any mismatch, including an unknown
// email, is reported as apperrors.ErrInvalidCredentials.
func (s *credentialService) Login(ctx context.Context, req dto.LoginRequest) (domain.AuthIdentity, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.AuthIdentity{}, apperrors.NewAppError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
		}
		s.LogError(ctx, err, "Failed to look up usuario")
		return domain.AuthIdentity{}, fmt.Errorf("login lookup: %w", err)
	}
	if !utils.CheckPasswordHash(req.Senha, u.SenhaHash) {
		return domain.AuthIdentity{}, apperrors.NewAppError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	s.LogInfo(ctx, "Usuario authenticated", slog.Int("usuario_id", u.ID))
	return mapping.ToDomainIdentity(*u), nil
}

// Register applies the registration rules in their contractual order:
// required fields, email format, password length, unique email, unique CPF.
func (s *credentialService) Register(ctx context.Context, req dto.RegistrarRequest) (domain.AuthIdentity, error) {
	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.TrimSpace(req.Email)
	req.CPF = strings.TrimSpace(req.CPF)

	checks := []struct {
		value any
		tag   string
		msg   string
	}{
		{req.Nome, "required", MsgRequiredFields},
		{req.Email, "required", MsgRequiredFields},
		{req.Senha, "required", MsgRequiredFields},
		{req.Email, "loose_email", MsgInvalidEmail},
		// Length counts code points; characters outside the BMP count once.
		{[]rune(req.Senha), fmt.Sprintf("min=%d", utils.MinPasswordLength), MsgShortPassword},
	}
	for _, c := range checks {
		if err := s.validate.Var(c.value, c.tag); err != nil {
			return domain.AuthIdentity{}, apperrors.NewAppError(apperrors.ErrValidation, "%s", c.msg)
		}
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return domain.AuthIdentity{}, fmt.Errorf("register: %w", err)
	}
	if taken {
		return domain.AuthIdentity{}, apperrors.NewAppError(apperrors.ErrDuplicate, MsgEmailTaken)
	}
	if req.CPF != "" {
		taken, err = s.repo.ExistsByCPF(ctx, req.CPF)
		if err != nil {
			s.LogError(ctx, err, "Failed to check CPF uniqueness")
			return domain.AuthIdentity{}, fmt.Errorf("register: %w", err)
		}
		if taken {
			return domain.AuthIdentity{}, apperrors.NewAppError(apperrors.ErrDuplicate, MsgCPFTaken)
		}
	}

	hash, err := utils.HashPassword(req.Senha)
	if err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("register: hashing password: %w", err)
	}

	saved, err := s.repo.SaveUsuario(ctx, models.Usuario{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: hash,
		CPF:       mapping.NullString(req.CPF),
		Endereco:  mapping.NullString(strings.TrimSpace(req.Endereco)),
		Telefone:  mapping.NullString(strings.TrimSpace(req.Telefone)),
	})
	if err != nil {
		// a concurrent registration won the race on a unique index
		if errors.Is(err, apperrors.ErrDuplicate) {
			msg := MsgEmailTaken
			if strings.Contains(err.Error(), "cpf") {
				msg = MsgCPFTaken
			}
			return domain.AuthIdentity{}, apperrors.NewAppError(err, "%s", msg)
		}
		s.LogError(ctx, err, "Failed to save usuario")
		return domain.AuthIdentity{}, fmt.Errorf("register: %w", err)
	}

	s.LogInfo(ctx, "Usuario registered", slog.Int("usuario_id", saved.ID))
	return mapping.ToDomainIdentity(*saved), nil
}
