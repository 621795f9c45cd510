package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/utils"
)

// User-facing messages of the gateway, in the application's language.
const (
	msgLoginFieldsRequired    = "Por favor, preencha email e senha"
	msgRegisterFieldsRequired = "Por favor, preencha nome, email e senha"
	msgPasswordTooShort       = "A senha deve ter pelo menos 6 caracteres"
	msgAlreadyAuthenticated   = "Já existe uma sessão ativa. Saia antes de entrar novamente."
	msgRegistered             = "Conta criada com sucesso!"

	synthesizedBannerURL = "https://picsum.photos/1000/300"
)

type sessionService struct {
	BaseService
	client   portssvc.AuthServiceClient
	store    *store.Store
	recorder AuthRecorder
	newID    func() string
	ttl      time.Duration
}

// SessionServiceOption is a functional option for configuring the session service
type SessionServiceOption func(*sessionService)

// WithAuthRecorder reports login and registration outcomes to r.
func WithAuthRecorder(r AuthRecorder) SessionServiceOption {
	return func(s *sessionService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithSessionIDs replaces the session id generator.
func WithSessionIDs(gen func() string) SessionServiceOption {
	return func(s *sessionService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithSessionTTL makes sessions lapse d after login. Zero keeps them until logout.
func WithSessionTTL(d time.Duration) SessionServiceOption {
	return func(s *sessionService) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// NewSessionService creates the Session/Auth Gateway.
func NewSessionService(client portssvc.AuthServiceClient, st *store.Store, options ...SessionServiceOption) portssvc.SessionSvc {
	svc := &sessionService{
		client:   client,
		store:    st,
		recorder: noopRecorder{},
		newID:    uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		s.recorder.IncAuthAttempt(opLogin, outcomeInvalid)
		return nil, apperrors.NewAppError(apperrors.ErrValidation, msgLoginFieldsRequired)
	}
	if s.store.Session() != nil {
		s.recorder.IncAuthAttempt(opLogin, outcomeConflict)
		return nil, apperrors.NewAppError(apperrors.ErrAlreadyAuthenticated, msgAlreadyAuthenticated)
	}

	identity, err := s.client.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			s.recorder.IncAuthAttempt(opLogin, outcomeRejected)
			s.LogInfo(ctx, "Login rejected by authentication service", slog.String("email", email))
		default:
			s.recorder.IncAuthAttempt(opLogin, outcomeUnavailable)
			s.LogError(ctx, err, "Login failed")
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	user := s.sessionUser(identity, email, password)
	now := s.store.Now().UTC()
	sess := domain.Session{ID: s.newID(), CurrentUser: &user, StartedAt: now}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}
	if !s.store.StartSession(sess) {
		s.recorder.IncAuthAttempt(opLogin, outcomeConflict)
		return nil, apperrors.NewAppError(apperrors.ErrAlreadyAuthenticated, msgAlreadyAuthenticated)
	}
	s.recorder.IncAuthAttempt(opLogin, outcomeSuccess)
	s.LogInfo(ctx, "Session started", slog.Int("member_id", user.ID), slog.String("role", string(user.Role)))

	return s.store.Session(), nil
}

// sessionUser picks the store member registered under the same email. The
// store is authoritative for roles; the authentication service knows none.
// Unknown emails get a transient MEMBER record.
func (s *sessionService) sessionUser(identity domain.AuthIdentity, email, password string) domain.Member {
	if m, ok := s.store.MemberByEmail(email); ok {
		return m
	}

	now := s.store.Now()
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	banner := synthesizedBannerURL
	pw := password
	return domain.Member{
		ID:        int(now.UnixMilli()),
		Name:      name,
		CPF:       identity.CPF,
		Address:   identity.Address,
		Phone:     identity.Phone,
		Email:     email,
		JoinDate:  now.Format(domain.DateLayout),
		Role:      domain.RoleMember,
		AvatarURL: "https://ui-avatars.com/api/?name=" + url.QueryEscape(email) + "&background=0a9396&color=fff",
		BannerURL: &banner,
		Password:  &pw,
		Fees:      []domain.MonthlyFee{},
	}
}

func (s *sessionService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegistrationResult, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		s.recorder.IncAuthAttempt(opRegister, outcomeInvalid)
		return nil, apperrors.NewAppError(apperrors.ErrValidation, msgRegisterFieldsRequired)
	}
	if !utils.PasswordLongEnough(req.Password) {
		s.recorder.IncAuthAttempt(opRegister, outcomeInvalid)
		return nil, apperrors.NewAppError(apperrors.ErrValidation, msgPasswordTooShort)
	}

	identity, message, err := s.client.Register(ctx, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.recorder.IncAuthAttempt(opRegister, outcomeRejected)
		} else {
			s.recorder.IncAuthAttempt(opRegister, outcomeUnavailable)
			s.LogError(ctx, err, "Registration failed")
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	if message == "" {
		message = msgRegistered
	}
	s.recorder.IncAuthAttempt(opRegister, outcomeSuccess)
	s.LogInfo(ctx, "Account registered", slog.Int("usuario_id", identity.ID))
	return &dto.RegistrationResult{Message: message, UserID: identity.ID}, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if sess := s.store.Session(); sess != nil {
		s.LogInfo(ctx, "Session ended", slog.Int("member_id", sess.CurrentUser.ID))
	}
	s.store.ClearSession()
}

func (s *sessionService) Current() *domain.Session {
	return s.store.Session()
}
