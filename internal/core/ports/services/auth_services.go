package services

import (
	"context"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/dto"
)

// AuthServiceClient is the app server's view of the external authentication service.
type AuthServiceClient interface {
	// Login returns apperrors.ErrInvalidCredentials on rejection and
	// apperrors.ErrAuthServiceUnavailable on transport or server failure.
	Login(ctx context.Context, email, password string) (domain.AuthIdentity, error)

	// Register returns an AppError wrapping apperrors.ErrValidation that carries the
	// service's message when the service refuses the registration.
	Register(ctx context.Context, req dto.RegisterRequest) (domain.AuthIdentity, string, error)
}

// SessionSvc is the Session/Auth Gateway.
type SessionSvc interface {
	// Login authenticates against the external service and starts the single session.
	Login(ctx context.Context, email, password string) (*domain.Session, error)

	// Register forwards a registration. It never starts a session.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegistrationResult, error)

	// Logout ends the session. It always succeeds.
	Logout(ctx context.Context)

	// Current returns the live session or nil.
	Current() *domain.Session
}

// CredentialSvc implements the rules of the authentication service endpoints.
type CredentialSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (domain.AuthIdentity, error)
	Register(ctx context.Context, req dto.RegistrarRequest) (domain.AuthIdentity, error)
}
