package dto

import (
	"time"

	"github.com/SscSPs/community_connect/internal/core/domain"
)

// SessionLoginRequest is the app-side login form.
type SessionLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the app-side registration form, in local vocabulary.
type RegisterRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationResult reports a successful registration. It never carries a session.
type RegistrationResult struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

// SessionResponse describes the current session; CurrentUser is nil when anonymous.
type SessionResponse struct {
	ID              string          `json:"id,omitempty"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	CurrentUser     *MemberResponse `json:"currentUser"`
	StartedAt       *time.Time      `json:"startedAt,omitempty"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Session   SessionResponse `json:"session"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// ToSessionResponse converts a session, or nil for anonymous.
func ToSessionResponse(sess *domain.Session) SessionResponse {
	if !sess.Active() {
		return SessionResponse{}
	}
	user := ToMemberResponse(*sess.CurrentUser)
	started := sess.StartedAt
	return SessionResponse{
		ID:              sess.ID,
		IsAuthenticated: true,
		CurrentUser:     &user,
		StartedAt:       &started,
	}
}
