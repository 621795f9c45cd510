package domain

import "time"

// Session is the single authenticated identity of a running instance.
// A zero Session (nil CurrentUser, IsAuthenticated false) means anonymous.
type Session struct {
	ID              string    `json:"id"` // Random per login; tokens are bound to it
	CurrentUser     *Member   `json:"currentUser"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	StartedAt       time.Time `json:"startedAt"`
	ExpiresAt       time.Time `json:"expiresAt,omitzero"` // Zero means the session never lapses
}

// Active reports whether the session carries an authenticated user.
func (s *Session) Active() bool {
	return s != nil && s.IsAuthenticated && s.CurrentUser != nil
}

// Expired reports whether the session has lapsed at now.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	if s.CurrentUser != nil {
		u := s.CurrentUser.Clone()
		c.CurrentUser = &u
	}
	return c
}

// AuthIdentity is the identity the authentication service returns on success,
// already translated into local vocabulary.
type AuthIdentity struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
