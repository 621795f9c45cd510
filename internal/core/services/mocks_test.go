package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/fixtures"
	"github.com/SscSPs/community_connect/internal/models"
)

// --- Mock AuthServiceClient ---
type MockAuthServiceClient struct {
	mock.Mock
	LoginFn    func(ctx context.Context, email, password string) (domain.AuthIdentity, error)
	RegisterFn func(ctx context.Context, req dto.RegisterRequest) (domain.AuthIdentity, string, error)
}

func (m *MockAuthServiceClient) Login(ctx context.Context, email, password string) (domain.AuthIdentity, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.AuthIdentity), args.Error(1)
}

func (m *MockAuthServiceClient) Register(ctx context.Context, req dto.RegisterRequest) (domain.AuthIdentity, string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthIdentity), args.String(1), args.Error(2)
}

// --- Mock CredentialRepositoryFacade ---
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	args := m.Called(ctx, email)
	var u *models.Usuario
	if args.Get(0) != nil {
		u = args.Get(0).(*models.Usuario)
	}
	return u, args.Error(1)
}

func (m *MockCredentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialRepository) SaveUsuario(ctx context.Context, u models.Usuario) (*models.Usuario, error) {
	args := m.Called(ctx, u)
	var saved *models.Usuario
	if args.Get(0) != nil {
		saved = args.Get(0).(*models.Usuario)
	}
	return saved, args.Error(1)
}

// --- Recording AuthRecorder ---
type recordedAttempt struct{ operation, outcome string }

type fakeRecorder struct {
	mu       sync.Mutex
	attempts []recordedAttempt
}

func (r *fakeRecorder) IncAuthAttempt(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, recordedAttempt{operation, outcome})
}

// testNow is inside the window of the seeded "Horta Comunitária" project,
// close enough to its end date to count as near the deadline.
var testNow = time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	seed, err := fixtures.Default()
	require.NoError(t, err)
	return store.New(seed, store.WithClock(func() time.Time { return testNow }))
}

func loginAs(t *testing.T, st *store.Store, memberID int) domain.Member {
	t.Helper()
	m, ok := st.Member(memberID)
	require.True(t, ok)
	st.ClearSession()
	require.True(t, st.StartSession(domain.Session{ID: "test-session", CurrentUser: &m, StartedAt: testNow}))
	return m
}
