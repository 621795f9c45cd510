package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/community_connect/internal/adapters/authclient"
	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/core/policy"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/fixtures"
	"github.com/SscSPs/community_connect/internal/handlers"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/utils"
)

var testNow = time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)

// AppServerTestSuite drives the app server against a real authentication
// service running on an httptest listener.
type AppServerTestSuite struct {
	suite.Suite
	authSvc *httptest.Server
	store   *store.Store
	app     *gin.Engine
}

func (s *AppServerTestSuite) SetupTest() {
	cfg := testConfig()
	s.authSvc = httptest.NewServer(newAuthServiceEngine(s.T(), cfg))

	seed, err := fixtures.Default()
	s.Require().NoError(err)
	s.store = store.New(seed, store.WithClock(func() time.Time { return testNow }))

	container := services.NewServiceContainer(s.store, authclient.New(s.authSvc.URL, 2*time.Second))

	gin.SetMode(gin.TestMode)
	s.app = gin.New()
	handlers.RegisterRoutes(s.app, cfg, container, metrics.New("app"), utils.InitializePosthogClient("", slog.Default()))

	// seeded members get accounts with the same emails
	for _, acc := range []dto.RegistrarRequest{
		{Nome: "Maria Silva", Email: "maria.silva@email.com", Senha: "admin123"},
		{Nome: "Ana Pereira", Email: "ana.pereira@email.com", Senha: "membro123"},
	} {
		w := doJSON(s.T(), s.authSvc.Config.Handler, http.MethodPost, "/api/registrar", "", acc)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}
}

func (s *AppServerTestSuite) TearDownTest() {
	s.authSvc.Close()
}

func TestAppServerTestSuite(t *testing.T) {
	suite.Run(t, new(AppServerTestSuite))
}

func (s *AppServerTestSuite) login(email, password string) string {
	w := doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: email, Password: password})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	s.Require().NotEmpty(res.Token)
	return res.Token
}

func (s *AppServerTestSuite) resolve(page, token string) dto.PageResolutionResponse {
	w := doJSON(s.T(), s.app, http.MethodGet, "/api/v1/pages/"+page, token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.PageResolutionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (s *AppServerTestSuite) TestLoginUsesStoreMember() {
	w := doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "maria.silva@email.com", Password: "admin123"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var res dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	s.True(res.Session.IsAuthenticated)
	s.Require().NotNil(res.Session.CurrentUser)
	s.Equal(1, res.Session.CurrentUser.ID)
	s.Equal(domain.RoleAdmin, res.Session.CurrentUser.Role)

	w = doJSON(s.T(), s.app, http.MethodGet, "/api/v1/session", res.Token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"isAuthenticated":true`)
}

func (s *AppServerTestSuite) TestRejectedLoginStartsNoSession() {
	w := doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "maria.silva@email.com", Password: "wrong"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Nil(s.store.Session())

	w = doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "", Password: ""})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AppServerTestSuite) TestSecondLoginConflicts() {
	s.login("ana.pereira@email.com", "membro123")
	w := doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "maria.silva@email.com", Password: "admin123"})
	s.Equal(http.StatusConflict, w.Code)
}

func (s *AppServerTestSuite) TestLogoutInvalidatesToken() {
	token := s.login("ana.pereira@email.com", "membro123")
	s.Equal(http.StatusOK, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/dashboard", token, nil).Code)

	s.Equal(http.StatusNoContent, doJSON(s.T(), s.app, http.MethodPost, "/api/v1/session/logout", token, nil).Code)
	s.Nil(s.store.Session())
	s.Equal(http.StatusUnauthorized, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/dashboard", token, nil).Code)

	// a new session does not revive the old token
	s.login("ana.pereira@email.com", "membro123")
	s.Equal(http.StatusUnauthorized, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/dashboard", token, nil).Code)
}

func (s *AppServerTestSuite) TestRoleGating() {
	token := s.login("ana.pereira@email.com", "membro123")

	s.Equal(http.StatusForbidden, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/members", token, nil).Code)
	s.Equal(http.StatusForbidden, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/projects", token, nil).Code)
	s.Equal(http.StatusForbidden, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/financials/summary", token, nil).Code)
	s.Equal(http.StatusOK, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/chat/messages", token, nil).Code)
	s.Equal(http.StatusOK, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/settings", token, nil).Code)
	s.Equal(http.StatusForbidden, doJSON(s.T(), s.app, http.MethodPatch, "/api/v1/settings", token, map[string]any{"language": "en-US"}).Code)

	w := doJSON(s.T(), s.app, http.MethodGet, "/api/v1/navigation", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var nav dto.NavigationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &nav))
	pages := make([]policy.Page, len(nav.Pages))
	for i, e := range nav.Pages {
		pages[i] = e.Page
	}
	s.Equal([]policy.Page{policy.PageDashboard, policy.PageProfile, policy.PageChat}, pages)
	s.Equal("/pages/dashboard", nav.Pages[0].Path)
}

func (s *AppServerTestSuite) TestRoleChangeAppliesToLiveSession() {
	token := s.login("ana.pereira@email.com", "membro123")
	s.Equal(http.StatusForbidden, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/projects", token, nil).Code)

	s.Require().True(s.store.ChangeMemberRole(3, domain.RoleProjectManager))

	s.Equal(http.StatusOK, doJSON(s.T(), s.app, http.MethodGet, "/api/v1/projects", token, nil).Code)
}

func (s *AppServerTestSuite) TestPageResolution() {
	anon := s.resolve("chat", "")
	s.Equal(policy.PageLogin, anon.Page)
	s.True(anon.Redirected)

	token := s.login("ana.pereira@email.com", "membro123")

	s.Equal(dto.PageResolutionResponse{Requested: "chat", Page: policy.PageChat}, s.resolve("chat", token))
	s.Equal(dto.PageResolutionResponse{Requested: "financials", Page: policy.PageDashboard, Redirected: true}, s.resolve("financials", token))
	s.Equal(dto.PageResolutionResponse{Requested: "nowhere", Page: policy.PageDashboard, Redirected: true}, s.resolve("nowhere", token))
}

func (s *AppServerTestSuite) TestAdminFlows() {
	token := s.login("maria.silva@email.com", "admin123")

	w := doJSON(s.T(), s.app, http.MethodPatch, "/api/v1/members/3/role", token, dto.ChangeRoleRequest{Role: domain.RoleProjectManager})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"role":"PROJECT_MANAGER"`)

	s.Equal(http.StatusNotFound, doJSON(s.T(), s.app, http.MethodPatch, "/api/v1/members/999/role", token, dto.ChangeRoleRequest{Role: domain.RoleMember}).Code)
	s.Equal(http.StatusBadRequest, doJSON(s.T(), s.app, http.MethodPut, "/api/v1/members/abc", token, map[string]any{}).Code)

	w = doJSON(s.T(), s.app, http.MethodPost, "/api/v1/projects", token, map[string]any{
		"name": "Horta", "managerId": 3, "startDate": "2024-12-01", "endDate": "2024-11-01", "budget": "100",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "A data final não pode ser anterior à data de início.")

	w = doJSON(s.T(), s.app, http.MethodPut, "/api/v1/financials/pix-key", token, dto.PixKeyRequest{PixKey: "pix@community.com"})
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("pix@community.com", s.store.PixKey())

	w = doJSON(s.T(), s.app, http.MethodPost, "/api/v1/chat/messages", token, dto.PostMessageRequest{Text: "Olá a todos"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Contains(w.Body.String(), "Maria Silva")
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	cfg := testConfig()
	authSvc := httptest.NewServer(newAuthServiceEngine(t, cfg))
	defer authSvc.Close()

	seed, err := fixtures.Default()
	require.NoError(t, err)
	st := store.New(seed)
	container := services.NewServiceContainer(st, authclient.New(authSvc.URL, 2*time.Second))
	gin.SetMode(gin.TestMode)
	app := gin.New()
	handlers.RegisterRoutes(app, cfg, container, metrics.New("app"), utils.InitializePosthogClient("", slog.Default()))

	w := doJSON(t, app, http.MethodPost, "/api/v1/session/register", "", dto.RegisterRequest{
		Name: "Novo Membro", Email: "novo@email.com", Password: "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Conta criada com sucesso!")
	assert.Nil(t, st.Session())

	w = doJSON(t, app, http.MethodPost, "/api/v1/session/register", "", dto.RegisterRequest{
		Name: "Novo Membro", Email: "novo@email.com", Password: "123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Este email já está cadastrado")
}

func TestAuthServiceDown(t *testing.T) {
	cfg := testConfig()
	seed, err := fixtures.Default()
	require.NoError(t, err)
	st := store.New(seed)
	container := services.NewServiceContainer(st, authclient.New("http://127.0.0.1:1", 500*time.Millisecond))
	gin.SetMode(gin.TestMode)
	app := gin.New()
	handlers.RegisterRoutes(app, cfg, container, metrics.New("app"), utils.InitializePosthogClient("", slog.Default()))

	w := doJSON(t, app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "a@b.com", Password: "123456"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao conectar com servidor")
	assert.Nil(t, st.Session())
}

func newAppEngine(t *testing.T, st *store.Store, logger *slog.Logger, opts ...services.SessionServiceOption) *gin.Engine {
	t.Helper()
	cfg := testConfig()
	authSvc := httptest.NewServer(newAuthServiceEngine(t, cfg))
	t.Cleanup(authSvc.Close)
	for _, acc := range []dto.RegistrarRequest{
		{Nome: "Maria Silva", Email: "maria.silva@email.com", Senha: "admin123"},
		{Nome: "Ana Pereira", Email: "ana.pereira@email.com", Senha: "membro123"},
	} {
		w := doJSON(t, authSvc.Config.Handler, http.MethodPost, "/api/registrar", "", acc)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	container := services.NewServiceContainer(st, authclient.New(authSvc.URL, 2*time.Second), opts...)
	gin.SetMode(gin.TestMode)
	app := gin.New()
	app.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(app, cfg, container, metrics.New("app"), utils.InitializePosthogClient("", logger))
	return app
}

func TestLapsedSessionAllowsNewLogin(t *testing.T) {
	seed, err := fixtures.Default()
	require.NoError(t, err)
	now := testNow
	st := store.New(seed, store.WithClock(func() time.Time { return now }))
	app := newAppEngine(t, st, slog.Default(), services.WithSessionTTL(time.Hour))

	login := func(email, password string) *httptest.ResponseRecorder {
		return doJSON(t, app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: email, Password: password})
	}

	w := login("maria.silva@email.com", "admin123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.Equal(t, http.StatusConflict, login("ana.pereira@email.com", "membro123").Code)

	now = now.Add(2 * time.Hour)

	w = doJSON(t, app, http.MethodGet, "/api/v1/profile", res.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "the lapsed session no longer backs its token")

	w = login("ana.pereira@email.com", "membro123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, st.Session())
	assert.Equal(t, 3, st.Session().CurrentUser.ID)
}

func TestFailedLoginLogsNeutralMessage(t *testing.T) {
	seed, err := fixtures.Default()
	require.NoError(t, err)
	st := store.New(seed, store.WithClock(func() time.Time { return testNow }))
	var logs bytes.Buffer
	app := newAppEngine(t, st, slog.New(slog.NewJSONHandler(&logs, nil)))

	w := doJSON(t, app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "maria.silva@email.com", Password: "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, app, http.MethodPost, "/api/v1/session/login", "", dto.SessionLoginRequest{Email: "ana.pereira@email.com", Password: "membro123"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Já existe uma sessão ativa")

	var messages []string
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec), string(line))
		msg, _ := rec["msg"].(string)
		messages = append(messages, msg)
		if msg == "Login failed" {
			assert.EqualValues(t, http.StatusConflict, rec["status"])
		}
	}
	assert.Contains(t, messages, "Login failed")
	assert.NotContains(t, messages, "Email ou senha inválidos")
}
