package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/handlers"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/repositories/memory"
)

const testSecret = "handlers-test-secret-long-enough-for-hs256"

func testConfig() *config.Config {
	return &config.Config{
		IsProduction:       true,
		JWTSecret:          testSecret,
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "test",
		AuthLoginRate:      "100-M",
		CORSAllowedOrigins: []string{"*"},
	}
}

func newAuthServiceEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repos := portsrepo.RepositoryProvider{CredentialRepo: memory.NewCredentialRepository()}
	require.NoError(t, handlers.RegisterAuthServiceRoutes(r, cfg, services.NewAuthServiceContainer(repos), metrics.New("auth")))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) dto.AuthServiceResponse {
	t.Helper()
	var res dto.AuthServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	r := newAuthServiceEngine(t, testConfig())

	w := doJSON(t, r, http.MethodPost, "/api/registrar", "", dto.RegistrarRequest{
		Nome: "Ana Pereira", Email: "ana@email.com", Senha: "segredo1", CPF: "333.444.555-66",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeAuth(t, w)
	assert.True(t, created.Sucesso)
	assert.Equal(t, services.MsgAccountCreated, created.Mensagem)
	require.NotNil(t, created.Usuario)
	require.NotNil(t, created.Usuario.CPF)
	assert.Equal(t, "333.444.555-66", *created.Usuario.CPF)

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/registrar", "", dto.RegistrarRequest{
			Nome: "Outra", Email: "ANA@email.com", Senha: "segredo2",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeAuth(t, w)
		assert.False(t, res.Sucesso)
		assert.Equal(t, services.MsgEmailTaken, res.Mensagem)
	})

	t.Run("login answers the short usuario", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: "ana@email.com", Senha: "segredo1"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decodeAuth(t, w)
		assert.True(t, res.Sucesso)
		require.NotNil(t, res.Usuario)
		assert.Equal(t, "Ana Pereira", res.Usuario.Nome)
		assert.Nil(t, res.Usuario.CPF)
		assert.NotContains(t, w.Body.String(), "senha")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: "ana@email.com", Senha: "errada"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		res := decodeAuth(t, w)
		assert.False(t, res.Sucesso)
		assert.Equal(t, services.MsgInvalidCredentials, res.Mensagem)
	})
}

func TestAuthService_Validation(t *testing.T) {
	r := newAuthServiceEngine(t, testConfig())

	cases := []struct {
		name string
		req  dto.RegistrarRequest
		msg  string
	}{
		{"missing fields", dto.RegistrarRequest{Email: "x@y.com", Senha: "123456"}, services.MsgRequiredFields},
		{"bad email", dto.RegistrarRequest{Nome: "X", Email: "not-an-email", Senha: "123456"}, services.MsgInvalidEmail},
		{"short password", dto.RegistrarRequest{Nome: "X", Email: "x@y.com", Senha: "12345"}, services.MsgShortPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/registrar", "", tc.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.msg, decodeAuth(t, w).Mensagem)
		})
	}
}

func TestAuthService_ProtocolErrors(t *testing.T) {
	r := newAuthServiceEngine(t, testConfig())

	t.Run("non-POST is a plain-text 405", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/login", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "Method not allowed", w.Body.String())
	})

	t.Run("malformed login body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", "{not json")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Erro interno", decodeAuth(t, w).Mensagem)
	})

	t.Run("malformed registration body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/registrar", "", "{not json")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Erro ao criar conta. Tente novamente.", decodeAuth(t, w).Mensagem)
	})
}

func TestAuthService_LoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthLoginRate = "2-M"
	r := newAuthServiceEngine(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: "nobody@email.com", Senha: "123456"})
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}
