package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/community_connect/internal/apperrors"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/utils/mapping"
)

const (
	msgInternal       = "Erro interno"
	msgRegisterFailed = "Erro ao criar conta. Tente novamente."
	msgTooManyLogins  = "Muitas tentativas de login. Tente novamente em instantes."
)

// credentialHandler serves the authentication service contract.
type credentialHandler struct {
	credentials portssvc.CredentialSvc
	metrics     *metrics.Metrics
}

// RegisterAuthServiceRoutes sets up the authentication service: /api/login,
// /api/registrar, /health and /metrics. Any method other than POST on the API
// paths answers a plain-text 405.
func RegisterAuthServiceRoutes(r *gin.Engine, cfg *config.Config, svc *portssvc.AuthServiceContainer, m *metrics.Metrics) error {
	h := &credentialHandler{credentials: svc.Credential, metrics: m}

	rate, err := limiter.NewRateFromFormatted(cfg.AuthLoginRate)
	if err != nil {
		return err
	}
	loginLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), rate), func(c *gin.Context) {
		m.IncRateLimitRejection("login")
		c.JSON(http.StatusTooManyRequests, dto.AuthServiceResponse{Sucesso: false, Mensagem: msgTooManyLogins})
	})

	r.Use(cors.New(corsConfig(cfg)))
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	{
		api.POST("/login", loginLimiter, h.login)
		api.POST("/registrar", h.registrar)
	}
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = cfg.CORSAllowedOrigins
	return cc
}

// login godoc
// @Summary Check credentials
// @Description Authenticates an email/password pair against the stored usuarios.
// @Tags auth-service
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.AuthServiceResponse
// @Failure 401 {object} dto.AuthServiceResponse "Email ou senha incorretos"
// @Failure 405 {string} string "Method not allowed"
// @Failure 429 {object} dto.AuthServiceResponse
// @Failure 500 {object} dto.AuthServiceResponse "Erro interno"
// @Router /api/login [post]
func (h *credentialHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Unreadable login body", slog.String("error", err.Error()))
		h.metrics.IncAuthAttempt("login", "error")
		c.JSON(http.StatusInternalServerError, dto.AuthServiceResponse{Mensagem: msgInternal})
		return
	}

	identity, err := h.credentials.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.metrics.IncAuthAttempt("login", "rejected")
			c.JSON(http.StatusUnauthorized, dto.AuthServiceResponse{
				Mensagem: apperrors.UserMessage(err, services.MsgInvalidCredentials),
			})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		h.metrics.IncAuthAttempt("login", "error")
		c.JSON(http.StatusInternalServerError, dto.AuthServiceResponse{Mensagem: msgInternal})
		return
	}

	h.metrics.IncAuthAttempt("login", "success")
	usuario := mapping.ToUsuarioDTO(identity, false)
	c.JSON(http.StatusOK, dto.AuthServiceResponse{Sucesso: true, Usuario: &usuario})
}

// registrar godoc
// @Summary Create an account
// @Description Registers a new usuario. CPF, endereco and telefone are optional.
// @Tags auth-service
// @Accept json
// @Produce json
// @Param conta body dto.RegistrarRequest true "Dados da conta"
// @Success 201 {object} dto.AuthServiceResponse
// @Failure 400 {object} dto.AuthServiceResponse "Campos obrigatórios, email inválido, senha curta ou duplicidade"
// @Failure 405 {string} string "Method not allowed"
// @Failure 500 {object} dto.AuthServiceResponse "Erro ao criar conta. Tente novamente."
// @Router /api/registrar [post]
func (h *credentialHandler) registrar(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Unreadable registration body", slog.String("error", err.Error()))
		h.metrics.IncAuthAttempt("register", "error")
		c.JSON(http.StatusInternalServerError, dto.AuthServiceResponse{Mensagem: msgRegisterFailed})
		return
	}

	identity, err := h.credentials.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			h.metrics.IncAuthAttempt("register", "rejected")
			c.JSON(http.StatusBadRequest, dto.AuthServiceResponse{Mensagem: apperrors.UserMessage(err, msgRegisterFailed)})
			return
		}
		logger.Error("Registration failed", slog.String("error", err.Error()))
		h.metrics.IncAuthAttempt("register", "error")
		c.JSON(http.StatusInternalServerError, dto.AuthServiceResponse{Mensagem: msgRegisterFailed})
		return
	}

	h.metrics.IncAuthAttempt("register", "success")
	usuario := mapping.ToUsuarioDTO(identity, true)
	c.JSON(http.StatusCreated, dto.AuthServiceResponse{
		Sucesso:  true,
		Mensagem: services.MsgAccountCreated,
		Usuario:  &usuario,
	})
}
