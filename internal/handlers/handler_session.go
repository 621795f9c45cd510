package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/utils"
)

type sessionHandler struct {
	sessions portssvc.SessionSvc
	cfg      *config.Config
}

func registerSessionRoutes(public, authed *gin.RouterGroup, cfg *config.Config, sessions portssvc.SessionSvc) {
	h := &sessionHandler{sessions: sessions, cfg: cfg}

	s := public.Group("/session")
	{
		s.POST("/login", h.login)
		s.POST("/register", h.register)
		s.GET("", h.current)
	}
	authed.POST("/session/logout", h.logout)
}

// login godoc
// @Summary Start the session
// @Description Authenticates against the authentication service and starts the single session. Returns a bearer token bound to it.
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body dto.SessionLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Email ou senha inválidos"
// @Failure 409 {object} ErrorResponse "A session is already active"
// @Failure 502 {object} ErrorResponse "Authentication service unreachable"
// @Router /session/login [post]
func (h *sessionHandler) login(c *gin.Context) {
	var req dto.SessionLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fallback := "Email ou senha inválidos"
		if statusFor(err) == http.StatusBadGateway {
			fallback = "Erro ao conectar com servidor"
		}
		respondErrorWithLog(c, err, "Login failed", fallback)
		return
	}

	token, expiresAt, err := utils.GenerateSessionJWT(sess.CurrentUser.ID, sess.ID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		// a session nobody can address must not linger
		h.sessions.Logout(c.Request.Context())
		middleware.GetLoggerFromContext(c).Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao processar login. Tente novamente."})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Session:   dto.ToSessionResponse(sess),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// register godoc
// @Summary Create an account
// @Description Forwards a registration to the authentication service. Never starts a session.
// @Tags session
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.RegistrationResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /session/register [post]
func (h *sessionHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.sessions.Register(c.Request.Context(), req)
	if err != nil {
		fallback := "Erro ao criar conta"
		if statusFor(err) == http.StatusBadGateway {
			fallback = "Erro ao conectar com servidor"
		}
		respondErrorWithLog(c, err, "Registration failed", fallback)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// current godoc
// @Summary Describe the session
// @Description Returns the live session for a valid token, or an anonymous session.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /session [get]
func (h *sessionHandler) current(c *gin.Context) {
	sess, _ := middleware.GetSessionFromContext(c)
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

// logout godoc
// @Summary End the session
// @Description Ends the single session; every token issued for it stops working.
// @Tags session
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/logout [post]
func (h *sessionHandler) logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
