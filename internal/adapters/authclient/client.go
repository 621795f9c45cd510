// Package authclient talks to the authentication service over HTTP.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/core/domain"
	portssvc "github.com/SscSPs/community_connect/internal/core/ports/services"
	"github.com/SscSPs/community_connect/internal/dto"
	"github.com/SscSPs/community_connect/internal/middleware"
	"github.com/SscSPs/community_connect/internal/utils/mapping"
)

const (
	loginPath     = "/api/login"
	registrarPath = "/api/registrar"

	// maxResponseBytes bounds how much of an answer is read.
	maxResponseBytes = 1 << 20
)

// Client implements the AuthServiceClient port.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.AuthServiceClient = (*Client)(nil)

// New creates a client for the service at baseURL (no trailing slash).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient lets tests inject a client, e.g. httptest.Server.Client().
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: hc}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthIdentity, error) {
	status, body, err := c.post(ctx, loginPath, dto.LoginRequest{Email: email, Senha: password})
	if err != nil {
		return domain.AuthIdentity{}, err
	}

	switch {
	case status == http.StatusOK && body.Sucesso && body.Usuario != nil:
		return mapping.FromUsuarioDTO(*body.Usuario), nil
	case status == http.StatusUnauthorized:
		return domain.AuthIdentity{}, apperrors.ErrInvalidCredentials
	default:
		return domain.AuthIdentity{}, unexpected(ctx, loginPath, status, body)
	}
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (domain.AuthIdentity, string, error) {
	status, body, err := c.post(ctx, registrarPath, mapping.ToRegistrarRequest(req))
	if err != nil {
		return domain.AuthIdentity{}, "", err
	}

	switch {
	case status == http.StatusCreated && body.Sucesso && body.Usuario != nil:
		return mapping.FromUsuarioDTO(*body.Usuario), body.Mensagem, nil
	case status == http.StatusBadRequest:
		return domain.AuthIdentity{}, "", apperrors.NewAppError(apperrors.ErrValidation, "%s", body.Mensagem)
	default:
		return domain.AuthIdentity{}, "", unexpected(ctx, registrarPath, status, body)
	}
}

// post sends payload as JSON and decodes the envelope. Transport failures and
// undecodable bodies are reported as ErrAuthServiceUnavailable.
func (c *Client) post(ctx context.Context, path string, payload any) (int, dto.AuthServiceResponse, error) {
	var out dto.AuthServiceResponse

	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, out, fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, out, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if reqID := middleware.RequestIDFromCtx(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Authentication service unreachable",
			slog.String("path", path), slog.String("error", err.Error()))
		return 0, out, fmt.Errorf("%w: %v", apperrors.ErrAuthServiceUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, out, fmt.Errorf("%w: reading body: %v", apperrors.ErrAuthServiceUnavailable, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		// 405 and proxy errors are plain text
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusMethodNotAllowed {
			return resp.StatusCode, out, nil
		}
		return resp.StatusCode, out, fmt.Errorf("%w: undecodable %d answer", apperrors.ErrAuthServiceUnavailable, resp.StatusCode)
	}
	return resp.StatusCode, out, nil
}

func unexpected(ctx context.Context, path string, status int, body dto.AuthServiceResponse) error {
	middleware.GetLoggerFromCtx(ctx).Warn("Unexpected authentication service answer",
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("mensagem", body.Mensagem))
	err := fmt.Errorf("%w: status %d", apperrors.ErrAuthServiceUnavailable, status)
	if body.Mensagem != "" {
		return apperrors.NewAppError(err, "%s", body.Mensagem)
	}
	return err
}
