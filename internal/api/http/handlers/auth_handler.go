package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/api/dto"
	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/domain"
	"github.com/spec-kit/dental-records/internal/observability"
	"github.com/spec-kit/dental-records/internal/service"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

// AuthHandler exposes signup, login and session endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookie  auth.CookieSettings
	metrics *observability.Metrics
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie auth.CookieSettings, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookie, metrics: metrics}
}

func (h *AuthHandler) record(operation string, err error) {
	result := "success"
	if err != nil {
		result = apperrors.ToDomainError(err).Code
	}
	h.metrics.RecordAuth(operation, result)
}

// ResolveSession resolves a session token and records the outcome. It backs
// the session middleware.
func (h *AuthHandler) ResolveSession(ctx context.Context, token string) (*domain.AccountView, error) {
	account, err := h.auth.ResolveSession(ctx, token)
	h.record(observability.AuthResolve, err)
	return account, err
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := bind(c, &req); err != nil {
		h.record(observability.AuthSignup, err)
		return err
	}

	account, err := h.auth.Register(c.UserContext(), req.ToInput())
	h.record(observability.AuthSignup, err)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(account))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		h.record(observability.AuthLogin, err)
		return err
	}

	account, token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	h.record(observability.AuthLogin, err)
	if err != nil {
		return err
	}

	h.cookie.SetSessionCookie(c, token)
	return c.JSON(data(dto.LoginResponse{User: account, SessionID: token}))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := h.cookie.SessionToken(c)
	if token == "" {
		return apperrors.NewUnauthorized("Session ID required")
	}

	err := h.auth.Logout(c.UserContext(), token)
	h.record(observability.AuthLogout, err)
	if err != nil {
		return err
	}

	h.cookie.ClearSessionCookie(c)
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /auth/me. Requires the session middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Session ID required")
	}
	return c.JSON(data(account))
}

// Delete handles DELETE /auth/delete. Requires the session middleware.
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Session ID required")
	}

	err := h.auth.DeleteAccount(c.UserContext(), account.ID)
	h.record(observability.AuthDelete, err)
	if err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
