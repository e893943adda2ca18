package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/domain"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

type stubResolver struct {
	resolveFn func(ctx context.Context, token string) (*domain.AccountView, error)
}

func (s stubResolver) ResolveSession(ctx context.Context, token string) (*domain.AccountView, error) {
	return s.resolveFn(ctx, token)
}

func newMiddlewareApp(resolver auth.SessionResolver) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": de.Code, "message": de.Message}})
		},
	})
	cookie := auth.CookieSettings{Name: "session_id", TTL: time.Hour}
	mw := auth.NewSessionMiddleware(resolver, cookie)
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		account, ok := auth.AccountFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"email": account.Email})
	})
	return app
}

func TestSessionMiddlewareMissingCookie(t *testing.T) {
	called := false
	app := newMiddlewareApp(stubResolver{resolveFn: func(context.Context, string) (*domain.AccountView, error) {
		called = true
		return nil, nil
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, called, "resolver must not be called without a cookie")
}

func TestSessionMiddlewareValidSession(t *testing.T) {
	app := newMiddlewareApp(stubResolver{resolveFn: func(_ context.Context, token string) (*domain.AccountView, error) {
		if token != "abc" {
			return nil, errors.New("unexpected token")
		}
		return &domain.AccountView{ID: 1, Email: "jane@x.com", Role: domain.RoleUser}, nil
	}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "abc"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "jane@x.com", body["email"])
}

func TestSessionMiddlewarePropagatesResolverError(t *testing.T) {
	app := newMiddlewareApp(stubResolver{resolveFn: func(context.Context, string) (*domain.AccountView, error) {
		return nil, apperrors.NewDomainError("ACCOUNT_NOT_FOUND", "User not found", http.StatusNotFound, nil)
	}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "dangling"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCookieSettings(t *testing.T) {
	settings := auth.CookieSettings{Name: "session_id", Secure: true, TTL: 24 * time.Hour}
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		settings.SetSessionCookie(c, "tok")
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		settings.ClearSessionCookie(c)
		return c.SendStatus(http.StatusOK)
	})

	t.Run("set", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, "session_id", cookie.Name)
		assert.Equal(t, "tok", cookie.Value)
		assert.Equal(t, 86400, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	t.Run("clear", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/clear", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_id", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.True(t, cookies[0].Expires.Before(time.Now()))
	})
}
