package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieSettings describe how the session cookie is written.
type CookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// SetSessionCookie writes the session token as an HttpOnly, SameSite=Lax
// cookie whose max-age matches the session TTL.
func (s CookieSettings) SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL / time.Second),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func (s CookieSettings) ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionToken reads the session token from the request cookie.
func (s CookieSettings) SessionToken(c *fiber.Ctx) string {
	return c.Cookies(s.Name)
}
