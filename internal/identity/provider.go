// Package identity resolves the authenticated user for a request and
// builds login/logout URLs. Handlers depend only on the Provider
// interface; the session-cookie implementation lives in session.go.
package identity

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Provider is the narrow contract the handlers use. CurrentUser has no
// side effects; a failed resolution is indistinguishable from an
// anonymous request.
type Provider interface {
	CurrentUser(c *fiber.Ctx) (*models.Author, bool)
	LoginURL(returnTo string) string
	LogoutURL(returnTo string) string
}
