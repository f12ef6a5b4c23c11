package server

import (
	"errors"

	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentAuthor returns the identity snapshot resolved by the session
// middleware, or nil for anonymous requests.
func currentAuthor(c *fiber.Ctx) *models.Author {
	if author, ok := c.Locals("identity").(*models.Author); ok {
		return author
	}
	return nil
}

// viewData assembles the keys every page template expects and merges in
// the page-specific values.
func (s *Server) viewData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"BlogName": s.config.BlogName,
		"User":     nil,
		"AuthURL":  s.provider.LoginURL(c.OriginalURL()),
	}
	if author := currentAuthor(c); author != nil {
		data["User"] = author
		data["AuthURL"] = s.provider.LogoutURL("/")
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// statusForCode maps an application error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized, models.CodeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// renderError writes the error page for err. Internal errors are logged
// with their cause; the page only ever shows the generic message.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	code := models.CodeOf(err)
	status := statusForCode(code)

	message := "Something went wrong."
	var appErr *models.AppError
	if errors.As(err, &appErr) && code != models.CodeInternal {
		message = appErr.Message
	}
	if status == fiber.StatusInternalServerError {
		middleware.Logger.Error("request failed",
			"path", c.Path(),
			"error", err.Error(),
		)
	}

	return c.Status(status).Render("error", s.viewData(c, fiber.Map{
		"Status":  status,
		"Message": message,
	}))
}
