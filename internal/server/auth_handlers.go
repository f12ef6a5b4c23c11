package server

import (
	"errors"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// safeReturnTo restricts the post-auth redirect to local paths.
func safeReturnTo(c *fiber.Ctx) string {
	target := c.Query("return_to")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

// LoginForm renders the login page.
func (s *Server) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", s.viewData(c, fiber.Map{
		"Email":    "",
		"ReturnTo": c.Query("return_to"),
	}))
}

// Login checks credentials and establishes a session.
func (s *Server) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	account, err := s.accountService.Authenticate(c.Context(), email, password)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeUnauthorized {
			return c.Status(fiber.StatusUnauthorized).Render("login", s.viewData(c, fiber.Map{
				"Email":    email,
				"ReturnTo": c.Query("return_to"),
				"Error":    appErr.Message,
			}))
		}
		return s.renderError(c, err)
	}

	token, err := s.provider.IssueSession(account)
	if err != nil {
		return s.renderError(c, models.NewInternalError(err))
	}
	c.Cookie(s.provider.SessionCookieFor(token))

	return c.Redirect(safeReturnTo(c), fiber.StatusFound)
}

// SignupForm renders the account creation page.
func (s *Server) SignupForm(c *fiber.Ctx) error {
	return c.Render("signup", s.viewData(c, fiber.Map{
		"Email": "",
	}))
}

// Signup creates an account and logs the new user straight in.
func (s *Server) Signup(c *fiber.Ctx) error {
	email := c.FormValue("email")

	account, err := s.accountService.Signup(c.Context(), service.SignupInput{
		Email:    email,
		Password: c.FormValue("password"),
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeValidation {
			return c.Status(fiber.StatusBadRequest).Render("signup", s.viewData(c, fiber.Map{
				"Email": email,
				"Error": appErr.Message,
			}))
		}
		return s.renderError(c, err)
	}

	token, err := s.provider.IssueSession(account)
	if err != nil {
		return s.renderError(c, models.NewInternalError(err))
	}
	c.Cookie(s.provider.SessionCookieFor(token))

	return c.Redirect("/", fiber.StatusFound)
}

// Logout clears the session cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(s.provider.ClearedSessionCookie())
	return c.Redirect(safeReturnTo(c), fiber.StatusFound)
}
