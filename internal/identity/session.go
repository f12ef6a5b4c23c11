package identity

import (
	"fmt"
	"net/url"
	"time"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "inkwell_session"

const (
	issuer     = "inkwell"
	audience   = "inkwell-web"
	sessionTTL = 7 * 24 * time.Hour
)

// SessionProvider implements Provider with an HMAC-signed JWT carried in
// a session cookie. The subject claim is the account key and the email
// claim lets handlers snapshot the Author without a store round trip.
type SessionProvider struct {
	secret []byte
}

// NewSessionProvider creates a SessionProvider signing with the given secret.
func NewSessionProvider(secret string) *SessionProvider {
	return &SessionProvider{secret: []byte(secret)}
}

// IssueSession creates a signed session token for the given account.
func (p *SessionProvider) IssueSession(account *models.Account) (string, error) {
	if len(p.secret) == 0 {
		return "", fmt.Errorf("session secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.Key,
		"email": account.Email,
		"iss":   issuer,
		"aud":   audience,
		"exp":   now.Add(sessionTTL).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// SessionCookieFor wraps a signed token in the browser cookie.
func (p *SessionProvider) SessionCookieFor(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearedSessionCookie returns an expired cookie that removes the session.
func (p *SessionProvider) ClearedSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// CurrentUser resolves the identity carried by the request's session
// cookie. Any parse or claim failure yields an anonymous request.
func (p *SessionProvider) CurrentUser(c *fiber.Ctx) (*models.Author, bool) {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	if iss, issOk := claims["iss"].(string); !issOk || iss != issuer {
		return nil, false
	}
	if aud, audOk := claims["aud"].(string); !audOk || aud != audience {
		return nil, false
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, false
	}
	email, _ := claims["email"].(string)

	return &models.Author{Identity: sub, Email: email}, true
}

// LoginURL returns the login page URL that returns to the given location.
func (p *SessionProvider) LoginURL(returnTo string) string {
	return "/login?return_to=" + url.QueryEscape(returnTo)
}

// LogoutURL returns the logout URL that returns to the given location.
func (p *SessionProvider) LogoutURL(returnTo string) string {
	return "/logout?return_to=" + url.QueryEscape(returnTo)
}

// Middleware resolves the current identity once per request and caches
// it in locals for handlers and the request logger.
func (p *SessionProvider) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if author, ok := p.CurrentUser(c); ok {
			c.Locals("identity", author)
			c.Locals("identityID", author.Identity)
		}
		return c.Next()
	}
}
