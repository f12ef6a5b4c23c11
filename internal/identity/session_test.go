package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "session-test-secret"

// resolveWithCookie runs CurrentUser inside a fiber handler with the
// given session cookie value and reports what it saw.
func resolveWithCookie(t *testing.T, provider *SessionProvider, cookieValue string) (*models.Author, bool) {
	t.Helper()

	var author *models.Author
	var ok bool

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		author, ok = provider.CurrentUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookieValue})
	}
	_, err := app.Test(req, -1)
	require.NoError(t, err)
	return author, ok
}

func TestSessionRoundTrip(t *testing.T) {
	provider := NewSessionProvider(testSecret)
	account := &models.Account{Key: "acct-1", Email: "a@example.com"}

	token, err := provider.IssueSession(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	author, ok := resolveWithCookie(t, provider, token)
	require.True(t, ok)
	assert.Equal(t, "acct-1", author.Identity)
	assert.Equal(t, "a@example.com", author.Email)
}

func TestCurrentUser_NoCookie(t *testing.T) {
	provider := NewSessionProvider(testSecret)

	author, ok := resolveWithCookie(t, provider, "")
	assert.False(t, ok)
	assert.Nil(t, author)
}

func TestCurrentUser_TamperedToken(t *testing.T) {
	provider := NewSessionProvider(testSecret)
	account := &models.Account{Key: "acct-1", Email: "a@example.com"}

	token, err := provider.IssueSession(account)
	require.NoError(t, err)

	_, ok := resolveWithCookie(t, provider, token+"x")
	assert.False(t, ok)
}

func TestCurrentUser_WrongSecret(t *testing.T) {
	other := NewSessionProvider("other-secret")
	account := &models.Account{Key: "acct-1", Email: "a@example.com"}

	token, err := other.IssueSession(account)
	require.NoError(t, err)

	verifier := NewSessionProvider(testSecret)
	_, ok := resolveWithCookie(t, verifier, token)
	assert.False(t, ok)
}

func TestLoginLogoutURLs(t *testing.T) {
	provider := NewSessionProvider(testSecret)

	assert.Equal(t, "/login?return_to=%2Fpost%2Fabc", provider.LoginURL("/post/abc"))
	assert.Equal(t, "/logout?return_to=%2F", provider.LogoutURL("/"))
}

func TestMiddleware_SetsLocals(t *testing.T) {
	provider := NewSessionProvider(testSecret)
	account := &models.Account{Key: "acct-1", Email: "a@example.com"}

	token, err := provider.IssueSession(account)
	require.NoError(t, err)

	var gotIdentity any
	var gotID any

	app := fiber.New()
	app.Use(provider.Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		gotIdentity = c.Locals("identity")
		gotID = c.Locals("identityID")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	_, err = app.Test(req, -1)
	require.NoError(t, err)

	author, ok := gotIdentity.(*models.Author)
	require.True(t, ok)
	assert.Equal(t, "acct-1", author.Identity)
	assert.Equal(t, "acct-1", gotID)
}
