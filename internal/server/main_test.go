package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/identity"
	"inkwell/internal/models"
	"inkwell/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupTestServer(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db := setupTestDB(t)
	cfg := &config.Config{
		BlogName:  "Test Blog",
		JWTSecret: "test-secret-key-for-handler-tests",
		Port:      "0",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		Views: web.NewEngine(),
	})
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	return app, srv, db
}

// createAccount inserts an account directly and returns it with its
// session cookie.
func createAccount(t *testing.T, srv *Server, db *gorm.DB, email string) (*models.Account, *http.Cookie) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Account{Email: email, Password: string(hashed)}
	require.NoError(t, db.Create(account).Error)

	token, err := srv.provider.IssueSession(account)
	require.NoError(t, err)

	return account, &http.Cookie{Name: identity.SessionCookie, Value: token}
}

// formRequest builds an HTML form submission.
func formRequest(method, target string, form url.Values, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func getRequest(target string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// createPost inserts a post directly, bypassing the HTTP layer.
func createPost(t *testing.T, db *gorm.DB, author models.Author, title, content string) *models.Post {
	t.Helper()
	post := &models.Post{Author: author, Title: title, Content: content}
	require.NoError(t, db.Create(post).Error)
	return post
}
