// Package seed provides helpers to create demo data for the blog
// database. These helpers are intended for development and testing
// only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is shared by all seeded accounts.
const DefaultPassword = "password123"

// Seeder builds domain entities and persists them.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes every record. Likes and comments go first so the
// post FK constraints never trip.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Like{}, &models.Comment{}, &models.Post{}, &models.Account{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// CreateAccount persists an account with the default password.
func (s *Seeder) CreateAccount(ctx context.Context) (*models.Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	account := &models.Account{
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// CreatePost persists a post authored by the given account.
func (s *Seeder) CreatePost(ctx context.Context, account *models.Account) (*models.Post, error) {
	post := &models.Post{
		Author:  account.Snapshot(),
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(2, 4, 8, "\n"),
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the given post.
func (s *Seeder) CreateComment(ctx context.Context, account *models.Account, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Author:  account.Snapshot(),
		PostKey: post.Key,
		Text:    gofakeit.Sentence(12),
	}
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like on the given post. Duplicate pairs are
// swallowed by the store's uniqueness constraint.
func (s *Seeder) CreateLike(ctx context.Context, account *models.Account, post *models.Post) error {
	like := &models.Like{
		Author:  account.Snapshot(),
		PostKey: post.Key,
	}
	err := s.db.WithContext(ctx).Create(like).Error
	if err != nil && isDuplicateError(err) {
		return nil
	}
	return err
}

func isDuplicateError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Populate fills the database with accounts, posts, comments, and
// likes in roughly blog-shaped proportions.
func (s *Seeder) Populate(ctx context.Context, numAccounts, numPosts int) error {
	accounts := make([]*models.Account, 0, numAccounts)
	for i := 0; i < numAccounts; i++ {
		account, err := s.CreateAccount(ctx)
		if err != nil {
			return fmt.Errorf("seeding account: %w", err)
		}
		accounts = append(accounts, account)
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := accounts[rand.Intn(len(accounts))]
		post, err := s.CreatePost(ctx, author)
		if err != nil {
			return fmt.Errorf("seeding post: %w", err)
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		for _, account := range accounts {
			if rand.Float64() < 0.3 {
				if err := s.CreateLike(ctx, account, post); err != nil {
					return fmt.Errorf("seeding like: %w", err)
				}
			}
			if rand.Float64() < 0.2 {
				if _, err := s.CreateComment(ctx, account, post); err != nil {
					return fmt.Errorf("seeding comment: %w", err)
				}
			}
		}
	}

	log.Printf("Seeded %d accounts and %d posts", len(accounts), len(posts))
	return nil
}
