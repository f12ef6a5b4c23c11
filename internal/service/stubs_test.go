package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByKeyFn   func(context.Context, string) (*models.Post, error)
	listRecentFn func(context.Context, int) ([]*models.Post, error)
	updateFn     func(context.Context, *models.Post) error
	deleteFn     func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByKey(ctx context.Context, key string) (*models.Post, error) {
	return s.getByKeyFn(ctx, key)
}
func (s *postRepoStub) ListRecent(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.listRecentFn(ctx, limit)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, key string) error {
	return s.deleteFn(ctx, key)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, _ *models.Post) error { return nil },
		getByKeyFn:   func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listRecentFn: func(_ context.Context, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	listByPostFn func(context.Context, string, int) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postKey string, limit int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postKey, limit)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn: func(_ context.Context, _ string, _ int) ([]*models.Comment, error) { return nil, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn      func(context.Context, *models.Like) (bool, error)
	existsFn      func(context.Context, string, string) (bool, error)
	countByPostFn func(context.Context, string) (int64, error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) (bool, error) {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) Exists(ctx context.Context, identity, postKey string) (bool, error) {
	return s.existsFn(ctx, identity, postKey)
}
func (s *likeRepoStub) CountByPost(ctx context.Context, postKey string) (int64, error) {
	return s.countByPostFn(ctx, postKey)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:      func(_ context.Context, _ *models.Like) (bool, error) { return true, nil },
		existsFn:      func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		countByPostFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// accountRepoStub is a stub for repository.AccountRepository.
type accountRepoStub struct {
	createFn     func(context.Context, *models.Account) error
	getByEmailFn func(context.Context, string) (*models.Account, error)
}

func (s *accountRepoStub) Create(ctx context.Context, account *models.Account) error {
	return s.createFn(ctx, account)
}
func (s *accountRepoStub) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.getByEmailFn(ctx, email)
}

func noopAccountRepo() *accountRepoStub {
	return &accountRepoStub{
		createFn:     func(_ context.Context, _ *models.Account) error { return nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.Account, error) { return nil, nil },
	}
}

// assertErrorCode asserts that err is an AppError with the given code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
