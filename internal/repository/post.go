// Package repository provides the store access layer for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post store operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByKey(ctx context.Context, key string) (*models.Post, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, key string) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartStoreSpan(ctx, "create", "posts")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		observability.RecordError(ctx, err)
		return err
	}
	cache.InvalidatePostList(ctx)
	return nil
}

func (r *postRepository) GetByKey(ctx context.Context, key string) (*models.Post, error) {
	ctx, span := observability.StartStoreSpan(ctx, "get", "posts")
	defer span.End()

	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(key), &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).Where("key = ?", key).First(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", key)
		}
		observability.RecordError(ctx, err)
		return nil, err
	}
	return &post, nil
}

// applyCounts adds subqueries to fetch comment and like counts in a single query.
func (r *postRepository) applyCounts(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_key = posts.key) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_key = posts.key) as likes_count")
}

func (r *postRepository) ListRecent(ctx context.Context, limit int) ([]*models.Post, error) {
	ctx, span := observability.StartStoreSpan(ctx, "list", "posts")
	defer span.End()

	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostListKey(), &posts, cache.PostListTTL, func() error {
		return r.applyCounts(r.db.WithContext(ctx)).
			Order("created_at DESC").
			Limit(limit).
			Find(&posts).Error
	})
	if err != nil {
		observability.RecordError(ctx, err)
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartStoreSpan(ctx, "update", "posts")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		observability.RecordError(ctx, err)
		return err
	}
	cache.InvalidatePost(ctx, post.Key)
	cache.InvalidatePostList(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, key string) error {
	ctx, span := observability.StartStoreSpan(ctx, "delete", "posts")
	defer span.End()

	if err := r.db.WithContext(ctx).Delete(&models.Post{}, "key = ?", key).Error; err != nil {
		observability.RecordError(ctx, err)
		return err
	}
	cache.InvalidatePost(ctx, key)
	cache.InvalidatePostList(ctx)
	return nil
}
