package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like store operations.
// Likes are never mutated or deleted.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) (bool, error)
	Exists(ctx context.Context, identity, postKey string) (bool, error)
	CountByPost(ctx context.Context, postKey string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like, absorbing duplicates through the store's
// uniqueness constraint on (author_identity, post_key). Returns whether
// a new record was created.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) (bool, error) {
	ctx, span := observability.StartStoreSpan(ctx, "create", "likes")
	defer span.End()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "author_identity"}, {Name: "post_key"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		observability.RecordError(ctx, result.Error)
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, like.PostKey)
		cache.InvalidatePostList(ctx)
		return true, nil
	}
	return false, nil
}

func (r *likeRepository) Exists(ctx context.Context, identity, postKey string) (bool, error) {
	ctx, span := observability.StartStoreSpan(ctx, "get", "likes")
	defer span.End()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("author_identity = ? AND post_key = ?", identity, postKey).
		Count(&count).Error; err != nil {
		observability.RecordError(ctx, err)
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postKey string) (int64, error) {
	ctx, span := observability.StartStoreSpan(ctx, "count", "likes")
	defer span.End()

	var count int64
	err := cache.Aside(ctx, cache.LikeCountKey(postKey), &count, cache.LikeCountTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("post_key = ?", postKey).
			Count(&count).Error
	})
	if err != nil {
		observability.RecordError(ctx, err)
		return 0, err
	}
	return count, nil
}
