package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment store operations.
// Comments are created and listed only; there is no update or delete path.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postKey string, limit int) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ctx, span := observability.StartStoreSpan(ctx, "create", "comments")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		observability.RecordError(ctx, err)
		return err
	}
	cache.InvalidatePostList(ctx)
	return nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postKey string, limit int) ([]*models.Comment, error) {
	ctx, span := observability.StartStoreSpan(ctx, "list", "comments")
	defer span.End()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_key = ?", postKey).
		Order("created_at ASC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		observability.RecordError(ctx, err)
		return nil, err
	}
	return comments, nil
}
