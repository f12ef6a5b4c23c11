package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentPageLimit caps how many comments a post detail page shows,
// oldest first.
const CommentPageLimit = 10

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Author  models.Author
	PostKey string
	Text    string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Author.Identity == "" {
		return nil, models.NewForbiddenError("You must be logged in to comment")
	}

	// The parent post must resolve before we attach a comment to it.
	if _, err := s.postRepo.GetByKey(ctx, in.PostKey); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Author:  in.Author,
		PostKey: in.PostKey,
		Text:    in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	middleware.CommentsCreated.Inc()
	return comment, nil
}

// ListComments returns up to CommentPageLimit comments for a post,
// ordered by creation time ascending.
func (s *CommentService) ListComments(ctx context.Context, postKey string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postKey, CommentPageLimit)
}
