// Package service holds the business rules sitting between the HTTP
// handlers and the repositories: validation, ownership checks, and the
// metrics they emit.
package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FrontPageLimit is how many posts the front page shows, newest first.
const FrontPageLimit = 10

// minFieldLen is the exclusive lower bound on title and content length
// for new posts. Edits are deliberately not re-validated; an owner may
// shorten a post below this bound.
const minFieldLen = 3

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Author  models.Author
	Title   string
	Content string
}

type UpdatePostInput struct {
	Identity string
	PostKey  string
	Title    string
	Content  string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListRecent returns the newest posts for the front page.
func (s *PostService) ListRecent(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListRecent(ctx, FrontPageLimit)
}

// GetPost resolves a post by its store key.
func (s *PostService) GetPost(ctx context.Context, key string) (*models.Post, error) {
	return s.postRepo.GetByKey(ctx, key)
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Author.Identity == "" {
		return nil, models.NewForbiddenError("You must be logged in to post")
	}
	if len(in.Title) <= minFieldLen {
		return nil, models.NewValidationError("Title must be longer than 3 characters")
	}
	if len(in.Content) <= minFieldLen {
		return nil, models.NewValidationError("Content must be longer than 3 characters")
	}

	post := &models.Post{
		Author:  in.Author,
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	middleware.PostsCreated.Inc()
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByKey(ctx, in.PostKey)
	if err != nil {
		return nil, err
	}
	if in.Identity == "" || in.Identity != post.Author.Identity {
		return nil, models.NewForbiddenError("Only the author may edit this post")
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, identity, postKey string) error {
	post, err := s.postRepo.GetByKey(ctx, postKey)
	if err != nil {
		return err
	}
	if identity == "" || identity != post.Author.Identity {
		return models.NewForbiddenError("Only the author may delete this post")
	}
	return s.postRepo.Delete(ctx, postKey)
}
