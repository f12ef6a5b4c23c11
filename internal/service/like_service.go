package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo}
}

// LikePost records a like from the given author. Liking twice is a
// no-op: the store enforces one like per (identity, post) pair, so a
// concurrent duplicate resolves to a single record rather than two.
func (s *LikeService) LikePost(ctx context.Context, author models.Author, postKey string) error {
	if author.Identity == "" {
		return models.NewForbiddenError("You must be logged in to like a post")
	}

	if _, err := s.postRepo.GetByKey(ctx, postKey); err != nil {
		return err
	}

	like := &models.Like{
		Author:  author,
		PostKey: postKey,
	}
	created, err := s.likeRepo.Create(ctx, like)
	if err != nil {
		return err
	}
	if created {
		middleware.LikesCreated.Inc()
	}
	return nil
}

// LikeCount returns the number of likes on a post.
func (s *LikeService) LikeCount(ctx context.Context, postKey string) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postKey)
}

// HasLiked reports whether the given identity already liked the post.
// Anonymous viewers have no like state.
func (s *LikeService) HasLiked(ctx context.Context, identity, postKey string) (bool, error) {
	if identity == "" {
		return false, nil
	}
	return s.likeRepo.Exists(ctx, identity, postKey)
}
