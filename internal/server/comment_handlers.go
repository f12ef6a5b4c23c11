package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment attaches a comment to a post and redirects back to it.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	key := c.Params("key")

	author := currentAuthor(c)
	if author == nil {
		return s.renderError(c, models.NewForbiddenError("You must be logged in to comment"))
	}

	_, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		Author:  *author,
		PostKey: key,
		Text:    c.FormValue("text"),
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/post/"+key, fiber.StatusFound)
}

// LikePost records a like and redirects back to the post. Liking a
// post twice changes nothing.
func (s *Server) LikePost(c *fiber.Ctx) error {
	key := c.Params("key")

	author := currentAuthor(c)
	if author == nil {
		return s.renderError(c, models.NewForbiddenError("You must be logged in to like a post"))
	}

	if err := s.likeService.LikePost(c.Context(), *author, key); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/post/"+key, fiber.StatusFound)
}
