package server

import (
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FrontPage renders the ten newest posts.
func (s *Server) FrontPage(c *fiber.Ctx) error {
	posts, err := s.postService.ListRecent(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Render("index", s.viewData(c, fiber.Map{
		"Posts": posts,
	}))
}

// NewPostForm renders the authoring form. Viewing it needs no session;
// submitting does.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	return c.Render("new_post", s.viewData(c, fiber.Map{
		"Title":   "",
		"Content": "",
	}))
}

// CreatePost handles a new post submission. Validation failures
// re-render the form with the submitted values intact.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	title := c.FormValue("title")
	content := c.FormValue("content")

	author := currentAuthor(c)
	if author == nil {
		return s.renderError(c, models.NewForbiddenError("You must be logged in to post"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Author:  *author,
		Title:   title,
		Content: content,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeValidation {
			return c.Status(fiber.StatusBadRequest).Render("new_post", s.viewData(c, fiber.Map{
				"Title":   title,
				"Content": content,
				"Error":   appErr.Message,
			}))
		}
		return s.renderError(c, err)
	}

	return c.Redirect("/post/"+post.Key, fiber.StatusFound)
}

// PostPage renders a post with its comments and like count.
func (s *Server) PostPage(c *fiber.Ctx) error {
	key := c.Params("key")

	post, err := s.postService.GetPost(c.Context(), key)
	if err != nil {
		return s.renderError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), key)
	if err != nil {
		return s.renderError(c, err)
	}

	likeCount, err := s.likeService.LikeCount(c.Context(), key)
	if err != nil {
		return s.renderError(c, err)
	}

	author := currentAuthor(c)
	isOwner := author != nil && author.Identity == post.Author.Identity

	identityID, _ := c.Locals("identityID").(string)
	hasLiked, err := s.likeService.HasLiked(c.Context(), identityID, key)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Render("post", s.viewData(c, fiber.Map{
		"Post":      post,
		"Comments":  comments,
		"LikeCount": likeCount,
		"IsOwner":   isOwner,
		"HasLiked":  hasLiked,
	}))
}

// EditPostForm renders the edit form pre-filled with the existing post.
// Anyone may view the form; only the owner can submit it.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.Context(), c.Params("key"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Render("edit_post", s.viewData(c, fiber.Map{
		"Post": post,
	}))
}

// EditPost applies an owner's changes and redirects to the detail page.
func (s *Server) EditPost(c *fiber.Ctx) error {
	identityID, _ := c.Locals("identityID").(string)

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		Identity: identityID,
		PostKey:  c.Params("key"),
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/post/"+post.Key, fiber.StatusFound)
}

// DeletePost removes an owner's post and redirects to the front page.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	identityID, _ := c.Locals("identityID").(string)

	if err := s.postService.DeletePost(c.Context(), identityID, c.Params("key")); err != nil {
		return s.renderError(c, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}
