package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/middleware"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

// forumHandler handles HTTP requests for the community boards.
type forumHandler struct {
	forumService portssvc.ForumSvcFacade
}

func newForumHandler(fs portssvc.ForumSvcFacade) *forumHandler {
	return &forumHandler{forumService: fs}
}

// registerForumRoutes registers authenticated board routes.
func registerForumRoutes(rg *gin.RouterGroup, forumService portssvc.ForumSvcFacade) {
	h := newForumHandler(forumService)

	posts := rg.Group("/posts")
	{
		posts.POST("", h.createPost)
		posts.GET("/:post_id", h.getPost)
		posts.PUT("/:post_id", h.updatePost)
		posts.DELETE("/:post_id", h.deletePost)

		posts.POST("/:post_id/comments", h.addComment)
		posts.GET("/:post_id/comments", h.listComments)
	}
	rg.DELETE("/comments/:comment_id", h.deleteComment)
	rg.GET("/boards/:board/posts", h.listPostsByBoard)
}

// registerPublicForumRoutes exposes read-only access to the boards.
func registerPublicForumRoutes(rg *gin.RouterGroup, forumService portssvc.ForumSvcFacade) {
	h := newForumHandler(forumService)
	rg.GET("/boards/:board/posts", h.listPostsByBoard)
	rg.GET("/posts/:post_id", h.getPost)
	rg.GET("/posts/:post_id/comments", h.listComments)
}

// createPost godoc
// @Summary Create a post
// @Tags forum
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (h *forumHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	authorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.forumService.CreatePost(c.Request.Context(), req, authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create post", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// getPost godoc
// @Summary Get a post
// @Description Retrieves a post and increments its view counter.
// @Tags forum
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts/{post_id} [get]
func (h *forumHandler) getPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("post_id")

	post, err := h.forumService.GetPost(c.Request.Context(), postID, true)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		} else {
			logger.Error("Failed to get post", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get post"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// listPostsByBoard godoc
// @Summary List a board's posts
// @Tags forum
// @Produce json
// @Param board path string true "Board name" Enums(notice, free, review)
// @Success 200 {array} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /boards/{board}/posts [get]
func (h *forumHandler) listPostsByBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	board := models.PostBoard(c.Param("board"))
	if !board.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown board"})
		return
	}

	posts, err := h.forumService.ListPostsByBoard(c.Request.Context(), board)
	if err != nil {
		logger.Error("Failed to list posts", slog.String("board", string(board)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPostResponse(posts))
}

// updatePost godoc
// @Summary Update a post
// @Description Only the author may edit; admins may pin.
// @Tags forum
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to update"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/{post_id} [put]
func (h *forumHandler) updatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("post_id")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.forumService.UpdatePost(c.Request.Context(), postID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only the author may edit this post"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		} else {
			logger.Error("Failed to update post", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// deletePost godoc
// @Summary Delete a post
// @Tags forum
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/{post_id} [delete]
func (h *forumHandler) deletePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("post_id")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.forumService.DeletePost(c.Request.Context(), postID, actorID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only the author may delete this post"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		} else {
			logger.Error("Failed to delete post", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// addComment godoc
// @Summary Comment on a post
// @Tags forum
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param comment body dto.CreateCommentRequest true "Comment body"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/{post_id}/comments [post]
func (h *forumHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("post_id")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	authorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	comment, err := h.forumService.AddComment(c.Request.Context(), postID, req, authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		} else {
			logger.Error("Failed to add comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// listComments godoc
// @Summary List a post's comments
// @Tags forum
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts/{post_id}/comments [get]
func (h *forumHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("post_id")

	comments, err := h.forumService.ListComments(c.Request.Context(), postID)
	if err != nil {
		logger.Error("Failed to list comments", slog.String("post_id", postID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// deleteComment godoc
// @Summary Delete a comment
// @Tags forum
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{comment_id} [delete]
func (h *forumHandler) deleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("comment_id")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.forumService.DeleteComment(c.Request.Context(), commentID, actorID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only the author may delete this comment"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Comment not found"})
		} else {
			logger.Error("Failed to delete comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete comment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
