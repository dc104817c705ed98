package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// CreatePostRequest defines the data needed to create a forum post.
type CreatePostRequest struct {
	Board string `json:"board" binding:"required,oneof=notice free review"`
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// UpdatePostRequest defines the updatable post fields.
type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	IsPinned *bool   `json:"isPinned"`
}

// PostResponse defines the data returned for a forum post.
type PostResponse struct {
	PostID    string    `json:"postID"`
	Board     string    `json:"board"`
	AuthorID  string    `json:"authorID"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsPinned  bool      `json:"isPinned"`
	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest defines the data needed to comment on a post.
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentResponse defines the data returned for a comment.
type CommentResponse struct {
	CommentID string    `json:"commentID"`
	PostID    string    `json:"postID"`
	AuthorID  string    `json:"authorID"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPostResponse converts a models.Post to its response DTO.
func ToPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		PostID:    p.PostID,
		Board:     string(p.Board),
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Body:      p.Body,
		IsPinned:  p.IsPinned,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPostResponse converts a slice of posts to response DTOs.
func ToListPostResponse(posts []models.Post) []PostResponse {
	res := make([]PostResponse, len(posts))
	for i, p := range posts {
		res[i] = ToPostResponse(&p)
	}
	return res
}

// ToCommentResponse converts a models.Comment to its response DTO.
func ToCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// ToListCommentResponse converts a slice of comments to response DTOs.
func ToListCommentResponse(comments []models.Comment) []CommentResponse {
	res := make([]CommentResponse, len(comments))
	for i, c := range comments {
		res[i] = ToCommentResponse(&c)
	}
	return res
}
