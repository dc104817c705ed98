package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type forumService struct {
	forumRepo portsrepo.ForumRepository
}

// NewForumService creates the community forum service.
func NewForumService(forumRepo portsrepo.ForumRepository) portssvc.ForumSvcFacade {
	return &forumService{forumRepo: forumRepo}
}

var _ portssvc.ForumSvcFacade = (*forumService)(nil)

func (s *forumService) CreatePost(ctx context.Context, req dto.CreatePostRequest, authorID string) (*models.Post, error) {
	now := time.Now().UTC()
	post := models.Post{
		PostID:   uuid.NewString(),
		Board:    models.PostBoard(req.Board),
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     authorID,
			LastUpdatedAt: now,
			LastUpdatedBy: authorID,
		},
	}

	if err := s.forumRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

func (s *forumService) GetPost(ctx context.Context, postID string, countView bool) (*models.Post, error) {
	post, err := s.forumRepo.FindPostByID(ctx, postID, countView)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}
	return post, nil
}

func (s *forumService) ListPostsByBoard(ctx context.Context, board models.PostBoard) ([]models.Post, error) {
	posts, err := s.forumRepo.ListPostsByBoard(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for board %s: %w", board, err)
	}
	return posts, nil
}

func (s *forumService) UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest, actorID string) (*models.Post, error) {
	post, err := s.forumRepo.FindPostByID(ctx, postID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}
	if post.AuthorID != actorID {
		return nil, fmt.Errorf("%w: only the author may edit a post", apperrors.ErrForbidden)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.IsPinned != nil {
		post.IsPinned = *req.IsPinned
	}
	post.LastUpdatedAt = time.Now().UTC()
	post.LastUpdatedBy = actorID

	if err := s.forumRepo.UpdatePost(ctx, *post); err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", postID, err)
	}
	return post, nil
}

func (s *forumService) DeletePost(ctx context.Context, postID string, actorID string) error {
	if err := s.forumRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}
	return nil
}

func (s *forumService) AddComment(ctx context.Context, postID string, req dto.CreateCommentRequest, authorID string) (*models.Comment, error) {
	if _, err := s.forumRepo.FindPostByID(ctx, postID, false); err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}

	comment := models.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		AuthorID:  authorID,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.forumRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

func (s *forumService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.forumRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %s: %w", postID, err)
	}
	return comments, nil
}

func (s *forumService) DeleteComment(ctx context.Context, commentID string, actorID string) error {
	if err := s.forumRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	return nil
}
