package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type PgxForumRepository struct {
	BaseRepository
}

// newPgxForumRepository creates the repository for posts and comments.
func newPgxForumRepository(pool *pgxpool.Pool) portsrepo.ForumRepository {
	return &PgxForumRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ForumRepository = (*PgxForumRepository)(nil)

const postColumns = `post_id, board, author_id, title, body, is_pinned, view_count, created_at, created_by, last_updated_at, last_updated_by`

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.PostID,
		&p.Board,
		&p.AuthorID,
		&p.Title,
		&p.Body,
		&p.IsPinned,
		&p.ViewCount,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxForumRepository) SavePost(ctx context.Context, post models.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		post.PostID,
		post.Board,
		post.AuthorID,
		post.Title,
		post.Body,
		post.IsPinned,
		post.ViewCount,
		post.CreatedAt,
		post.CreatedBy,
		post.LastUpdatedAt,
		post.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save post %s: %w", post.PostID, err)
	}
	return nil
}

func (r *PgxForumRepository) FindPostByID(ctx context.Context, postID string, countView bool) (*models.Post, error) {
	var row pgx.Row
	if countView {
		row = r.Pool.QueryRow(ctx, `
			UPDATE posts SET view_count = view_count + 1
			WHERE post_id = $1
			RETURNING `+postColumns+`;
		`, postID)
	} else {
		row = r.Pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE post_id = $1;`, postID)
	}

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post by id %s: %w", postID, err)
	}
	return &post, nil
}

func (r *PgxForumRepository) ListPostsByBoard(ctx context.Context, board models.PostBoard) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE board = $1
		ORDER BY is_pinned DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, board)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts for board %s: %w", board, err)
	}
	defer rows.Close()

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Post, error) {
		return scanPost(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts: %w", err)
	}
	return posts, nil
}

func (r *PgxForumRepository) UpdatePost(ctx context.Context, post models.Post) error {
	query := `
		UPDATE posts SET title = $2, body = $3, is_pinned = $4, last_updated_at = $5, last_updated_by = $6
		WHERE post_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		post.PostID,
		post.Title,
		post.Body,
		post.IsPinned,
		post.LastUpdatedAt,
		post.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update post %s: %w", post.PostID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxForumRepository) DeletePost(ctx context.Context, postID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM posts WHERE post_id = $1;`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}
	return nil
}

func (r *PgxForumRepository) SaveComment(ctx context.Context, comment models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.PostID,
		comment.AuthorID,
		comment.Body,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment %s: %w", comment.CommentID, err)
	}
	return nil
}

func (r *PgxForumRepository) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT comment_id, post_id, author_id, body, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for post %s: %w", postID, err)
	}
	defer rows.Close()

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Comment, error) {
		var c models.Comment
		err := row.Scan(&c.CommentID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan comments: %w", err)
	}
	return comments, nil
}

func (r *PgxForumRepository) DeleteComment(ctx context.Context, commentID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	return nil
}
