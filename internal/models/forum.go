package models

import "time"

// PostBoard is the fixed board a forum post belongs to.
type PostBoard string

const (
	BoardNotice PostBoard = "notice"
	BoardFree   PostBoard = "free"
	BoardReview PostBoard = "review"
)

// Valid reports whether b is one of the known boards.
func (b PostBoard) Valid() bool {
	switch b {
	case BoardNotice, BoardFree, BoardReview:
		return true
	}
	return false
}

// Post is a forum post authored by a user.
type Post struct {
	PostID    string    `db:"post_id" json:"postID"`
	Board     PostBoard `db:"board" json:"board"`
	AuthorID  string    `db:"author_id" json:"authorID"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	IsPinned  bool      `db:"is_pinned" json:"isPinned"`
	ViewCount int       `db:"view_count" json:"viewCount"`
	AuditFields
}

// Comment is a reply on a post.
type Comment struct {
	CommentID string    `db:"comment_id" json:"commentID"`
	PostID    string    `db:"post_id" json:"postID"`
	AuthorID  string    `db:"author_id" json:"authorID"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
