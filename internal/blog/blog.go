package blog

import (
	"errors"
	"time"
)

var (
	// ErrForbidden covers both "not found" and "not the owner", the caller
	// can't tell the two apart.
	ErrForbidden       = errors.New("forbidden")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUnknownResource = errors.New("unknown resource kind")
)

// Resource is the kind of row an ownership check is run against.
type Resource string

const (
	ResourcePost    Resource = "post"
	ResourceComment Resource = "comment"
)

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        int64     `json:"id"`
	BlogID    int64     `json:"blog_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedItem is a post with its owner username and its comments, never persisted.
type FeedItem struct {
	Post
	Comments []Comment `json:"comments"`
}
