package blog

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/englishlearning/internal/telemetry/tracing"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Feed reads all posts and comments and joins them. Any read failure fails the whole feed.
func (s *Service) Feed(ctx context.Context) (_ []FeedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.blog.feed")
	defer func() { tracing.EndSpan(span, err) }()

	posts, err := s.store.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}

	comments, err := s.store.Comments(ctx)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	span.SetAttributes(
		attribute.Int("posts", len(posts)),
		attribute.Int("comments", len(comments)),
	)

	return Assemble(posts, comments), nil
}

// AuthorizeOwner reports whether claimedUserID owns the given post or comment.
// A missing row yields false, same as a row owned by someone else.
func (s *Service) AuthorizeOwner(ctx context.Context, kind Resource, id, claimedUserID int64) (bool, error) {
	return authorizeOwner(ctx, s.store, kind, id, claimedUserID)
}

func authorizeOwner(ctx context.Context, store Store, kind Resource, id, claimedUserID int64) (bool, error) {
	ownerID, err := store.OwnerOf(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrCommentNotFound) {
			log.Tracef("authorize owner: %s %d not found", kind, id)
			return false, nil
		}
		return false, err
	}
	return ownerID == claimedUserID, nil
}

func (s *Service) CreatePost(ctx context.Context, userID int64, content string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.blog.createPost")
	defer func() { tracing.EndSpan(span, err) }()

	id, err := s.store.AddPost(ctx, userID, content)
	if err != nil {
		return fmt.Errorf("add post: %w", err)
	}

	log.Tracef("user %d created post %d", userID, id)
	return nil
}

// DeletePost removes the post and its comments in one transaction.
// The owner row is locked first, so a comment inserted concurrently on the same
// post waits on the foreign key check and fails once the post is gone.
func (s *Service) DeletePost(ctx context.Context, postID, requesterID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.blog.deletePost")
	span.SetAttributes(
		attribute.Int64("post_id", postID),
		attribute.Int64("requester_id", requesterID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	return s.store.InTx(ctx, "delete post", func(tx Store) error {
		isOwner, err := authorizeOwner(ctx, tx, ResourcePost, postID, requesterID)
		if err != nil {
			return fmt.Errorf("authorize post owner: %w", err)
		}
		if !isOwner {
			return ErrForbidden
		}

		removed, err := tx.DeleteCommentsOfPost(ctx, postID)
		if err != nil {
			return err
		}
		if err := tx.DeletePost(ctx, postID); err != nil {
			return err
		}

		log.Tracef("user %d deleted post %d with %d comments", requesterID, postID, removed)
		return nil
	})
}

// CreateComment doesn't check the post exists, the store's foreign key does.
func (s *Service) CreateComment(ctx context.Context, postID, userID int64, content string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.blog.createComment")
	defer func() { tracing.EndSpan(span, err) }()

	id, err := s.store.AddComment(ctx, postID, userID, content)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}

	log.Tracef("user %d commented on post %d: comment %d", userID, postID, id)
	return nil
}

func (s *Service) DeleteComment(ctx context.Context, commentID, requesterID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.blog.deleteComment")
	span.SetAttributes(
		attribute.Int64("comment_id", commentID),
		attribute.Int64("requester_id", requesterID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	return s.store.InTx(ctx, "delete comment", func(tx Store) error {
		isOwner, err := authorizeOwner(ctx, tx, ResourceComment, commentID, requesterID)
		if err != nil {
			return fmt.Errorf("authorize comment owner: %w", err)
		}
		if !isOwner {
			return ErrForbidden
		}
		return tx.DeleteComment(ctx, commentID)
	})
}

func (s *Service) Comment(ctx context.Context, id int64) (*Comment, error) {
	return s.store.GetComment(ctx, id)
}
