package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/englishlearning/internal/db"
	"github.com/2beens/englishlearning/internal/telemetry/tracing"
)

// Store is the persistence gateway of the blog feed.
type Store interface {
	// Posts returns all posts with owner usernames, newest first.
	Posts(ctx context.Context) ([]Post, error)
	// Comments returns all comments with commenter usernames, oldest first.
	Comments(ctx context.Context) ([]Comment, error)
	AddPost(ctx context.Context, userID int64, content string) (int64, error)
	AddComment(ctx context.Context, blogID, userID int64, content string) (int64, error)
	GetComment(ctx context.Context, id int64) (*Comment, error)
	// OwnerOf returns the user id owning the given row. Inside a transaction
	// the row stays locked until commit/rollback.
	OwnerOf(ctx context.Context, kind Resource, id int64) (int64, error)
	DeleteCommentsOfPost(ctx context.Context, postID int64) (int64, error)
	DeletePost(ctx context.Context, id int64) error
	DeleteComment(ctx context.Context, id int64) error
	// InTx runs fn with a Store bound to a single transaction.
	InTx(ctx context.Context, reason string, fn func(tx Store) error) error
}

var _ Store = (*Repo)(nil)

type Repo struct {
	pool *pgxpool.Pool
	db   db.Querier
	inTx bool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		db:   pool,
	}
}

func (r *Repo) InTx(ctx context.Context, reason string, fn func(tx Store) error) error {
	if r.inTx {
		return fn(r)
	}
	return db.WithTx(ctx, r.pool, reason, func(tx pgx.Tx) error {
		return fn(&Repo{
			pool: r.pool,
			db:   tx,
			inTx: true,
		})
	})
}

func (r *Repo) Posts(ctx context.Context) (_ []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.posts")
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT b.id, b.user_id, u.username, b.content, b.created_at
			FROM blogs b
			JOIN users u ON u.id = b.user_id
			ORDER BY b.created_at DESC, b.id DESC;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}

	return posts, nil
}

func (r *Repo) Comments(ctx context.Context) (_ []Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.comments")
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT c.id, c.blog_id, c.user_id, u.username, c.content, c.created_at
			FROM comments c
			JOIN users u ON u.id = c.user_id
			ORDER BY c.created_at ASC, c.id ASC;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return comments, nil
}

func (r *Repo) AddPost(ctx context.Context, userID int64, content string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.addPost")
	span.SetAttributes(attribute.Int64("user_id", userID))
	defer func() { tracing.EndSpan(span, err) }()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blogs (user_id, content) VALUES ($1, $2) RETURNING id;`,
		userID, content,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	return id, nil
}

func (r *Repo) AddComment(ctx context.Context, blogID, userID int64, content string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.addComment")
	span.SetAttributes(
		attribute.Int64("blog_id", blogID),
		attribute.Int64("user_id", userID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments (blog_id, user_id, content) VALUES ($1, $2, $3) RETURNING id;`,
		blogID, userID, content,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	return id, nil
}

func (r *Repo) GetComment(ctx context.Context, id int64) (_ *Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.getComment")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() { tracing.EndSpan(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`
			SELECT c.id, c.blog_id, c.user_id, u.username, c.content, c.created_at
			FROM comments c
			JOIN users u ON u.id = c.user_id
			WHERE c.id = $1;
		`,
		id,
	)
	c, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	return c, err
}

func (r *Repo) OwnerOf(ctx context.Context, kind Resource, id int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.ownerOf")
	span.SetAttributes(
		attribute.String("kind", string(kind)),
		attribute.Int64("id", id),
		attribute.Bool("locking", r.inTx),
	)
	defer func() { tracing.EndSpan(span, err) }()

	var (
		query       string
		errNotFound error
	)
	switch kind {
	case ResourcePost:
		query, errNotFound = `SELECT user_id FROM blogs WHERE id = $1`, ErrPostNotFound
	case ResourceComment:
		query, errNotFound = `SELECT user_id FROM comments WHERE id = $1`, ErrCommentNotFound
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownResource, kind)
	}
	if r.inTx {
		query += ` FOR UPDATE`
	}

	var ownerID int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errNotFound
		}
		return 0, fmt.Errorf("get %s owner: %w", kind, err)
	}

	return ownerID, nil
}

func (r *Repo) DeleteCommentsOfPost(ctx context.Context, postID int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.deleteCommentsOfPost")
	span.SetAttributes(attribute.Int64("blog_id", postID))
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE blog_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("delete comments of post %d: %w", postID, err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repo) DeletePost(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.deletePost")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *Repo) DeleteComment(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.deleteComment")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func scanComment(row pgx.Row) (*Comment, error) {
	var c Comment
	if err := row.Scan(&c.ID, &c.BlogID, &c.UserID, &c.Username, &c.Content, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}
