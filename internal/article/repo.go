package article

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

type Repo struct {
	db db.Querier
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{
		db: pool,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.article.list")
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, title, summary, cover, created_at
			FROM articles
			ORDER BY created_at DESC, id DESC;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]Summary, 0)
	for rows.Next() {
		var a Summary
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Cover, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}

	return articles, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Article, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.article.get")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() { tracing.EndSpan(span, err) }()

	var a Article
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, title, summary, content, cover, created_at FROM articles WHERE id = $1;`,
		id,
	).Scan(&a.ID, &a.Title, &a.Summary, &a.Content, &a.Cover, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &a, nil
}

// Add is used for seeding, articles have no public write route.
func (r *Repo) Add(ctx context.Context, a Article) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.article.add")
	defer func() { tracing.EndSpan(span, err) }()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO articles (title, summary, content, cover) VALUES ($1, $2, $3, $4) RETURNING id;`,
		a.Title, a.Summary, a.Content, a.Cover,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}

	return id, nil
}
