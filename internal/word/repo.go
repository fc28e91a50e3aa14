package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/englishlearning/internal/db"
	"github.com/2beens/englishlearning/internal/telemetry/tracing"
	"github.com/2beens/englishlearning/pkg"
)

type Repo struct {
	db db.Querier
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{
		db: pool,
	}
}

func (r *Repo) AddToNotebook(ctx context.Context, userID int64, word, translation string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.notebookAdd")
	span.SetAttributes(attribute.Int64("user.id", userID))
	defer func() { tracing.EndSpan(span, err) }()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO notebook (user_id, word, translation) VALUES ($1, $2, $3) RETURNING id;`,
		userID, word, translation,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrAlreadyInNotebook
		}
		return 0, fmt.Errorf("insert notebook entry: %w", err)
	}

	return id, nil
}

func (r *Repo) Notebook(ctx context.Context, userID int64) (_ []NotebookEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.notebook")
	span.SetAttributes(attribute.Int64("user.id", userID))
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, word, translation, created_at
			FROM notebook
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query notebook: %w", err)
	}
	defer rows.Close()

	entries := make([]NotebookEntry, 0)
	for rows.Next() {
		var e NotebookEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Word, &e.Translation, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notebook entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	return entries, nil
}

func (r *Repo) DeleteFromNotebook(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.notebookDelete")
	span.SetAttributes(attribute.Int64("id", id))
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM notebook WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete notebook entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotebookEntryNotFound
	}

	return nil
}

// Library returns library words of a category ordered alphabetically, case-insensitive.
// Empty category or "all" selects every word.
func (r *Repo) Library(ctx context.Context, category string) (_ []LibraryWord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.library")
	span.SetAttributes(attribute.String("category", category))
	defer func() { tracing.EndSpan(span, err) }()

	var rows pgx.Rows
	if isAllCategories(category) {
		rows, err = r.db.Query(
			ctx,
			`
				SELECT id, word, phonetic, definition, category, created_at
				FROM words
				ORDER BY LOWER(word) ASC, id ASC;
			`,
		)
	} else {
		rows, err = r.db.Query(
			ctx,
			`
				SELECT id, word, phonetic, definition, category, created_at
				FROM words
				WHERE category = $1
				ORDER BY LOWER(word) ASC, id ASC;
			`,
			category,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	defer rows.Close()

	words := make([]LibraryWord, 0)
	for rows.Next() {
		var w LibraryWord
		if err := rows.Scan(&w.ID, &w.Word, &w.Phonetic, &w.Definition, &w.Category, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan library word: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	return words, nil
}

func (r *Repo) RandomNotebookWords(ctx context.Context, userID int64, limit int) (_ []QuizWord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.randomNotebook")
	span.SetAttributes(attribute.Int64("user.id", userID))
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, word, translation FROM notebook WHERE user_id = $1 ORDER BY random() LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query random notebook words: %w", err)
	}
	return collectQuizWords(rows)
}

func (r *Repo) RandomLibraryWords(ctx context.Context, category string, limit int) (_ []QuizWord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.randomLibrary")
	span.SetAttributes(attribute.String("category", category))
	defer func() { tracing.EndSpan(span, err) }()

	var rows pgx.Rows
	if isAllCategories(category) {
		rows, err = r.db.Query(
			ctx,
			`SELECT id, word, definition FROM words ORDER BY random() LIMIT $1;`,
			limit,
		)
	} else {
		rows, err = r.db.Query(
			ctx,
			`SELECT id, word, definition FROM words WHERE category = $1 ORDER BY random() LIMIT $2;`,
			category, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query random library words: %w", err)
	}
	return collectQuizWords(rows)
}

// ImportWords inserts library words in batches, skipping (word, category) pairs
// already present. Returns the number of actually inserted rows.
func (r *Repo) ImportWords(ctx context.Context, words []LibraryWord, batchSize int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.word.import")
	span.SetAttributes(attribute.Int("words", len(words)))
	defer func() { tracing.EndSpan(span, err) }()

	if batchSize <= 0 {
		batchSize = ImportBatchSize
	}

	var inserted int64
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))

		batch := &pgx.Batch{}
		for _, w := range words[start:end] {
			batch.Queue(
				`
					INSERT INTO words (word, phonetic, definition, category)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (word, category) DO NOTHING;
				`,
				w.Word, w.Phonetic, w.Definition, w.Category,
			)
		}

		br := r.db.SendBatch(ctx, batch)
		for i := start; i < end; i++ {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return inserted, fmt.Errorf("insert word [%s]: %w", words[i].Word, err)
			}
			inserted += tag.RowsAffected()
		}
		if err := br.Close(); err != nil {
			return inserted, fmt.Errorf("close batch: %w", err)
		}
	}

	return inserted, nil
}

func collectQuizWords(rows pgx.Rows) ([]QuizWord, error) {
	defer rows.Close()

	words := make([]QuizWord, 0)
	for rows.Next() {
		var w QuizWord
		if err := rows.Scan(&w.ID, &w.Word, &w.Meaning); err != nil {
			return nil, fmt.Errorf("scan quiz word: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read quiz words: %w", err)
	}

	return words, nil
}

func isAllCategories(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, CategoryAll)
}
