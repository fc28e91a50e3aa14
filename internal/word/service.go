package word

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/englishlearning/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=word

type store interface {
	AddToNotebook(ctx context.Context, userID int64, word, translation string) (int64, error)
	Notebook(ctx context.Context, userID int64) ([]NotebookEntry, error)
	DeleteFromNotebook(ctx context.Context, id int64) error
	Library(ctx context.Context, category string) ([]LibraryWord, error)
	RandomNotebookWords(ctx context.Context, userID int64, limit int) ([]QuizWord, error)
	RandomLibraryWords(ctx context.Context, category string, limit int) ([]QuizWord, error)
}

type translator interface {
	Translate(ctx context.Context, word string) (*Translation, error)
}

type Service struct {
	store      store
	translator translator
}

func NewService(store store, translator translator) *Service {
	return &Service{
		store:      store,
		translator: translator,
	}
}

func (s *Service) Translate(ctx context.Context, word string) (*Translation, error) {
	return s.translator.Translate(ctx, word)
}

func (s *Service) AddToNotebook(ctx context.Context, userID int64, word, translation string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.word.notebookAdd")
	defer func() { tracing.EndSpan(span, err) }()

	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}

	id, err := s.store.AddToNotebook(ctx, userID, word, translation)
	if err != nil {
		return err
	}

	log.Tracef("user %d added [%s] to notebook: %d", userID, word, id)
	return nil
}

func (s *Service) Notebook(ctx context.Context, userID int64) ([]NotebookEntry, error) {
	return s.store.Notebook(ctx, userID)
}

func (s *Service) DeleteFromNotebook(ctx context.Context, id int64) error {
	return s.store.DeleteFromNotebook(ctx, id)
}

func (s *Service) Library(ctx context.Context, category string) ([]LibraryWord, error) {
	return s.store.Library(ctx, category)
}

// QuizWords picks up to QuizSize random words. Source "notebook" draws from the
// user's notebook, any other source is a library category.
func (s *Service) QuizWords(ctx context.Context, source string, userID int64) (_ []QuizWord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.word.quiz")
	span.SetAttributes(
		attribute.String("source", source),
		attribute.Int64("user.id", userID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	var words []QuizWord
	if source == SourceNotebook {
		words, err = s.store.RandomNotebookWords(ctx, userID, QuizSize)
	} else {
		words, err = s.store.RandomLibraryWords(ctx, source, QuizSize)
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz words: %w", err)
	}

	if len(words) < MinQuizWords {
		return nil, ErrNotEnoughWords
	}

	return words, nil
}
