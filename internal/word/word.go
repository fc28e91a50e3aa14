package word

import (
	"errors"
	"time"
)

const (
	QuizSize        = 20
	MinQuizWords    = 4
	SourceNotebook  = "notebook"
	CategoryAll     = "all"
	DefaultCategory = "KY"
	ImportBatchSize = 1000
)

var (
	ErrEmptyWord             = errors.New("word empty")
	ErrAlreadyInNotebook     = errors.New("word already in notebook")
	ErrNotebookEntryNotFound = errors.New("notebook entry not found")
	ErrNotEnoughWords        = errors.New("not enough words for a quiz")
	ErrTranslationFailed     = errors.New("translation provider error")
)

type Translation struct {
	Src    string `json:"src"`
	Dst    string `json:"dst"`
	IsMock bool   `json:"is_mock,omitempty"`
}

type NotebookEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}

type LibraryWord struct {
	ID         int64     `json:"id"`
	Word       string    `json:"word"`
	Phonetic   string    `json:"phonetic"`
	Definition string    `json:"definition"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuizWord is a word with its meaning, taken either from a notebook
// (the saved translation) or from the library (the definition).
type QuizWord struct {
	ID      int64  `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}
