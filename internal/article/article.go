package article

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

type Summary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"created_at"`
}

type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"created_at"`
}
