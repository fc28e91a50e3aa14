package word

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/internal/auth"
	"github.com/2beens/englishlearning/internal/telemetry/metrics"
	"github.com/2beens/englishlearning/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=word_test

type wordService interface {
	Translate(ctx context.Context, word string) (*Translation, error)
	AddToNotebook(ctx context.Context, userID int64, word, translation string) error
	Notebook(ctx context.Context, userID int64) ([]NotebookEntry, error)
	DeleteFromNotebook(ctx context.Context, id int64) error
	Library(ctx context.Context, category string) ([]LibraryWord, error)
	QuizWords(ctx context.Context, source string, userID int64) ([]QuizWord, error)
}

type addToNotebookRequest struct {
	UserID      int64  `json:"userId"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

type deleteFromNotebookRequest struct {
	ID int64 `json:"id"`
}

type Handler struct {
	service        wordService
	metricsManager *metrics.Manager
}

func NewHandler(service wordService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/word/search", handler.handleSearch).Methods("GET").Name("word-search")
	router.HandleFunc("/word/notebook", handler.handleNotebookList).Methods("GET").Name("notebook-list")
	router.HandleFunc("/word/notebook", handler.handleNotebookAdd).Methods("POST", "OPTIONS").Name("notebook-add")
	router.HandleFunc("/word/notebook", handler.handleNotebookDelete).Methods("DELETE").Name("notebook-delete")
	router.HandleFunc("/word/library", handler.handleLibrary).Methods("GET").Name("word-library")
	router.HandleFunc("/word/test-generate", handler.handleQuiz).Methods("GET").Name("word-quiz")
}

func (handler *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		pkg.WriteMessage(w, "error, word empty", http.StatusBadRequest)
		return
	}

	translation, err := handler.service.Translate(r.Context(), word)
	if err != nil {
		if errors.Is(err, ErrEmptyWord) {
			pkg.WriteMessage(w, "error, word empty", http.StatusBadRequest)
			return
		}
		log.Errorf("translate [%s]: %s", word, err)
		pkg.WriteMessage(w, "translation failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, translation)
}

func (handler *Handler) handleNotebookAdd(w http.ResponseWriter, r *http.Request) {
	var req addToNotebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("add to notebook, unmarshal json params: %s", err)
		pkg.WriteMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == 0 || strings.TrimSpace(req.Word) == "" {
		pkg.WriteMessage(w, "error, userId and word are required", http.StatusBadRequest)
		return
	}

	if !auth.ClaimAllowed(r.Context(), req.UserID) {
		log.Warnf("add to notebook: user id %d does not match the session user", req.UserID)
		pkg.WriteMessage(w, "user id does not match the session", http.StatusUnauthorized)
		return
	}

	if err := handler.service.AddToNotebook(r.Context(), req.UserID, req.Word, req.Translation); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInNotebook):
			pkg.WriteMessage(w, "word already in notebook", http.StatusConflict)
		case errors.Is(err, ErrEmptyWord):
			pkg.WriteMessage(w, "error, userId and word are required", http.StatusBadRequest)
		default:
			log.Errorf("add [%s] to notebook of user %d: %s", req.Word, req.UserID, err)
			pkg.WriteMessage(w, "failed to add word to notebook", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterNotebookWords.Inc()
	pkg.WriteMessage(w, "word added to notebook", http.StatusOK)
}

func (handler *Handler) handleNotebookList(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("userId")
	if userIDStr == "" {
		pkg.WriteMessage(w, "error, userId empty", http.StatusBadRequest)
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		pkg.WriteMessage(w, "error, userId NaN", http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Notebook(r.Context(), userID)
	if err != nil {
		log.Errorf("get notebook of user %d: %s", userID, err)
		pkg.WriteMessage(w, "failed to get notebook", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, entries)
}

func (handler *Handler) handleNotebookDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteFromNotebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("delete from notebook, unmarshal json params: %s", err)
		pkg.WriteMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		pkg.WriteMessage(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteFromNotebook(r.Context(), req.ID); err != nil {
		if errors.Is(err, ErrNotebookEntryNotFound) {
			pkg.WriteMessage(w, "notebook entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete notebook entry %d: %s", req.ID, err)
		pkg.WriteMessage(w, "failed to delete notebook entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteMessage(w, "notebook entry deleted", http.StatusOK)
}

func (handler *Handler) handleLibrary(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	words, err := handler.service.Library(r.Context(), category)
	if err != nil {
		log.Errorf("get library [%s]: %s", category, err)
		pkg.WriteMessage(w, "failed to get words", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, words)
}

func (handler *Handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")

	var userID int64
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		var err error
		userID, err = strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			pkg.WriteMessage(w, "error, userId NaN", http.StatusBadRequest)
			return
		}
	}

	words, err := handler.service.QuizWords(r.Context(), source, userID)
	if err != nil {
		if errors.Is(err, ErrNotEnoughWords) {
			pkg.WriteMessage(w, "at least 4 words needed", http.StatusBadRequest)
			return
		}
		log.Errorf("generate quiz [%s] for user %d: %s", source, userID, err)
		pkg.WriteMessage(w, "failed to generate quiz", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, words)
}
