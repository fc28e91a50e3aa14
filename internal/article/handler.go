package article

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=article_test

type articleStore interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (*Article, error)
}

type Handler struct {
	store articleStore
}

func NewHandler(store articleStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/article/list", handler.handleList).Methods("GET").Name("article-list")
	router.HandleFunc("/article/detail", handler.handleDetail).Methods("GET").Name("article-detail")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	articles, err := handler.store.List(r.Context())
	if err != nil {
		log.Errorf("get articles: %s", err)
		pkg.WriteMessage(w, "failed to get articles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, articles)
}

func (handler *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		pkg.WriteMessage(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		pkg.WriteMessage(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	article, err := handler.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			pkg.WriteMessage(w, "article not found", http.StatusNotFound)
			return
		}
		log.Errorf("get article %d: %s", id, err)
		pkg.WriteMessage(w, "failed to get article", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, article)
}
