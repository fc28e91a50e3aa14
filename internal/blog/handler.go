package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/internal/auth"
	"github.com/2beens/englishlearning/internal/telemetry/metrics"
	"github.com/2beens/englishlearning/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=blog_test

type feedService interface {
	Feed(ctx context.Context) ([]FeedItem, error)
	CreatePost(ctx context.Context, userID int64, content string) error
	DeletePost(ctx context.Context, postID, requesterID int64) error
	CreateComment(ctx context.Context, postID, userID int64, content string) error
	DeleteComment(ctx context.Context, commentID, requesterID int64) error
	Comment(ctx context.Context, id int64) (*Comment, error)
}

type createPostRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

type deletePostRequest struct {
	BlogID int64 `json:"blogId"`
	UserID int64 `json:"userId"`
}

type createCommentRequest struct {
	BlogID  int64  `json:"blogId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

type deleteCommentRequest struct {
	CommentID int64 `json:"commentId"`
	UserID    int64 `json:"userId"`
}

type Handler struct {
	service        feedService
	metricsManager *metrics.Manager
}

func NewHandler(service feedService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/blog/list", handler.handleList).Methods("GET").Name("blog-list")
	router.HandleFunc("/blog/create", handler.handleCreatePost).Methods("POST", "OPTIONS").Name("blog-create")
	router.HandleFunc("/blog/delete", handler.handleDeletePost).Methods("DELETE", "OPTIONS").Name("blog-delete")
	router.HandleFunc("/blog/comment", handler.handleGetComment).Methods("GET").Name("comment-get")
	router.HandleFunc("/blog/comment", handler.handleCreateComment).Methods("POST", "OPTIONS").Name("comment-create")
	router.HandleFunc("/blog/comment", handler.handleDeleteComment).Methods("DELETE").Name("comment-delete")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	feed, err := handler.service.Feed(r.Context())
	if err != nil {
		log.Errorf("get blog feed: %s", err)
		pkg.WriteMessage(w, "failed to get posts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, feed)
}

func (handler *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !claimAllowed(w, r, req.UserID) {
		return
	}

	if err := handler.service.CreatePost(r.Context(), req.UserID, req.Content); err != nil {
		logStoreError("create post", err)
		pkg.WriteMessage(w, "failed to create post", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterPosts.Inc()
	pkg.WriteMessage(w, "post created", http.StatusOK)
}

func (handler *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	var req deletePostRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !claimAllowed(w, r, req.UserID) {
		return
	}

	if err := handler.service.DeletePost(r.Context(), req.BlogID, req.UserID); err != nil {
		if errors.Is(err, ErrForbidden) {
			handler.metricsManager.CounterForbidden.WithLabelValues(string(ResourcePost)).Inc()
			pkg.WriteMessage(w, "you are not allowed to delete this post", http.StatusForbidden)
			return
		}
		log.Errorf("delete post %d: %s", req.BlogID, err)
		pkg.WriteMessage(w, "failed to delete post", http.StatusInternalServerError)
		return
	}

	pkg.WriteMessage(w, "post deleted", http.StatusOK)
}

func (handler *Handler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !claimAllowed(w, r, req.UserID) {
		return
	}

	if err := handler.service.CreateComment(r.Context(), req.BlogID, req.UserID, req.Content); err != nil {
		logStoreError("create comment", err)
		pkg.WriteMessage(w, "failed to create comment", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterComments.Inc()
	pkg.WriteMessage(w, "comment created", http.StatusOK)
}

func (handler *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	var req deleteCommentRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !claimAllowed(w, r, req.UserID) {
		return
	}

	if err := handler.service.DeleteComment(r.Context(), req.CommentID, req.UserID); err != nil {
		if errors.Is(err, ErrForbidden) {
			handler.metricsManager.CounterForbidden.WithLabelValues(string(ResourceComment)).Inc()
			pkg.WriteMessage(w, "you are not allowed to delete this comment", http.StatusForbidden)
			return
		}
		log.Errorf("delete comment %d: %s", req.CommentID, err)
		pkg.WriteMessage(w, "failed to delete comment", http.StatusInternalServerError)
		return
	}

	pkg.WriteMessage(w, "comment deleted", http.StatusOK)
}

func (handler *Handler) handleGetComment(w http.ResponseWriter, r *http.Request) {
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

	comment, err := handler.service.Comment(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			pkg.WriteMessage(w, "comment not found", http.StatusNotFound)
			return
		}
		log.Errorf("get comment %d: %s", id, err)
		pkg.WriteMessage(w, "failed to get comment", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, comment)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debugf("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		pkg.WriteMessage(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func claimAllowed(w http.ResponseWriter, r *http.Request, claimedUserID int64) bool {
	if auth.ClaimAllowed(r.Context(), claimedUserID) {
		return true
	}
	log.Warnf("%s %s: user id %d does not match the session user", r.Method, r.URL.Path, claimedUserID)
	pkg.WriteMessage(w, "user id does not match the session", http.StatusUnauthorized)
	return false
}

func logStoreError(op string, err error) {
	if pkg.IsForeignKeyViolationError(err) {
		log.Warnf("%s, referenced row missing: %s", op, err)
		return
	}
	log.Errorf("%s: %s", op, err)
}
