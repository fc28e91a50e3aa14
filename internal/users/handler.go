package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/internal/auth"
	"github.com/2beens/englishlearning/internal/middleware"
	"github.com/2beens/englishlearning/internal/telemetry/metrics"
	"github.com/2beens/englishlearning/pkg"
)

type userService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, string, error)
	Logout(ctx context.Context, token string) error
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

type Handler struct {
	service userService
}

func NewHandler(service userService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", handler.handleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.handleLogout).Methods("POST", "OPTIONS").Name("logout")

	// rate limit per client ip, to slow down password guessing
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", allowedPerMin, metricsManager))
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		pkg.WriteMessage(w, "invalid request", http.StatusBadRequest)
		return
	}

	_, err := handler.service.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		pkg.WriteMessage(w, "registered", http.StatusCreated)
	case errors.Is(err, ErrEmptyUsernameOrPass):
		pkg.WriteMessage(w, "username and password are required", http.StatusBadRequest)
	case errors.Is(err, ErrUsernameTaken):
		pkg.WriteMessage(w, "username already taken", http.StatusBadRequest)
	default:
		log.Errorf("register user [%s]: %s", req.Username, err)
		pkg.WriteMessage(w, "registration failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		pkg.WriteMessage(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, token, err := handler.service.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		pkg.WriteJSONResponseOK(w, LoginResponse{
			Message: "logged in",
			User:    user,
			Token:   token,
		})
	case errors.Is(err, ErrEmptyUsernameOrPass):
		pkg.WriteMessage(w, "username and password are required", http.StatusBadRequest)
	case errors.Is(err, ErrWrongCredentials):
		pkg.WriteMessage(w, "wrong username or password", http.StatusUnauthorized)
	default:
		log.Errorf("login user [%s]: %s", req.Username, err)
		pkg.WriteMessage(w, "login failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(auth.SessionHeader)
	if token == "" {
		pkg.WriteMessage(w, "not logged in", http.StatusUnauthorized)
		return
	}

	if err := handler.service.Logout(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			pkg.WriteMessage(w, "not logged in", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		pkg.WriteMessage(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteMessage(w, "logged out", http.StatusOK)
}
