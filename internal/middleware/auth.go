package middleware

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/englishlearning/internal/auth"
	"github.com/2beens/englishlearning/internal/telemetry/tracing"
	"github.com/2beens/englishlearning/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionChecker interface {
	UserID(ctx context.Context, token string) (int64, error)
}

type AuthMiddlewareHandler struct {
	checker        sessionChecker
	requireSession bool
	// "METHOD path" of routes acting on behalf of a user
	protectedRoutes map[string]bool
}

func NewAuthMiddlewareHandler(checker sessionChecker, requireSession bool) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker:        checker,
		requireSession: requireSession,
		protectedRoutes: map[string]bool{
			// blog handler:
			"POST /api/blog/create":    true,
			"DELETE /api/blog/delete":  true,
			"POST /api/blog/comment":   true,
			"DELETE /api/blog/comment": true,

			// word notebook:
			"POST /api/word/notebook":   true,
			"DELETE /api/word/notebook": true,
		},
	}
}

func (h *AuthMiddlewareHandler) isProtected(r *http.Request) bool {
	return h.protectedRoutes[r.Method+" "+r.URL.Path]
}

// AuthCheck, when sessions are required, lets requests to protected routes through
// only with a valid X-Session-Token, and stores the session user in the request
// context so handlers can match it against the user id claimed in the body.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.requireSession || !h.isProtected(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			token := r.Header.Get(auth.SessionHeader)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteMessage(w, "login required", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.checker.UserID(ctx, token)
			if err != nil {
				if !errors.Is(err, auth.ErrSessionNotFound) {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				pkg.WriteMessage(w, "login required", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithSessionUser(r.Context(), userID)))
		})
	}
}
