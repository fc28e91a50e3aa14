package auth

import "context"

type sessionUserKey struct{}

func ContextWithSessionUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, sessionUserKey{}, userID)
}

func SessionUser(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(sessionUserKey{}).(int64)
	return userID, ok
}

// ClaimAllowed reports whether a user id claimed in a request body may be
// acted upon. Without a session user in the context (sessions not enforced)
// every claim is accepted.
func ClaimAllowed(ctx context.Context, claimedUserID int64) bool {
	sessionUserID, ok := SessionUser(ctx)
	if !ok {
		return true
	}
	return sessionUserID == claimedUserID
}
