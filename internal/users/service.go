package users

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/internal/telemetry/tracing"
	"github.com/2beens/englishlearning/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users

type repo interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
	ByUsername(ctx context.Context, username string) (*User, error)
}

type sessions interface {
	Login(ctx context.Context, userID int64) (string, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	repo     repo
	sessions sessions
}

func NewService(repo repo, sessions sessions) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() { tracing.EndSpan(span, err) }()

	if username == "" || password == "" {
		return nil, ErrEmptyUsernameOrPass
	}

	// the unique constraint still guards against a concurrent registration
	if _, err := s.repo.ByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	log.Debugf("new user registered: %d [%s]", user.ID, user.Username)
	return user, nil
}

// Login checks the credentials and opens a new session for the user.
// Unknown username and wrong password both give ErrWrongCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (_ *User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() { tracing.EndSpan(span, err) }()

	if username == "" || password == "" {
		return nil, "", ErrEmptyUsernameOrPass
	}

	user, err := s.repo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", username)
			return nil, "", ErrWrongCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", username)
		return nil, "", ErrWrongCredentials
	}

	token, err := s.sessions.Login(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Logout(ctx, token)
}
