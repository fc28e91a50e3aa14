package users

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username taken")
	ErrWrongCredentials    = errors.New("wrong credentials")
	ErrEmptyUsernameOrPass = errors.New("username or password empty")
)

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
