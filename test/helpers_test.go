//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/englishlearning/internal/auth"
	"github.com/2beens/englishlearning/internal/users"
	"github.com/2beens/englishlearning/pkg"
)

type testUser struct {
	ID       int64
	Username string
	Password string
	Token    string
}

// do sends a request to the api, body is marshalled to json when not nil.
func (s *IntegrationTestSuite) do(
	ctx context.Context,
	method, path, token string,
	body any,
) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.SessionHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) message(respBytes []byte) string {
	var msg pkg.MessageResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &msg), string(respBytes))
	return msg.Message
}

func (s *IntegrationTestSuite) decode(respBytes []byte, v any) {
	require.NoError(s.T(), json.Unmarshal(respBytes, v), string(respBytes))
}

// newLoggedInUser registers a fresh user and logs it in.
func (s *IntegrationTestSuite) newLoggedInUser(ctx context.Context) testUser {
	u := testUser{
		Username: gofakeit.Username() + gofakeit.DigitN(6),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	credentials := map[string]string{
		"username": u.Username,
		"password": u.Password,
	}

	status, respBytes := s.do(ctx, "POST", "/auth/register", "", credentials)
	require.Equal(s.T(), http.StatusCreated, status, string(respBytes))

	status, respBytes = s.do(ctx, "POST", "/auth/login", "", credentials)
	require.Equal(s.T(), http.StatusOK, status, string(respBytes))

	var loginResp users.LoginResponse
	s.decode(respBytes, &loginResp)
	require.NotNil(s.T(), loginResp.User)
	require.NotEmpty(s.T(), loginResp.Token)

	u.ID = loginResp.User.ID
	u.Token = loginResp.Token
	return u
}

func idPath(path string, id int64) string {
	return fmt.Sprintf("%s?id=%d", path, id)
}
