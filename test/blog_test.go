//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/englishlearning/internal/blog"
)

func (s *IntegrationTestSuite) feed(ctx context.Context) []blog.FeedItem {
	status, respBytes := s.do(ctx, "GET", "/blog/list", "", nil)
	require.Equal(s.T(), http.StatusOK, status)

	var feed []blog.FeedItem
	s.decode(respBytes, &feed)
	return feed
}

func findPost(feed []blog.FeedItem, userID int64, content string) *blog.FeedItem {
	for i := range feed {
		if feed[i].UserID == userID && feed[i].Content == content {
			return &feed[i]
		}
	}
	return nil
}

func (s *IntegrationTestSuite) TestBlogScenario() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alice := s.newLoggedInUser(ctx)
	bob := s.newLoggedInUser(ctx)

	// no session token
	status, _ := s.do(ctx, "POST", "/blog/create", "", map[string]any{
		"userId":  alice.ID,
		"content": "hello",
	})
	require.Equal(s.T(), http.StatusUnauthorized, status)

	// bob's session claiming alice
	status, _ = s.do(ctx, "POST", "/blog/create", bob.Token, map[string]any{
		"userId":  alice.ID,
		"content": "hello",
	})
	require.Equal(s.T(), http.StatusUnauthorized, status)

	status, respBytes := s.do(ctx, "POST", "/blog/create", alice.Token, map[string]any{
		"userId":  alice.ID,
		"content": "hello",
	})
	require.Equal(s.T(), http.StatusOK, status)
	assert.Equal(s.T(), "post created", s.message(respBytes))

	post := findPost(s.feed(ctx), alice.ID, "hello")
	require.NotNil(s.T(), post)
	assert.Equal(s.T(), alice.Username, post.Username)
	assert.Empty(s.T(), post.Comments)

	status, _ = s.do(ctx, "POST", "/blog/comment", bob.Token, map[string]any{
		"blogId":  post.ID,
		"userId":  bob.ID,
		"content": "hi",
	})
	require.Equal(s.T(), http.StatusOK, status)
	status, _ = s.do(ctx, "POST", "/blog/comment", alice.Token, map[string]any{
		"blogId":  post.ID,
		"userId":  alice.ID,
		"content": "thanks",
	})
	require.Equal(s.T(), http.StatusOK, status)

	post = findPost(s.feed(ctx), alice.ID, "hello")
	require.NotNil(s.T(), post)
	require.Len(s.T(), post.Comments, 2)
	assert.Equal(s.T(), "hi", post.Comments[0].Content)
	assert.Equal(s.T(), bob.Username, post.Comments[0].Username)
	assert.Equal(s.T(), "thanks", post.Comments[1].Content)

	status, respBytes = s.do(ctx, "GET", idPath("/blog/comment", post.Comments[0].ID), "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var comment blog.Comment
	s.decode(respBytes, &comment)
	assert.Equal(s.T(), "hi", comment.Content)

	// bob can't delete alice's post
	status, respBytes = s.do(ctx, "DELETE", "/blog/delete", bob.Token, map[string]any{
		"blogId": post.ID,
		"userId": bob.ID,
	})
	require.Equal(s.T(), http.StatusForbidden, status)
	assert.Equal(s.T(), "you are not allowed to delete this post", s.message(respBytes))
	require.NotNil(s.T(), findPost(s.feed(ctx), alice.ID, "hello"))

	// alice can't delete bob's comment
	status, _ = s.do(ctx, "DELETE", "/blog/comment", alice.Token, map[string]any{
		"commentId": post.Comments[0].ID,
		"userId":    alice.ID,
	})
	require.Equal(s.T(), http.StatusForbidden, status)

	// bob deletes his own comment
	status, _ = s.do(ctx, "DELETE", "/blog/comment", bob.Token, map[string]any{
		"commentId": post.Comments[0].ID,
		"userId":    bob.ID,
	})
	require.Equal(s.T(), http.StatusOK, status)

	status, respBytes = s.do(ctx, "DELETE", "/blog/delete", alice.Token, map[string]any{
		"blogId": post.ID,
		"userId": alice.ID,
	})
	require.Equal(s.T(), http.StatusOK, status)
	assert.Equal(s.T(), "post deleted", s.message(respBytes))
	assert.Nil(s.T(), findPost(s.feed(ctx), alice.ID, "hello"))

	var remainingComments int
	require.NoError(s.T(), s.dbPool.QueryRow(
		ctx, `SELECT COUNT(*) FROM comments WHERE blog_id = $1`, post.ID,
	).Scan(&remainingComments))
	assert.Zero(s.T(), remainingComments)

	status, _ = s.do(ctx, "GET", idPath("/blog/comment", post.Comments[1].ID), "", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)

	// deleting again: missing post is treated as not owned
	status, _ = s.do(ctx, "DELETE", "/blog/delete", alice.Token, map[string]any{
		"blogId": post.ID,
		"userId": alice.ID,
	})
	assert.Equal(s.T(), http.StatusForbidden, status)

	// commenting on a deleted post fails
	status, _ = s.do(ctx, "POST", "/blog/comment", bob.Token, map[string]any{
		"blogId":  post.ID,
		"userId":  bob.ID,
		"content": "too late",
	})
	assert.Equal(s.T(), http.StatusInternalServerError, status)
}
