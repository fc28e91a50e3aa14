//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/englishlearning/internal/article"
)

func (s *IntegrationTestSuite) TestArticles() {
	ctx := context.Background()
	repo := article.NewRepo(s.dbPool)

	olderID, err := repo.Add(ctx, article.Article{
		Title:   "older " + gofakeit.Word(),
		Summary: gofakeit.Sentence(6),
		Content: gofakeit.Paragraph(1, 3, 8, " "),
	})
	require.NoError(s.T(), err)
	newerID, err := repo.Add(ctx, article.Article{
		Title:   "newer " + gofakeit.Word(),
		Summary: gofakeit.Sentence(6),
		Content: gofakeit.Paragraph(1, 3, 8, " "),
		Cover:   "/covers/newer.png",
	})
	require.NoError(s.T(), err)

	status, respBytes := s.do(ctx, "GET", "/article/list", "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var summaries []article.Summary
	s.decode(respBytes, &summaries)
	require.GreaterOrEqual(s.T(), len(summaries), 2)
	assert.Equal(s.T(), newerID, summaries[0].ID)
	assert.Equal(s.T(), olderID, summaries[1].ID)
	assert.NotContains(s.T(), string(respBytes), `"content"`)

	status, respBytes = s.do(ctx, "GET", idPath("/article/detail", newerID), "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var a article.Article
	s.decode(respBytes, &a)
	assert.Equal(s.T(), "/covers/newer.png", a.Cover)
	assert.NotEmpty(s.T(), a.Content)

	status, respBytes = s.do(ctx, "GET", idPath("/article/detail", newerID+1000), "", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	assert.Equal(s.T(), "article not found", s.message(respBytes))

	status, _ = s.do(ctx, "GET", "/article/detail?id=abc", "", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
}
