//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/englishlearning/internal/word"
)

func (s *IntegrationTestSuite) TestWordSearch_MockTranslation() {
	ctx := context.Background()

	status, respBytes := s.do(ctx, "GET", "/word/search?word=apple", "", nil)
	require.Equal(s.T(), http.StatusOK, status)

	var translation word.Translation
	s.decode(respBytes, &translation)
	assert.Equal(s.T(), word.Translation{
		Src:    "apple",
		Dst:    "[mock translation] apple",
		IsMock: true,
	}, translation)

	status, _ = s.do(ctx, "GET", "/word/search?word=", "", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestNotebook() {
	ctx := context.Background()
	user := s.newLoggedInUser(ctx)

	add := func(w string) int {
		status, _ := s.do(ctx, "POST", "/word/notebook", user.Token, map[string]any{
			"userId":      user.ID,
			"word":        w,
			"translation": "t-" + w,
		})
		return status
	}

	for _, w := range []string{"apple", "banana", "cherry"} {
		require.Equal(s.T(), http.StatusOK, add(w))
	}
	assert.Equal(s.T(), http.StatusConflict, add("apple"))

	notebookPath := fmt.Sprintf("/word/notebook?userId=%d", user.ID)
	status, respBytes := s.do(ctx, "GET", notebookPath, "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var entries []word.NotebookEntry
	s.decode(respBytes, &entries)
	require.Len(s.T(), entries, 3)
	assert.Equal(s.T(), "cherry", entries[0].Word)
	assert.Equal(s.T(), "t-cherry", entries[0].Translation)

	// three words are not enough for a quiz
	quizPath := fmt.Sprintf("/word/test-generate?source=notebook&userId=%d", user.ID)
	status, respBytes = s.do(ctx, "GET", quizPath, "", nil)
	require.Equal(s.T(), http.StatusBadRequest, status)
	assert.Equal(s.T(), "at least 4 words needed", s.message(respBytes))

	require.Equal(s.T(), http.StatusOK, add("date"))
	status, respBytes = s.do(ctx, "GET", quizPath, "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var quiz []word.QuizWord
	s.decode(respBytes, &quiz)
	require.Len(s.T(), quiz, 4)
	for _, q := range quiz {
		assert.Equal(s.T(), "t-"+q.Word, q.Meaning)
	}

	status, _ = s.do(ctx, "DELETE", "/word/notebook", user.Token, map[string]any{"id": entries[0].ID})
	require.Equal(s.T(), http.StatusOK, status)
	status, _ = s.do(ctx, "DELETE", "/word/notebook", user.Token, map[string]any{"id": entries[0].ID})
	assert.Equal(s.T(), http.StatusNotFound, status)

	status, respBytes = s.do(ctx, "GET", notebookPath, "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	s.decode(respBytes, &entries)
	assert.Len(s.T(), entries, 3)

	status, _ = s.do(ctx, "GET", "/word/notebook?userId=abc", "", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestLibraryAndQuiz() {
	ctx := context.Background()

	category := "I" + gofakeit.DigitN(8)
	wordList := strings.Join([]string{
		"zebra n. 斑马",
		"Apple n. 苹果",
		"",
		"mango n. 芒果",
		"kiwi n. 猕猴桃",
		"123 skipped",
		"banana n. 香蕉",
	}, "\n")

	result, err := word.Import(ctx, word.NewRepo(s.dbPool), strings.NewReader(wordList), category)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), word.ImportResult{Parsed: 5, Inserted: 5}, result)

	// re-import inserts nothing new
	result, err = word.Import(ctx, word.NewRepo(s.dbPool), strings.NewReader(wordList), category)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), result.Inserted)

	status, respBytes := s.do(ctx, "GET", "/word/library?category="+category, "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var library []word.LibraryWord
	s.decode(respBytes, &library)
	require.Len(s.T(), library, 5)
	var got []string
	for _, w := range library {
		got = append(got, w.Word)
	}
	assert.Equal(s.T(), []string{"Apple", "banana", "kiwi", "mango", "zebra"}, got)

	status, respBytes = s.do(ctx, "GET", "/word/test-generate?source="+category, "", nil)
	require.Equal(s.T(), http.StatusOK, status)
	var quiz []word.QuizWord
	s.decode(respBytes, &quiz)
	assert.Len(s.T(), quiz, 5)

	status, _ = s.do(ctx, "GET", "/word/test-generate?source=NOPE"+gofakeit.DigitN(6), "", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
}
