package word

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var wordLineRegex = regexp.MustCompile(`^([a-zA-Z-]+)\s+(.*)`)

type wordImporter interface {
	ImportWords(ctx context.Context, words []LibraryWord, batchSize int) (int64, error)
}

type ImportResult struct {
	Parsed   int
	Inserted int64
}

// ParseWordList reads "<word> <definition>" lines. Blank and non-matching lines are skipped.
func ParseWordList(r io.Reader, category string) ([]LibraryWord, error) {
	if category == "" {
		category = DefaultCategory
	}

	words := make([]LibraryWord, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		match := wordLineRegex.FindStringSubmatch(line)
		if match == nil {
			log.Debugf("word list line %d skipped: %q", lineNo, line)
			continue
		}

		words = append(words, LibraryWord{
			Word:       match[1],
			Definition: strings.TrimSpace(match[2]),
			Category:   category,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}

func Import(ctx context.Context, importer wordImporter, r io.Reader, category string) (ImportResult, error) {
	words, err := ParseWordList(r, category)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Parsed: len(words)}
	if len(words) == 0 {
		return result, nil
	}

	inserted, err := importer.ImportWords(ctx, words, ImportBatchSize)
	result.Inserted = inserted
	if err != nil {
		return result, fmt.Errorf("import words: %w", err)
	}

	return result, nil
}
