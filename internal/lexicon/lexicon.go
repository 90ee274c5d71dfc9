// Package lexicon provides dictionary-sense lookups used to decide whether a
// token is ordinary English text. Only the sense count matters to callers: a
// word with at least one known sense is treated as plain language rather than
// chemical notation.
package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Lexicon answers how many dictionary senses a word has. Implementations are
// read-only after construction and safe for repeated queries.
type Lexicon interface {
	Senses(ctx context.Context, word string) (int, error)
}

// Static is an in-memory Lexicon backed by a fixed word set. Words absent
// from the set have zero senses.
type Static struct {
	senses map[string]int
}

// NewStatic builds a Static lexicon from a word → sense-count map. The map is
// copied so later mutation by the caller cannot leak into the lexicon.
func NewStatic(senses map[string]int) *Static {
	copied := make(map[string]int, len(senses))
	for w, n := range senses {
		copied[w] = n
	}
	return &Static{senses: copied}
}

// NewStaticFromWords builds a Static lexicon where every listed word has
// exactly one sense. Convenient for word-list files and tests.
func NewStaticFromWords(words []string) *Static {
	senses := make(map[string]int, len(words))
	for _, w := range words {
		senses[w] = 1
	}
	return &Static{senses: senses}
}

// LoadWordList builds a Static lexicon from a newline-delimited word file,
// one sense per word. Blank lines and #-comments are skipped, matching the
// format ImportWordList accepts.
func LoadWordList(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read word list: %w", err)
	}
	return NewStaticFromWords(words), nil
}

// Senses returns the stored sense count for word, or zero if unknown.
func (s *Static) Senses(_ context.Context, word string) (int, error) {
	return s.senses[word], nil
}
