package formula

import (
	"context"
	"strings"

	"github.com/beakerlabs/reagent/internal/lexicon"
)

// Classifier decides whether a token is a candidate chemical formula.
// Exclusions match case-sensitively; everything else is heuristic. The
// decision is a pure function of the token and the fixed state, so repeated
// calls always agree.
type Classifier struct {
	exclude map[string]struct{}
	lex     lexicon.Lexicon
}

// NewClassifier builds a Classifier over the given lexicon and exclusion
// list. The exclusion slice is copied into a set.
func NewClassifier(lex lexicon.Lexicon, exclude []string) *Classifier {
	set := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		set[w] = struct{}{}
	}
	return &Classifier{exclude: set, lex: lex}
}

// IsCandidate reports whether token should be treated as a chemical formula
// eligible for synonym substitution. Checks short-circuit in order:
//
//  1. excluded tokens are never candidates;
//  2. a decimal digit anywhere is strong evidence of a formula (subscript
//     counts), so the token is accepted;
//  3. a token with at least one dictionary sense is ordinary text, rejected;
//  4. anything left is accepted.
func (c *Classifier) IsCandidate(ctx context.Context, token string) (bool, error) {
	if _, ok := c.exclude[token]; ok {
		return false, nil
	}
	if strings.ContainsAny(token, "0123456789") {
		return true, nil
	}
	senses, err := c.lex.Senses(ctx, token)
	if err != nil {
		return false, err
	}
	return senses == 0, nil
}

// Resolver combines the classifier with a synonym table: a token resolves to
// names only when both agree it is a formula the table knows.
type Resolver struct {
	cls   *Classifier
	table *Table
}

// NewResolver builds a Resolver from a classifier and a table.
func NewResolver(cls *Classifier, table *Table) *Resolver {
	return &Resolver{cls: cls, table: table}
}

// Resolve returns the ordered synonym names for token, or nil when the
// classifier rejects it or the table has no entry for it.
func (r *Resolver) Resolve(ctx context.Context, token string) ([]string, error) {
	ok, err := r.cls.IsCandidate(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return r.table.Synonyms(token), nil
}
