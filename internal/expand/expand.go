// Package expand rewrites phrases by substituting chemical-formula tokens
// with their compound names. One phrase expands into the cross-product of
// every matched token's synonyms, so a phrase with two matched tokens of two
// names each yields four variants.
package expand

import (
	"context"
	"strings"

	"github.com/beakerlabs/reagent/internal/formula"
)

// DefaultSeparator is the bracketed marker used to join logical segments in
// pre-formatted text fields. It delimits tokens but is never a token itself.
const DefaultSeparator = "[SEP]"

// Variant is one possible rewritten form of a phrase. Augmented is false only
// for the unmodified original.
type Variant struct {
	Text      string
	Augmented bool
}

// Expander turns phrases into substitution variants using a resolver for
// per-token synonym lookup. Read-only after construction.
type Expander struct {
	res *formula.Resolver
	sep string
}

// New builds an Expander. An empty separator falls back to DefaultSeparator.
func New(res *formula.Resolver, separator string) *Expander {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Expander{res: res, sep: separator}
}

// Expand produces every substitution variant of phrase. If no token resolves
// to a synonym the result is exactly the original phrase, unaugmented. When
// matches exist, every variant carries Augmented=true; with collapse=false
// the unmodified original is prepended as well.
//
// Substitution replaces every textual occurrence of the matched token within
// a variant, not just the token position it was found at. A token recurring
// as a substring of a larger word is therefore also replaced; that is the
// documented behavior of the heuristic, kept as-is.
func (e *Expander) Expand(ctx context.Context, phrase string, collapse bool) ([]Variant, error) {
	variants := []string{phrase}
	found := false

	for _, token := range e.tokenize(phrase) {
		syns, err := e.res.Resolve(ctx, token)
		if err != nil {
			return nil, err
		}
		if len(syns) == 0 {
			continue
		}
		found = true

		// Each matched token multiplies the variant set by its synonym list.
		// Pre-substitution variants are discarded for that token.
		next := make([]string, 0, len(variants)*len(syns))
		for _, v := range variants {
			for _, syn := range syns {
				next = append(next, strings.ReplaceAll(v, token, syn))
			}
		}
		variants = next
	}

	if !found {
		return []Variant{{Text: phrase, Augmented: false}}, nil
	}

	out := make([]Variant, 0, len(variants)+1)
	if !collapse {
		out = append(out, Variant{Text: phrase, Augmented: false})
	}
	for _, v := range variants {
		out = append(out, Variant{Text: v, Augmented: true})
	}
	return out, nil
}

// tokenize splits phrase into word tokens on whitespace and the configured
// separator, discarding the separator and collapsing duplicates while keeping
// discovery order.
func (e *Expander) tokenize(phrase string) []string {
	cleaned := strings.ReplaceAll(phrase, e.sep, " ")

	seen := make(map[string]struct{})
	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}
