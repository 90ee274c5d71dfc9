package expand

import (
	"context"
	"testing"

	"github.com/beakerlabs/reagent/internal/formula"
	"github.com/beakerlabs/reagent/internal/lexicon"
)

// testExpander wires a resolver over a static lexicon and the given table.
func testExpander(t *testing.T, entries map[string][]string) *Expander {
	t.Helper()
	lex := lexicon.NewStaticFromWords([]string{"dna", "test", "agent", "sample"})
	cls := formula.NewClassifier(lex, nil)
	return New(formula.NewResolver(cls, formula.NewTable(entries)), "")
}

func variantTexts(vs []Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Text
	}
	return out
}

func TestExpand_NoMatchReturnsOriginal(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"agbr": {"silver bromide"}})

	for _, collapse := range []bool{true, false} {
		got, err := e.Expand(context.Background(), "dna test sample", collapse)
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("collapse=%v: got %d variants, want 1", collapse, len(got))
		}
		if got[0].Text != "dna test sample" || got[0].Augmented {
			t.Errorf("collapse=%v: got %+v, want original untagged", collapse, got[0])
		}
	}
}

func TestExpand_AllMatchedTokensReplacedTogether(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{
		"agbr":   {"silver bromide"},
		"agonc":  {"silver cyanate"},
		"ag2cl2": {"silver(I) chloride"},
	})

	got, err := e.Expand(context.Background(), "agbr dna test agonc ag2cl2", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d variants, want 1: %v", len(got), variantTexts(got))
	}
	want := "silver bromide dna test silver cyanate silver(I) chloride"
	if got[0].Text != want {
		t.Errorf("Text = %q, want %q", got[0].Text, want)
	}
	if !got[0].Augmented {
		t.Error("Augmented = false, want true")
	}
}

func TestExpand_MultipleSynonyms(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"agbr": {"X", "Y"}})

	got, err := e.Expand(context.Background(), "agbr test", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	texts := variantTexts(got)
	if len(texts) != 2 || texts[0] != "X test" || texts[1] != "Y test" {
		t.Fatalf("variants = %v, want [X test, Y test]", texts)
	}
	for _, v := range got {
		if !v.Augmented {
			t.Errorf("variant %q untagged, want Augmented=true", v.Text)
		}
	}
}

func TestExpand_CollapseFalsePrependsOriginal(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"agbr": {"X", "Y"}})

	got, err := e.Expand(context.Background(), "agbr test", false)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d variants, want 3: %v", len(got), variantTexts(got))
	}
	if got[0].Text != "agbr test" || got[0].Augmented {
		t.Errorf("got[0] = %+v, want unmodified original untagged", got[0])
	}
	if got[1].Text != "X test" || got[2].Text != "Y test" {
		t.Errorf("augmented variants = %v, want [X test, Y test]", variantTexts(got[1:]))
	}
}

// Cardinality law: k matched tokens with n1..nk synonyms yield the product of
// the counts, plus the original when collapse=false.
func TestExpand_Cardinality(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{
		"agbr": {"A", "B"},
		"kcl":  {"C", "D", "E"},
	})

	got, err := e.Expand(context.Background(), "agbr with kcl", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("collapse=true: got %d variants, want 2*3=6: %v", len(got), variantTexts(got))
	}

	got, err = e.Expand(context.Background(), "agbr with kcl", false)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 7 {
		t.Errorf("collapse=false: got %d variants, want 6+1=7", len(got))
	}
}

// Whole-substring replacement also rewrites a token recurring inside a larger
// word. That over-replacement is kept, not corrected.
func TestExpand_SubstringOverReplacement(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"ag": {"silver"}})

	got, err := e.Expand(context.Background(), "ag in agglomerate", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := "silver in silverglomerate"
	if len(got) != 1 || got[0].Text != want {
		t.Errorf("variants = %v, want [%q]", variantTexts(got), want)
	}
}

func TestExpand_SeparatorIsNotAToken(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"agbr": {"silver bromide"}})

	got, err := e.Expand(context.Background(), "agbr [SEP] test", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// The separator splits tokens and stays in the output text untouched.
	want := "silver bromide [SEP] test"
	if len(got) != 1 || got[0].Text != want {
		t.Fatalf("variants = %v, want [%q]", variantTexts(got), want)
	}
}

func TestExpand_CustomSeparator(t *testing.T) {
	t.Parallel()
	lex := lexicon.NewStaticFromWords([]string{"test"})
	cls := formula.NewClassifier(lex, nil)
	table := formula.NewTable(map[string][]string{"agbr": {"silver bromide"}})
	e := New(formula.NewResolver(cls, table), "||")

	got, err := e.Expand(context.Background(), "agbr||test", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 || got[0].Text != "silver bromide||test" {
		t.Errorf("variants = %v, want [silver bromide||test]", variantTexts(got))
	}
}

func TestExpand_DuplicateTokenReplacedOnce(t *testing.T) {
	t.Parallel()
	e := testExpander(t, map[string][]string{"agbr": {"silver bromide"}})

	// The token appears twice; ReplaceAll rewrites both occurrences in a
	// single pass, so the variant count stays 1.
	got, err := e.Expand(context.Background(), "agbr and agbr", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := "silver bromide and silver bromide"
	if len(got) != 1 || got[0].Text != want {
		t.Errorf("variants = %v, want [%q]", variantTexts(got), want)
	}
}
