package formula

import (
	"context"
	"testing"

	"github.com/beakerlabs/reagent/internal/lexicon"
)

func testClassifier(exclude []string) *Classifier {
	lex := lexicon.NewStaticFromWords([]string{"dna", "test", "silver", "water"})
	return NewClassifier(lex, exclude)
}

func TestIsCandidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cls := testClassifier([]string{"nacl", "III"})

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"excluded token rejected", "nacl", false},
		{"excluded token with upper case", "III", false},
		{"digit forces candidate", "ag2cl2", true},
		{"digit wins over dictionary word shape", "h2o", true},
		{"dictionary word rejected", "dna", false},
		{"dictionary word rejected again", "test", false},
		{"unknown alphabetic token accepted", "agbr", true},
		{"unknown alphabetic token accepted again", "agonc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cls.IsCandidate(ctx, tt.token)
			if err != nil {
				t.Fatalf("IsCandidate(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("IsCandidate(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsCandidate_ExclusionIsCaseSensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cls := testClassifier([]string{"NaCl"})

	// The literal "NaCl" is excluded; the lower-case spelling is not, and with
	// no dictionary sense it stays a candidate.
	if got, _ := cls.IsCandidate(ctx, "NaCl"); got {
		t.Error("IsCandidate(NaCl) = true, want false (excluded)")
	}
	if got, _ := cls.IsCandidate(ctx, "nacl"); !got {
		t.Error("IsCandidate(nacl) = false, want true (not excluded, no senses)")
	}
}

func TestIsCandidate_ExclusionBeatsDigits(t *testing.T) {
	t.Parallel()
	cls := testClassifier([]string{"b12"})

	if got, _ := cls.IsCandidate(context.Background(), "b12"); got {
		t.Error("IsCandidate(b12) = true, want false (exclusion beats digit heuristic)")
	}
}

func TestIsCandidate_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cls := testClassifier(nil)

	for _, token := range []string{"agbr", "dna", "ag2cl2"} {
		first, err := cls.IsCandidate(ctx, token)
		if err != nil {
			t.Fatalf("IsCandidate(%q): %v", token, err)
		}
		for i := 0; i < 3; i++ {
			got, err := cls.IsCandidate(ctx, token)
			if err != nil {
				t.Fatalf("IsCandidate(%q): %v", token, err)
			}
			if got != first {
				t.Errorf("IsCandidate(%q) changed between calls: %v then %v", token, first, got)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	table := NewTable(map[string][]string{
		"agbr": {"silver bromide"},
		"h2o":  {"water", "dihydrogen monoxide"},
	})
	res := NewResolver(testClassifier([]string{"b12"}), table)

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"known formula", "agbr", []string{"silver bromide"}},
		{"case-folded lookup", "AgBr", []string{"silver bromide"}},
		{"multiple synonyms in order", "h2o", []string{"water", "dihydrogen monoxide"}},
		{"rejected dictionary word", "dna", nil},
		{"excluded token", "b12", nil},
		{"candidate with no table entry", "agonc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := res.Resolve(ctx, tt.token)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.token, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.token, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Resolve(%q)[%d] = %q, want %q", tt.token, i, got[i], tt.want[i])
				}
			}
		})
	}
}
