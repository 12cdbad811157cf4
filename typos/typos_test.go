package typos

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestVariants
// ---------------------------------------------------------------------------

func TestVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		maxEdits int
		contains []string
	}{
		{
			name:     "single letter confusion",
			word:     "cay",
			maxEdits: 1,
			contains: []string{"cay", "çay"},
		},
		{
			name:     "digraph consumed as one unit",
			word:     "chay",
			maxEdits: 1,
			contains: []string{"chay", "çay"},
		},
		{
			name:     "multiple edits",
			word:     "gozel",
			maxEdits: 2,
			contains: []string{"gozel", "gözel", "gozəl", "gözəl"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Words(tc.word, tc.maxEdits, DefaultMaxCandidates)
			set := make(map[string]struct{}, len(got))
			for _, w := range got {
				set[w] = struct{}{}
			}
			for _, want := range tc.contains {
				if _, ok := set[want]; !ok {
					t.Errorf("Words(%q) = %v, missing %q", tc.word, got, want)
				}
			}
		})
	}
}

func TestVariantsOrderAndIdentity(t *testing.T) {
	t.Parallel()

	got := Variants("cay", 1, 20)
	if len(got) == 0 || got[0].Word != "cay" || got[0].Edits != 0 {
		t.Fatalf("Variants(cay) = %v, want identity first with 0 edits", got)
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Edits < prev.Edits || (cur.Edits == prev.Edits && cur.Word < prev.Word) {
			t.Errorf("Variants out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestVariantsBeamCap(t *testing.T) {
	t.Parallel()

	// Every letter of this word is confusable, so an uncapped beam would
	// explode; the cap must hold at every step.
	got := Variants("sosis", 3, 5)
	if len(got) > 5 {
		t.Errorf("Variants returned %d candidates, cap is 5", len(got))
	}
}

func TestVariantsEmptyWord(t *testing.T) {
	t.Parallel()

	got := Variants("", 2, 10)
	want := []Variant{{Word: "", Edits: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants(\"\") = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestCorruptor
// ---------------------------------------------------------------------------

func TestCorruptorDeterminism(t *testing.T) {
	t.Parallel()

	words := []string{"çörək", "şəkər", "dağlar", "gözəl", "kitab"}

	a := NewCorruptor(CorruptOptions{Seed: 7}).Pairs(words, 3)
	b := NewCorruptor(CorruptOptions{Seed: 7}).Pairs(words, 3)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different pairs:\n%v\n%v", a, b)
	}
}

func TestCorruptorDegradesLetters(t *testing.T) {
	t.Parallel()

	c := NewCorruptor(CorruptOptions{Seed: 1, DegradeProb: 1, NoiseProb: -1})
	if got := c.Corrupt("əl"); got != "el" {
		t.Errorf("Corrupt(əl) = %q, want el", got)
	}
	// ç degrades to c or ch, never survives at probability one.
	for i := 0; i < 20; i++ {
		got := c.Corrupt("çay")
		if got != "cay" && got != "chay" {
			t.Errorf("Corrupt(çay) = %q, want cay or chay", got)
		}
	}
}

func TestCorruptorPairsDiffer(t *testing.T) {
	t.Parallel()

	c := NewCorruptor(CorruptOptions{Seed: 42})
	pairs := c.Pairs([]string{"çörək", "şəhər", "üzüm"}, 5)
	if len(pairs) == 0 {
		t.Fatal("Pairs produced no observations")
	}
	for _, p := range pairs {
		if p.Correct == p.Corrupted {
			t.Errorf("pair with no change: %+v", p)
		}
	}
}
