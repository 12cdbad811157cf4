package confusion

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuild
// ---------------------------------------------------------------------------

func TestBuildLearnsObservedOperations(t *testing.T) {
	t.Parallel()

	pairs := []Pair{
		{Correct: "kitab", Corrupted: "kitap"},
		{Correct: "kitab", Corrupted: "kitap"},
		{Correct: "salam", Corrupted: "salm"},
		{Correct: "gəl", Corrupted: "gəll"},
	}
	m, err := Build(pairs, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, ok := m.Sub["b"]["p"]; !ok {
		t.Errorf("substitution b->p not learned: %v", m.Sub)
	}
	if _, ok := m.Del["a"]; !ok {
		t.Errorf("deletion of a not learned: %v", m.Del)
	}
	if _, ok := m.Ins["l"]; !ok {
		t.Errorf("insertion of l not learned: %v", m.Ins)
	}

	if got, def := m.SubCost('b', 'p'), m.SubCost('x', 'y'); got >= def {
		t.Errorf("learned SubCost(b,p) = %v, want below default %v", got, def)
	}
	if got := m.SubCost('a', 'a'); got != 0 {
		t.Errorf("SubCost(a,a) = %v, want 0", got)
	}
}

func TestBuildTiePrefersSubstitution(t *testing.T) {
	t.Parallel()

	// "ab" -> "ba" costs 2 either as two substitutions or as a
	// deletion/insertion pair; the backtrace must pick the substitutions.
	m, err := Build([]Pair{{Correct: "ab", Corrupted: "ba"}}, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Ins) != 0 || len(m.Del) != 0 {
		t.Errorf("tie resolved to ins/del: Ins=%v Del=%v", m.Ins, m.Del)
	}
	if _, ok := m.Sub["a"]["b"]; !ok {
		t.Errorf("substitution a->b not learned: %v", m.Sub)
	}
	if _, ok := m.Sub["b"]["a"]; !ok {
		t.Errorf("substitution b->a not learned: %v", m.Sub)
	}
}

func TestBuildCostScale(t *testing.T) {
	t.Parallel()

	pairs := []Pair{
		{Correct: "çörək", Corrupted: "corek"},
		{Correct: "şəkər", Corrupted: "seker"},
		{Correct: "dağ", Corrupted: "dag"},
		{Correct: "yol", Corrupted: "yoll"},
		{Correct: "ev", Corrupted: "e"},
	}
	m, err := Build(pairs, Options{Smoothing: 0.5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	checkCost := func(where string, c float64) {
		t.Helper()
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			t.Errorf("%s cost = %v, want finite and non-negative", where, c)
		}
	}
	for from, row := range m.Sub {
		for to, c := range row {
			checkCost("sub "+from+"->"+to, c)
			if c >= m.DefaultSub {
				t.Errorf("learned sub %s->%s cost %v not below default %v", from, to, c, m.DefaultSub)
			}
		}
	}
	for to, c := range m.Ins {
		checkCost("ins "+to, c)
	}
	for from, c := range m.Del {
		checkCost("del "+from, c)
	}
	checkCost("default sub", m.DefaultSub)
	checkCost("default ins", m.DefaultIns)
	checkCost("default del", m.DefaultDel)

	min := m.MinEditCost()
	if min <= 0 {
		t.Errorf("MinEditCost = %v, want > 0", min)
	}
}

func TestBuildSmoothingChangesSpread(t *testing.T) {
	t.Parallel()

	pairs := []Pair{
		{Correct: "kitab", Corrupted: "kitap"},
		{Correct: "kitab", Corrupted: "kitap"},
		{Correct: "kitab", Corrupted: "kitam"},
	}
	light, err := Build(pairs, Options{Smoothing: 0.1})
	if err != nil {
		t.Fatalf("Build light: %v", err)
	}
	heavy, err := Build(pairs, Options{Smoothing: 10})
	if err != nil {
		t.Fatalf("Build heavy: %v", err)
	}

	// Heavier smoothing pulls the frequent and the rare confusion together.
	lightGap := light.Sub["b"]["m"] - light.Sub["b"]["p"]
	heavyGap := heavy.Sub["b"]["m"] - heavy.Sub["b"]["p"]
	if heavyGap >= lightGap {
		t.Errorf("smoothing did not compress gap: light %v, heavy %v", lightGap, heavyGap)
	}
}

func TestBuildInvalidArgument(t *testing.T) {
	t.Parallel()

	if _, err := Build(nil, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Build(nil) error = %v, want ErrInvalidArgument", err)
	}
	pairs := []Pair{{Correct: "a", Corrupted: "b"}}
	if _, err := Build(pairs, Options{Smoothing: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Build negative smoothing error = %v, want ErrInvalidArgument", err)
	}
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func TestMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := Build([]Pair{
		{Correct: "kitab", Corrupted: "kitap"},
		{Correct: "salam", Corrupted: "salm"},
		{Correct: "gəl", Corrupted: "gəll"},
	}, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var sb strings.Builder
	if err := m.Write(&sb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

func TestReadCorrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "truncated JSON",
			input: `{"sub": {"a": {"b": 0.5`,
		},
		{
			name:  "negative cost",
			input: `{"sub": {"a": {"b": -0.5}}, "ins": {}, "del": {}, "default_sub": 1, "default_ins": 1, "default_del": 1}`,
		},
		{
			name:  "negative default",
			input: `{"sub": {}, "ins": {}, "del": {}, "default_sub": -1, "default_ins": 1, "default_del": 1}`,
		},
		{
			name:  "unknown field",
			input: `{"sub": {}, "ins": {}, "del": {}, "default_sub": 1, "default_ins": 1, "default_del": 1, "extra": true}`,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Read(strings.NewReader(tc.input)); !errors.Is(err, ErrCorruptMatrix) {
				t.Errorf("Read error = %v, want ErrCorruptMatrix", err)
			}
		})
	}
}
