// Package spell ranks spelling corrections with a weighted edit distance.
//
// The engine aligns a typed word against every vocabulary entry using
// per-operation costs learned by the confusion package: substituting b for p
// is cheap if that confusion is frequent in training data, while operations
// never observed fall back to the matrix defaults. Candidates are ranked by
// total alignment cost ascending, ties broken lexicographically, and an
// exact vocabulary hit always wins with cost zero.
//
// Correction across a large vocabulary is embarrassingly parallel, so the
// engine shards candidates across workers and merges per-shard top-k lists.
// Two prunings bound the work without ever changing the ranking: candidates
// whose length difference alone already costs more than the current k-th
// best are skipped, and the row minimum of the running alignment table
// abandons a candidate as soon as no completion can beat that bound.
package spell

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
)

// ErrInvalidArgument reports unusable engine input (non-positive k, nil
// confusion matrix).
var ErrInvalidArgument = errors.New("spell: invalid argument")

// Candidate is one ranked correction.
type Candidate struct {
	Word string  `json:"word"`
	Cost float64 `json:"cost"`
}

// Options tunes the engine. The zero value is ready to use.
type Options struct {
	// MaxLenDiff drops candidates whose rune length differs from the query
	// by more than this many runes before any alignment work. Zero disables
	// the hard filter; the cost-based length bound below still applies and,
	// unlike this filter, can never change the ranking.
	MaxLenDiff int

	// Workers caps correction parallelism. Zero means GOMAXPROCS.
	Workers int
}

// Correct returns the k cheapest corrections for word drawn from vocab,
// sorted by cost ascending then candidate ascending. An empty vocabulary
// yields an empty result; k <= 0 is rejected.
func Correct(word string, vocab []string, m *confusion.Matrix, k int) ([]Candidate, error) {
	return CorrectWith(word, vocab, m, k, Options{})
}

// CorrectWith is Correct with explicit engine options.
func CorrectWith(word string, vocab []string, m *confusion.Matrix, k int, opts Options) ([]Candidate, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k = %d", ErrInvalidArgument, k)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil confusion matrix", ErrInvalidArgument)
	}
	if len(vocab) == 0 {
		return []Candidate{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(vocab) {
		workers = len(vocab)
	}

	typed := []rune(word)
	minEdit := m.MinEditCost()

	shards := make([][]Candidate, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			best := newTopK(k, word)
			for i := w; i < len(vocab); i += workers {
				cand := vocab[i]
				intended := []rune(cand)

				diff := len(intended) - len(typed)
				if diff < 0 {
					diff = -diff
				}
				if opts.MaxLenDiff > 0 && diff > opts.MaxLenDiff {
					continue
				}
				// At least diff edits are unavoidable, each costing
				// minEdit or more.
				bound := best.bound()
				if float64(diff)*minEdit > bound {
					continue
				}
				cost := alignCost(intended, typed, m, bound)
				if math.IsInf(cost, 1) {
					continue
				}
				best.add(Candidate{Word: cand, Cost: cost})
			}
			shards[w] = best.items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []Candidate
	for _, s := range shards {
		merged = append(merged, s...)
	}
	sort.Slice(merged, func(i, j int) bool { return less(word, merged[i], merged[j]) })
	if len(merged) > k {
		merged = merged[:k]
	}
	if merged == nil {
		merged = []Candidate{}
	}
	return merged, nil
}

// less orders candidates by cost ascending, then lexicographically, except
// that an exact hit on the query outranks any cost tie. Costs are only
// guaranteed non-negative, so a zero-cost operation can put a neighbor level
// with the query itself; the ranking must not depend on that never happening.
func less(query string, a, b Candidate) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if (a.Word == query) != (b.Word == query) {
		return a.Word == query
	}
	return a.Word < b.Word
}

// alignCost runs the weighted edit-distance DP between the intended
// candidate and the typed word. Rows iterate over the intended runes; once a
// whole row exceeds bound no completion can come back under it, because
// every remaining operation is non-negative, so the candidate is abandoned
// with +Inf.
func alignCost(intended, typed []rune, m *confusion.Matrix, bound float64) float64 {
	prev := make([]float64, len(typed)+1)
	cur := make([]float64, len(typed)+1)

	for j := 1; j <= len(typed); j++ {
		prev[j] = prev[j-1] + m.InsCost(typed[j-1])
	}

	for i := 1; i <= len(intended); i++ {
		del := m.DelCost(intended[i-1])
		cur[0] = prev[0] + del
		rowMin := cur[0]
		for j := 1; j <= len(typed); j++ {
			c := prev[j-1] + m.SubCost(intended[i-1], typed[j-1])
			if d := prev[j] + del; d < c {
				c = d
			}
			if ins := cur[j-1] + m.InsCost(typed[j-1]); ins < c {
				c = ins
			}
			cur[j] = c
			if c < rowMin {
				rowMin = c
			}
		}
		if rowMin > bound {
			return math.Inf(1)
		}
		prev, cur = cur, prev
	}
	return prev[len(typed)]
}

// topK keeps the k best candidates seen so far in less order for query.
type topK struct {
	k     int
	query string
	items []Candidate
}

func newTopK(k int, query string) *topK {
	return &topK{k: k, query: query, items: make([]Candidate, 0, k)}
}

// bound is the cost a new candidate must not exceed to be worth computing.
// While the list is short everything qualifies.
func (t *topK) bound() float64 {
	if len(t.items) < t.k {
		return math.Inf(1)
	}
	return t.items[len(t.items)-1].Cost
}

func (t *topK) add(c Candidate) {
	pos := sort.Search(len(t.items), func(i int) bool { return less(t.query, c, t.items[i]) })
	if pos == t.k {
		return
	}
	t.items = append(t.items, Candidate{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = c
	if len(t.items) > t.k {
		t.items = t.items[:t.k]
	}
}
