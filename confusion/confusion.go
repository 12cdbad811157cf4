// Package confusion learns character-level edit costs from observed
// (correct, corrupted) word pairs.
//
// Each pair is aligned with an unweighted Levenshtein backtrace; the
// elementary operations along the recovered path are counted, smoothed, and
// turned into costs on a shared negative-log-probability scale. The result
// is a Matrix consumed by the weighted edit-distance engine: frequent typing
// confusions (say b typed for p on Azerbaijani keyboards) become cheap,
// never-observed operations fall back to an explicit default cost.
package confusion

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSmoothing is the count added to every operation before
// normalization so unseen operations keep a finite cost.
const DefaultSmoothing = 0.5

// fallbackCost is used for a kind with no observations at all, matching the
// behavior of an unweighted distance where every edit costs one.
const fallbackCost = 1.0

// ErrInvalidArgument reports unusable builder input.
var ErrInvalidArgument = errors.New("confusion: invalid argument")

// Pair is one training observation: the intended word and what was typed.
type Pair struct {
	Correct   string
	Corrupted string
}

// Options tunes the builder. The zero value selects DefaultSmoothing.
type Options struct {
	// Smoothing is added to every operation count. Zero means
	// DefaultSmoothing; negative values are rejected.
	Smoothing float64
}

// Matrix holds learned per-operation costs plus the default costs applied to
// operations never observed during training. All costs are finite and
// non-negative; identity substitutions always cost zero. A Matrix is
// immutable once built and safe for concurrent readers.
type Matrix struct {
	Sub map[string]map[string]float64 `json:"sub"` // intended rune -> typed rune -> cost
	Ins map[string]float64            `json:"ins"` // spuriously typed rune -> cost
	Del map[string]float64            `json:"del"` // dropped rune -> cost

	DefaultSub float64 `json:"default_sub"`
	DefaultIns float64 `json:"default_ins"`
	DefaultDel float64 `json:"default_del"`
}

// SubCost returns the cost of the intended rune a being typed as b.
// Matches are free regardless of any learned entry.
func (m *Matrix) SubCost(a, b rune) float64 {
	if a == b {
		return 0
	}
	if row, ok := m.Sub[string(a)]; ok {
		if c, ok := row[string(b)]; ok {
			return c
		}
	}
	return m.DefaultSub
}

// InsCost returns the cost of the spurious rune c appearing in the typed word.
func (m *Matrix) InsCost(c rune) float64 {
	if cost, ok := m.Ins[string(c)]; ok {
		return cost
	}
	return m.DefaultIns
}

// DelCost returns the cost of the intended rune c being dropped.
func (m *Matrix) DelCost(c rune) float64 {
	if cost, ok := m.Del[string(c)]; ok {
		return cost
	}
	return m.DefaultDel
}

// MinEditCost is the cheapest possible non-match operation, used by the
// engine to bound how much any remaining alignment must cost.
func (m *Matrix) MinEditCost() float64 {
	min := math.Min(m.DefaultSub, math.Min(m.DefaultIns, m.DefaultDel))
	for _, row := range m.Sub {
		for _, c := range row {
			min = math.Min(min, c)
		}
	}
	for _, c := range m.Ins {
		min = math.Min(min, c)
	}
	for _, c := range m.Del {
		min = math.Min(min, c)
	}
	return min
}

// Build aligns every pair, counts the edit operations along each alignment
// path, and converts smoothed counts into costs. The default cost of a kind
// is the cost of a zero-count operation under the same normalization, so it
// is never cheaper than any learned cost of that kind.
func Build(pairs []Pair, opts Options) (*Matrix, error) {
	s := opts.Smoothing
	switch {
	case s < 0:
		return nil, fmt.Errorf("%w: negative smoothing %v", ErrInvalidArgument, s)
	case s == 0:
		s = DefaultSmoothing
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no training pairs", ErrInvalidArgument)
	}

	subCounts := make(map[string]map[string]float64)
	insCounts := make(map[string]float64)
	delCounts := make(map[string]float64)

	for _, p := range pairs {
		for _, op := range align([]rune(p.Correct), []rune(p.Corrupted)) {
			switch op.kind {
			case opSub:
				row := subCounts[op.from]
				if row == nil {
					row = make(map[string]float64)
					subCounts[op.from] = row
				}
				row[op.to]++
			case opIns:
				insCounts[op.to]++
			case opDel:
				delCounts[op.from]++
			}
		}
	}

	m := &Matrix{
		Sub: make(map[string]map[string]float64, len(subCounts)),
		Ins: make(map[string]float64, len(insCounts)),
		Del: make(map[string]float64, len(delCounts)),
	}

	var subTotal float64
	var subKinds int
	for _, row := range subCounts {
		for _, c := range row {
			subTotal += c
			subKinds++
		}
	}
	for from, row := range subCounts {
		out := make(map[string]float64, len(row))
		for to, c := range row {
			out[to] = opCost(c, subTotal, subKinds, s)
		}
		m.Sub[from] = out
	}
	m.DefaultSub = opCost(0, subTotal, subKinds, s)

	var insTotal float64
	for _, c := range insCounts {
		insTotal += c
	}
	for to, c := range insCounts {
		m.Ins[to] = opCost(c, insTotal, len(insCounts), s)
	}
	m.DefaultIns = opCost(0, insTotal, len(insCounts), s)

	var delTotal float64
	for _, c := range delCounts {
		delTotal += c
	}
	for from, c := range delCounts {
		m.Del[from] = opCost(c, delTotal, len(delCounts), s)
	}
	m.DefaultDel = opCost(0, delTotal, len(delCounts), s)

	return m, nil
}

// opCost maps a smoothed count to a negative-log-probability cost. The
// unseen class counts as one extra kind so the zero-count cost stays finite
// and strictly above every learned cost.
func opCost(count, total float64, kinds int, s float64) float64 {
	if total == 0 {
		return fallbackCost
	}
	return -math.Log((count + s) / (total + float64(kinds+1)*s))
}

type opKind int

const (
	opMatch opKind = iota
	opSub
	opIns
	opDel
)

type editOp struct {
	kind opKind
	from string // intended rune, empty for insertions
	to   string // typed rune, empty for deletions
}

// align recovers one minimum-edit path between the intended and typed words
// under unit costs. When alternatives tie, the backtrace prefers
// substitution over deletion over insertion, which keeps the learned counts
// reproducible across runs.
func align(correct, corrupted []rune) []editOp {
	n, m := len(correct), len(corrupted)

	dist := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int, m+1)
		dist[i][0] = i
	}
	for j := 1; j <= m; j++ {
		dist[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := dist[i-1][j-1]
			if correct[i-1] != corrupted[j-1] {
				sub++
			}
			del := dist[i-1][j] + 1
			ins := dist[i][j-1] + 1
			dist[i][j] = minInt(sub, minInt(del, ins))
		}
	}

	var ops []editOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dist[i][j] == dist[i-1][j-1]+subStep(correct[i-1], corrupted[j-1]):
			kind := opSub
			if correct[i-1] == corrupted[j-1] {
				kind = opMatch
			}
			ops = append(ops, editOp{kind: kind, from: string(correct[i-1]), to: string(corrupted[j-1])})
			i, j = i-1, j-1
		case i > 0 && dist[i][j] == dist[i-1][j]+1:
			ops = append(ops, editOp{kind: opDel, from: string(correct[i-1])})
			i--
		default:
			ops = append(ops, editOp{kind: opIns, to: string(corrupted[j-1])})
			j--
		}
	}
	return ops
}

func subStep(a, b rune) int {
	if a == b {
		return 0
	}
	return 1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
