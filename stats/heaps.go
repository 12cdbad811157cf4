package stats

import (
	"errors"
	"math"
)

// HeapsPoint is one observation of vocabulary growth: after Tokens running
// tokens the corpus contained Types distinct tokens.
type HeapsPoint struct {
	Tokens int `json:"tokens"`
	Types  int `json:"types"`
}

// HeapsFit is a fitted Heaps'-law curve V(N) = K * N^Beta.
type HeapsFit struct {
	K    float64 `json:"k"`
	Beta float64 `json:"beta"`
	R2   float64 `json:"r2"` // coefficient of determination in log-log space
}

// ErrTooFewPoints is returned when fewer than two usable growth points are
// supplied; a power law cannot be fitted through a single point.
var ErrTooFewPoints = errors.New("stats: need at least two growth points")

// GrowthCurve walks the token stream once and records a growth point every
// stride tokens (and one final point). stride values below 1 are treated
// as 1.
func GrowthCurve(tokens []string, stride int) []HeapsPoint {
	if len(tokens) == 0 {
		return nil
	}
	if stride < 1 {
		stride = 1
	}
	seen := make(map[string]struct{}, len(tokens)/2)
	points := make([]HeapsPoint, 0, len(tokens)/stride+1)
	for i, tok := range tokens {
		seen[tok] = struct{}{}
		n := i + 1
		if n%stride == 0 || n == len(tokens) {
			points = append(points, HeapsPoint{Tokens: n, Types: len(seen)})
		}
	}
	return points
}

// FitHeaps fits V(N) = K * N^Beta to the growth points by ordinary least
// squares over (log N, log V). Points with zero tokens or types are skipped
// since their logarithm is undefined.
func FitHeaps(points []HeapsPoint) (HeapsFit, error) {
	var xs, ys []float64
	for _, p := range points {
		if p.Tokens <= 0 || p.Types <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(p.Tokens)))
		ys = append(ys, math.Log(float64(p.Types)))
	}
	if len(xs) < 2 {
		return HeapsFit{}, ErrTooFewPoints
	}

	n := float64(len(xs))
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return HeapsFit{}, ErrTooFewPoints // all points share one x value
	}

	beta := (n*sumXY - sumX*sumY) / denom
	logK := (sumY - beta*sumX) / n

	// R² in log space.
	meanY := sumY / n
	var ssRes, ssTot float64
	for i := range xs {
		pred := logK + beta*xs[i]
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return HeapsFit{K: math.Exp(logK), Beta: beta, R2: r2}, nil
}

// Predict evaluates the fitted curve at n tokens.
func (f HeapsFit) Predict(n int) float64 {
	if n <= 0 {
		return 0
	}
	return f.K * math.Pow(float64(n), f.Beta)
}
