package sampler

import (
	"math/rand/v2"
	"sort"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Weighted picks indexes with probability proportional to relative weights.
// Zero-weight entries are never picked.
type Weighted struct {
	cum  []float64
	last int // highest index with a positive weight
}

// NewWeighted precomputes the cumulative sums of weights.
func NewWeighted(weights []float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, rerrors.New(rerrors.ErrorTypeData, "no weights")
	}
	w := &Weighted{cum: make([]float64, len(weights)), last: -1}
	total := 0.0
	for i, v := range weights {
		if v < 0 {
			return nil, rerrors.New(rerrors.ErrorTypeData, "negative weight").WithDetail("index", i)
		}
		total += v
		w.cum[i] = total
		if v > 0 {
			w.last = i
		}
	}
	if w.last < 0 {
		return nil, rerrors.New(rerrors.ErrorTypeData, "weights sum to zero")
	}
	return w, nil
}

// Total returns the sum of all weights.
func (w *Weighted) Total() float64 {
	return w.cum[len(w.cum)-1]
}

// Pick draws one Float64 from rng and returns the first index whose
// cumulative weight exceeds it.
func (w *Weighted) Pick(rng *rand.Rand) int {
	r := rng.Float64() * w.Total()
	i := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > r })
	if i > w.last {
		// r rounded up to the total
		i = w.last
	}
	return i
}
