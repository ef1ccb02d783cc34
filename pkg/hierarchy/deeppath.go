package hierarchy

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"

	"github.com/ajitpratap0/rostergen/pkg/refdata"
)

// pcgStream is the fixed second PCG word for per-key generators.
const pcgStream = 0x9e3779b97f4a7c15

// DeepPathGenerator derives the synthetic SNODE labels for levels 7..15.
//
// Each call seeds a private generator from the key, so the result depends on
// the key and depth only and never on the caller's random stream or on the
// order of calls.
type DeepPathGenerator struct {
	levels []refdata.DeepLevel
}

// NewDeepPathGenerator creates a generator over the per-level candidate
// lists. levels[0] must be L7.
func NewDeepPathGenerator(levels []refdata.DeepLevel) *DeepPathGenerator {
	return &DeepPathGenerator{levels: levels}
}

// Labels returns the labels for levels 7 through depth. depth is clamped to
// [0, 15]; anything below 7 yields an empty slice. The labels for a smaller
// depth are a prefix of the labels for a larger depth with the same key.
func (g *DeepPathGenerator) Labels(key string, depth int) []string {
	depth = clampDepth(depth)
	if depth < refdata.FirstDeepLevel {
		return []string{}
	}

	rng := rand.New(rand.NewPCG(seedFor(key), pcgStream))
	out := make([]string, 0, depth-refdata.FixedLevels)
	for _, lvl := range g.levels {
		if lvl.Level > depth {
			break
		}
		out = append(out, lvl.Candidates[rng.IntN(len(lvl.Candidates))])
	}
	return out
}

// Key builds the per-record deep-path key.
func Key(businessLine, subTeam string, index int) string {
	return businessLine + "|" + subTeam + "|" + strconv.Itoa(index)
}

func seedFor(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

func clampDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > refdata.Levels {
		return refdata.Levels
	}
	return depth
}
