package hierarchy

import (
	"strconv"

	"github.com/ajitpratap0/rostergen/pkg/refdata"
)

// SNODE is the fixed-length synthetic hierarchy code of a record. Index 0 is
// L1. Levels past the record's depth hold empty strings.
type SNODE [refdata.Levels]string

// depthThresholds maps one uniform draw to a SNODE depth: 5% reach L15, 15%
// L14, 30% L13 and the remaining 50% stop at L12.
var depthThresholds = []struct {
	below float64
	depth int
}{
	{0.05, 15},
	{0.20, 14},
	{0.50, 13},
}

// MinDepth is the depth every record reaches.
const MinDepth = 12

// DepthFor converts a uniform draw u in [0, 1) to a SNODE depth.
func DepthFor(u float64) int {
	for _, t := range depthThresholds {
		if u < t.below {
			return t.depth
		}
	}
	return MinDepth
}

// Assemble builds the SNODE code: L1 root, L2 business line, L3..L6 the org
// path, then the deep labels. Surplus deep labels are dropped.
func Assemble(root, businessLine string, p OrgPath, deep []string) SNODE {
	var s SNODE
	s[0] = root
	s[1] = businessLine
	s[2] = p.Division
	s[3] = p.Department
	s[4] = p.Team
	s[5] = p.SubTeam
	copy(s[refdata.FixedLevels:], deep)
	return s
}

// EffectiveDepth returns the highest populated level (1-based), or 0 when
// every level is empty.
func (s SNODE) EffectiveDepth() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != "" {
			return i + 1
		}
	}
	return 0
}

// Level returns label n (1-based). Out-of-range levels are empty.
func (s SNODE) Level(n int) string {
	if n < 1 || n > len(s) {
		return ""
	}
	return s[n-1]
}

// Header returns the column name of level n.
func Header(n int) string {
	return "SNODE L" + strconv.Itoa(n)
}
