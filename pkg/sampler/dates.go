package sampler

import (
	"math/rand/v2"
	"time"

	"github.com/ajitpratap0/rostergen/pkg/models"
)

// Hire dates are drawn uniformly over this inclusive day range.
var (
	hireDateFirst = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	hireDateLast  = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

var hireDateDays = int(hireDateLast.Sub(hireDateFirst).Hours()/24) + 1

func hireDate(rng *rand.Rand) string {
	return hireDateFirst.AddDate(0, 0, rng.IntN(hireDateDays)).Format(models.HireDateLayout)
}
