package sampler

import (
	"math/rand/v2"
	"strconv"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// idLetters excludes I and O.
const idLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// Six-digit numeric part bounds, inclusive. Job codes share the range.
const (
	sixDigitMin = 100000
	sixDigitMax = 999999
)

// IDSpace is the number of distinct employee IDs.
const IDSpace = len(idLetters) * (sixDigitMax - sixDigitMin + 1)

// DefaultMaxIDAttempts bounds the resampling loop for one ID.
const DefaultMaxIDAttempts = 1000

// idAllocator hands out unique employee IDs for one run.
type idAllocator struct {
	used        map[string]struct{}
	maxAttempts int
	onCollision func()
}

func newIDAllocator(maxAttempts int, onCollision func()) *idAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxIDAttempts
	}
	return &idAllocator{
		used:        make(map[string]struct{}),
		maxAttempts: maxAttempts,
		onCollision: onCollision,
	}
}

// remaining is the number of IDs not yet handed out.
func (a *idAllocator) remaining() int {
	return IDSpace - len(a.used)
}

func (a *idAllocator) next(rng *rand.Rand) (string, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		id := drawID(rng)
		if _, taken := a.used[id]; !taken {
			a.used[id] = struct{}{}
			return id, nil
		}
		if a.onCollision != nil {
			a.onCollision()
		}
	}
	return "", rerrors.New(rerrors.ErrorTypeExhausted, "no unused employee id found").
		WithDetail("attempts", a.maxAttempts).
		WithDetail("used", len(a.used))
}

func drawID(rng *rand.Rand) string {
	letter := idLetters[rng.IntN(len(idLetters))]
	return string(letter) + strconv.Itoa(sixDigit(rng))
}

func sixDigit(rng *rand.Rand) int {
	return sixDigitMin + rng.IntN(sixDigitMax-sixDigitMin+1)
}
