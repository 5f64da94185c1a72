package service

import (
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// RandSource picks an index in [0, n)
type RandSource interface {
	Intn(n int) int
}

// globalRand uses the package-level source, which is safe for concurrent use
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// SelectQuizQuestion draws uniformly from pool until it finds a question whose
// ID is not in seen. It reports false when no such question exists.
func SelectQuizQuestion(r RandSource, pool []domain.Question, seen []int64) (domain.Question, bool) {
	seenSet := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	unseen := 0
	for _, q := range pool {
		if _, ok := seenSet[q.ID]; !ok {
			unseen++
		}
	}
	if unseen == 0 {
		return domain.Question{}, false
	}

	// At least one draw succeeds, so the loop terminates.
	for {
		candidate := pool[r.Intn(len(pool))]
		if _, ok := seenSet[candidate.ID]; !ok {
			return candidate, true
		}
	}
}
