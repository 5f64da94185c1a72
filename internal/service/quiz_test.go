package service

import (
	"math/rand"
	"testing"
)

func TestSelectQuizQuestionSkipsSeen(t *testing.T) {
	pool := seedQuestions(4)
	r := &sequenceRand{indexes: []int{0, 1, 0, 2}}

	got, ok := SelectQuizQuestion(r, pool, []int64{1, 2})
	if !ok {
		t.Fatalf("expected a question")
	}
	if got.ID != 3 {
		t.Fatalf("got question %d, want 3", got.ID)
	}
	if r.calls != 4 {
		t.Fatalf("rand called %d times, want 4", r.calls)
	}
}

func TestSelectQuizQuestionEmptyPool(t *testing.T) {
	r := &sequenceRand{indexes: []int{0}}
	if _, ok := SelectQuizQuestion(r, nil, nil); ok {
		t.Fatalf("expected exhaustion for empty pool")
	}
	if r.calls != 0 {
		t.Fatalf("rand called %d times for empty pool", r.calls)
	}
}

func TestSelectQuizQuestionExhausted(t *testing.T) {
	pool := seedQuestions(3)
	if _, ok := SelectQuizQuestion(globalRand{}, pool, []int64{3, 1, 2, 99}); ok {
		t.Fatalf("expected exhaustion when every question was seen")
	}
}

func TestSelectQuizQuestionNeverReturnsSeen(t *testing.T) {
	pool := seedQuestions(30)
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		seen := make([]int64, 0, 29)
		seenSet := make(map[int64]bool)
		for _, q := range pool {
			if r.Intn(3) > 0 && len(seen) < 29 {
				seen = append(seen, q.ID)
				seenSet[q.ID] = true
			}
		}

		got, ok := SelectQuizQuestion(r, pool, seen)
		if !ok {
			t.Fatalf("trial %d: unexpected exhaustion", trial)
		}
		if seenSet[got.ID] {
			t.Fatalf("trial %d: returned seen question %d", trial, got.ID)
		}
	}
}

func TestSelectQuizQuestionWalksWholePool(t *testing.T) {
	pool := seedQuestions(12)
	var seen []int64
	for range pool {
		got, ok := SelectQuizQuestion(globalRand{}, pool, seen)
		if !ok {
			t.Fatalf("exhausted after %d questions", len(seen))
		}
		seen = append(seen, got.ID)
	}
	if _, ok := SelectQuizQuestion(globalRand{}, pool, seen); ok {
		t.Fatalf("expected exhaustion after every question was served")
	}

	unique := make(map[int64]bool)
	for _, id := range seen {
		unique[id] = true
	}
	if len(unique) != len(pool) {
		t.Fatalf("served %d distinct questions, want %d", len(unique), len(pool))
	}
}

var _ RandSource = (*rand.Rand)(nil)
