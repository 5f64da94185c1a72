package service

import (
	"math"
	"testing"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateBounds(t *testing.T) {
	items := ints(23)

	tests := []struct {
		page int
		want int
	}{
		{page: -3, want: 0},
		{page: 0, want: 0},
		{page: 1, want: 10},
		{page: 2, want: 10},
		{page: 3, want: 3},
		{page: 4, want: 0},
		{page: 1 << 40, want: 0},
		{page: 5534023222112865486, want: 0},
		{page: math.MaxInt, want: 0},
	}
	for _, tt := range tests {
		got := Paginate(tt.page, items)
		if len(got) != tt.want {
			t.Errorf("Paginate(%d) returned %d items, want %d", tt.page, len(got), tt.want)
		}
		if got == nil {
			t.Errorf("Paginate(%d) returned nil, want empty slice", tt.page)
		}
	}
}

func TestPaginatePagesReproduceList(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 20, 37} {
		items := ints(n)
		var joined []int
		for page := 1; ; page++ {
			current := Paginate(page, items)
			if len(current) == 0 {
				break
			}
			if len(current) > QuestionsPerPage {
				t.Fatalf("n=%d page=%d has %d items", n, page, len(current))
			}
			joined = append(joined, current...)
		}
		if len(joined) != n {
			t.Fatalf("n=%d: pages hold %d items", n, len(joined))
		}
		for i, v := range joined {
			if v != items[i] {
				t.Fatalf("n=%d: item %d = %d, want %d", n, i, v, items[i])
			}
		}
	}
}

func TestPaginateDoesNotAlias(t *testing.T) {
	items := ints(5)
	page := Paginate(1, items)
	page[0] = 99
	if items[0] != 1 {
		t.Fatalf("Paginate result aliases its input")
	}
}

func TestPaginateEmptyList(t *testing.T) {
	if got := Paginate(1, []int{}); got == nil || len(got) != 0 {
		t.Fatalf("Paginate(1, empty) = %v, want empty slice", got)
	}
}
