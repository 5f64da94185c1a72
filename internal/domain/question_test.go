package domain

import "testing"

func TestCategoryLabels(t *testing.T) {
	labels := CategoryLabels([]Category{{ID: 1, Type: "Science"}, {ID: 6, Type: "Sports"}})
	if len(labels) != 2 {
		t.Fatalf("len(labels) = %d, want 2", len(labels))
	}
	if labels[6] != "Sports" {
		t.Fatalf("labels[6] = %q, want Sports", labels[6])
	}
}
