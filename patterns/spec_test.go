package patterns_test

import (
	"testing"

	"github.com/auth-platform/libs/go/domainkit/patterns"
)

func TestSpecComposition(t *testing.T) {
	even := patterns.SpecFunc[int](func(n int) bool { return n%2 == 0 })

	tests := []struct {
		name string
		spec patterns.Spec[int]
		in   int
		want bool
	}{
		{"func", even, 2, true},
		{"not", patterns.Not[int](even), 3, true},
		{"not negated", patterns.Not[int](even), 4, false},
		{"not in", patterns.Not(patterns.In(1, 2)), 3, true},
		{"in", patterns.In(1, 2, 3), 2, true},
		{"absent", patterns.In(1, 2, 3), 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsSatisfiedBy(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindFirst(t *testing.T) {
	items := []int{1, 4, 6}
	even := patterns.SpecFunc[int](func(n int) bool { return n%2 == 0 })

	if v, ok := patterns.FindFirst(items, patterns.Spec[int](even)); !ok || v != 4 {
		t.Errorf("got %d, %v", v, ok)
	}
	if _, ok := patterns.FindFirst(nil, patterns.Spec[int](even)); ok {
		t.Error("expected no match in empty slice")
	}
}
