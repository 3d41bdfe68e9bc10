package ristorante

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCosine(t *testing.T) {
	cases := []struct {
		a, b     SparseVector[string]
		expected float64
	}{
		{a: SparseVector[string]{"x": 1}, b: SparseVector[string]{"x": 3}, expected: 1},
		{a: SparseVector[string]{"x": 1}, b: SparseVector[string]{"y": 1}, expected: 0},
		{a: SparseVector[string]{"x": 1, "y": 1}, b: SparseVector[string]{"x": 1}, expected: 1 / math.Sqrt2},
		{a: SparseVector[string]{}, b: SparseVector[string]{"x": 1}, expected: 0},
		{a: SparseVector[string]{"x": 0}, b: SparseVector[string]{"x": 1}, expected: 0},
		{a: SparseVector[string]{}, b: SparseVector[string]{}, expected: 0},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("a = %v, b = %v", tt.a, tt.b), func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if diff := cmp.Diff(got, tt.expected, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
			if diff := cmp.Diff(Cosine(tt.b, tt.a), got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("not symmetric. Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSparseVectorZeroDefault(t *testing.T) {
	v := SparseVector[DocumentID]{}
	v.Add(3, 1.5)
	v.Add(3, 0.5)
	if got := v.Get(3); got != 2 {
		t.Errorf("Get(3) = %v, want 2", got)
	}
	if got := v.Get(4); got != 0 {
		t.Errorf("Get(4) = %v, want 0", got)
	}
	if got := v.Magnitude(); got != 2 {
		t.Errorf("Magnitude() = %v, want 2", got)
	}
}
