package engine

import "testing"

func TestNewSparseVec32SortsAndDedups(t *testing.T) {
	v := NewSparseVec32([]SparseEntry{
		{Dim: 3, Weight: 1},
		{Dim: 1, Weight: 2},
		{Dim: 3, Weight: 4},
	})
	if len(v) != 2 {
		t.Fatalf("expected 2 distinct dims, got %d: %+v", len(v), v)
	}
	if v[0].Dim != 1 || v[1].Dim != 3 {
		t.Fatalf("expected ascending dims, got %+v", v)
	}
	if v[1].Weight != 5 {
		t.Fatalf("expected dim 3 weight summed to 5, got %v", v[1].Weight)
	}
}

func TestDotProductSharedDimsOnly(t *testing.T) {
	a := NewSparseVec32([]SparseEntry{{Dim: 1, Weight: 2}, {Dim: 2, Weight: 3}})
	b := NewSparseVec32([]SparseEntry{{Dim: 2, Weight: 5}, {Dim: 4, Weight: 7}})
	if got := DotProduct(a, b); got != 15 {
		t.Fatalf("DotProduct = %v, want 15", got)
	}
}

func TestWeightedDiceSelfSimilarityIsOne(t *testing.T) {
	a := NewSparseVec32([]SparseEntry{{Dim: 1, Weight: 2}, {Dim: 2, Weight: 3}})
	if got := WeightedDice(a, a); got < 0.999 || got > 1.001 {
		t.Fatalf("WeightedDice(a,a) = %v, want ~1", got)
	}
}

func TestWeightedDiceEmptyVectorsIsZero(t *testing.T) {
	var a, b SparseVec32
	if got := WeightedDice(a, b); got != 0 {
		t.Fatalf("WeightedDice(empty,empty) = %v, want 0", got)
	}
}
