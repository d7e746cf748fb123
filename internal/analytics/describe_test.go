package analytics

import (
	"math"
	"testing"
)

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func sampleStd(vals []float64) float64 {
	m := mean(vals)
	var ss float64
	for _, v := range vals {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}

func TestDescribe(t *testing.T) {
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := Describe(vals)
	if s.Count != len(vals) {
		t.Fatalf("count = %d, want %d", s.Count, len(vals))
	}
	if s.Min != 2 || s.Max != 9 {
		t.Fatalf("min/max = %v/%v, want 2/9", s.Min, s.Max)
	}
	if !almostEqual(s.Mean, mean(vals), 1e-9) {
		t.Fatalf("mean = %v, want %v", s.Mean, mean(vals))
	}
	if !almostEqual(s.Std, sampleStd(vals), 1e-9) {
		t.Fatalf("std = %v, want %v", s.Std, sampleStd(vals))
	}
}

func TestDescribeEdgeCases(t *testing.T) {
	if s := Describe(nil); s != (Summary{}) {
		t.Fatalf("empty summary = %+v, want zero value", s)
	}
	s := Describe([]float64{3})
	if s.Count != 1 || s.Min != 3 || s.Max != 3 || s.Mean != 3 || s.Std != 0 {
		t.Fatalf("single value summary = %+v", s)
	}
}
