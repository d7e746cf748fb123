package analytics

import "math"

// Summary holds basic descriptive statistics of a value sample.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64 // sample standard deviation; 0 for fewer than two values
}

// Describe computes count, min, max, mean, and sample standard deviation in
// one pass (Welford update for the variance).
func Describe(values []float64) Summary {
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	var mean, m2 float64
	for _, v := range values {
		s.Count++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - mean
		mean += delta / float64(s.Count)
		m2 += delta * (v - mean)
	}
	if s.Count == 0 {
		return Summary{}
	}
	s.Mean = mean
	if s.Count > 1 {
		s.Std = math.Sqrt(m2 / float64(s.Count-1))
	}
	return s
}
