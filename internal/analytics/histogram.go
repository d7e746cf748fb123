package analytics

// HistogramBins is the fixed bin count of the distribution panel.
const HistogramBins = 25

// Bin is one half-open histogram bucket [Low, High); the final bucket also
// includes its High edge so the maximum lands inside it.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram is an equal-width binning of a value sample.
type Histogram struct {
	Bins  []Bin `json:"bins"`
	Count int   `json:"count"`
}

// NewHistogram distributes values over bins equal-width buckets spanning
// [min, max]. An empty sample yields an empty histogram. When every value is
// identical the span collapses to a single bucket holding the whole sample.
func NewHistogram(values []float64, bins int) Histogram {
	if len(values) == 0 || bins <= 0 {
		return Histogram{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return Histogram{
			Bins:  []Bin{{Low: lo, High: hi, Count: len(values)}},
			Count: len(values),
		}
	}
	width := (hi - lo) / float64(bins)
	out := Histogram{Bins: make([]Bin, bins), Count: len(values)}
	for i := range out.Bins {
		out.Bins[i].Low = lo + float64(i)*width
		out.Bins[i].High = lo + float64(i+1)*width
	}
	out.Bins[bins-1].High = hi
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out.Bins[idx].Count++
	}
	return out
}
