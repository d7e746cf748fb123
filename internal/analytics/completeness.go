package analytics

import (
	"sort"

	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// YearCompleteness counts the observations of one year and how many of them
// are missing. MissingRate is Missing/Total, defined as 0 for an empty group.
type YearCompleteness struct {
	Year        int     `json:"year"`
	Total       int     `json:"total"`
	Missing     int     `json:"missing"`
	MissingRate float64 `json:"missingRate"`
}

// Completeness groups the series by year, including years where every record
// is missing, and returns one row per year in ascending order.
func Completeness(s dataset.LongSeries) []YearCompleteness {
	type acc struct {
		total   int
		missing int
	}
	byYear := make(map[int]*acc)
	for _, r := range s {
		a := byYear[r.Year]
		if a == nil {
			a = &acc{}
			byYear[r.Year] = a
		}
		a.total++
		if r.Missing {
			a.missing++
		}
	}
	out := make([]YearCompleteness, 0, len(byYear))
	for year, a := range byYear {
		rate := 0.0
		if a.total > 0 {
			rate = float64(a.missing) / float64(a.total)
		}
		out = append(out, YearCompleteness{
			Year:        year,
			Total:       a.total,
			Missing:     a.missing,
			MissingRate: rate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
