package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Default display window; the selected range is clamped into it when the data
// allows.
const (
	DefaultWindowStart = 1970
	DefaultWindowEnd   = 2015
)

// ErrNoYearData means neither a year column nor a parsable Year value exists,
// so no year bounds can be derived for the table.
var ErrNoYearData = errors.New("no usable year values in dataset")

// YearRange is an inclusive [From, To] span of years.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// Selection identifies one dashboard slice: exact country, exact indicator,
// and the inclusive year range to display.
type Selection struct {
	Country   string    `json:"country"`
	Indicator string    `json:"indicator"`
	Years     YearRange `json:"years"`
}

// FilterSelection returns the rows whose Country Name and Indicator Name
// match exactly. Matching is whole-string equality; zero matching rows is a
// valid outcome, not an error.
func FilterSelection(t *Table, country, indicator string) (*Table, error) {
	sub := t.df.Filter(
		dataframe.F{Colname: ColCountry, Comparator: series.Eq, Comparando: country},
	).Filter(
		dataframe.F{Colname: ColIndicator, Comparator: series.Eq, Comparando: indicator},
	)
	if sub.Err != nil {
		return nil, fmt.Errorf("filter selection: %w", sub.Err)
	}
	return &Table{df: sub, path: t.path}, nil
}

// YearBounds derives the min and max year the table can display. For wide
// tables the bounds come from the year column names; for long tables from the
// numeric coercion of the Year column, ignoring unparsable cells.
func YearBounds(t *Table, shape Shape) (YearRange, error) {
	lo, hi := 0, 0
	found := false
	if shape == ShapeWide {
		for _, c := range YearColumns(t) {
			y, ok := yearValue(c)
			if !ok {
				continue
			}
			if !found || y < lo {
				lo = y
			}
			if !found || y > hi {
				hi = y
			}
			found = true
		}
	} else {
		for _, cell := range t.Column(ColYear) {
			f, ok := ParseNumericOrMissing(cell)
			if !ok {
				continue
			}
			y := int(f)
			if !found || y < lo {
				lo = y
			}
			if !found || y > hi {
				hi = y
			}
			found = true
		}
	}
	if !found {
		return YearRange{}, ErrNoYearData
	}
	return YearRange{From: lo, To: hi}, nil
}

// DefaultWindow clamps the displayed range into the default window. When the
// dataset lies entirely outside the window the full span is used instead.
func DefaultWindow(bounds YearRange) YearRange {
	from := bounds.From
	if from < DefaultWindowStart {
		from = DefaultWindowStart
	}
	to := bounds.To
	if to > DefaultWindowEnd {
		to = DefaultWindowEnd
	}
	if from > to {
		return bounds
	}
	return YearRange{From: from, To: to}
}

// Countries returns the distinct non-empty Country Name values, sorted.
func Countries(t *Table) []string {
	return distinctSorted(t.Column(ColCountry))
}

// Indicators returns the distinct non-empty Indicator Name values, sorted.
func Indicators(t *Table) []string {
	return distinctSorted(t.Column(ColIndicator))
}

func distinctSorted(cells []string) []string {
	seen := make(map[string]struct{}, len(cells))
	var out []string
	for _, v := range cells {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
