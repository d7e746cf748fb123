package dataset

import (
	"errors"
	"sort"
)

// ErrNoYearsInRange means a wide table has no year columns inside the
// selected range. The dashboard surfaces it as a warning and skips the chart
// section for that cycle.
var ErrNoYearsInRange = errors.New("no year columns found in this range")

// LongRecord is the canonical unit all analytics consume: one observation of
// one indicator for one country in one year. Missing marks a value that was
// absent or failed numeric coercion; the record is kept so completeness can
// count it.
type LongRecord struct {
	Country   string
	Indicator string
	Year      int
	Value     float64
	Missing   bool
}

// LongSeries is a run of records sorted ascending by Year. Records sharing a
// year keep their source order; duplicate years are preserved as distinct
// observations, never aggregated.
type LongSeries []LongRecord

// Clean returns the records holding a real value, in the same order.
func (s LongSeries) Clean() LongSeries {
	var out LongSeries
	for _, r := range s {
		if !r.Missing {
			out = append(out, r)
		}
	}
	return out
}

// Values returns the Value of each record, in order. Call on Clean() output
// when missing entries must be excluded.
func (s LongSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.Value
	}
	return out
}

// Reshape normalizes one selected slice of the table into a LongSeries
// restricted to the selection's year range.
//
// Wide tables are melted: every year column inside the range contributes one
// record per row, with the year taken from the column name and the cell put
// through lenient coercion. Long tables keep their rows, dropping only those
// whose Year does not parse; a row with an unparsable Value stays, flagged
// missing. Reshaping is deterministic: the same table and selection always
// produce an identical series.
func Reshape(t *Table, shape Shape, sel Selection) (LongSeries, error) {
	var out LongSeries
	if shape == ShapeWide {
		type yearCol struct {
			name string
			year int
		}
		var inRange []yearCol
		for _, c := range YearColumns(t) {
			y, ok := yearValue(c)
			if !ok {
				continue
			}
			if sel.Years.Contains(y) {
				inRange = append(inRange, yearCol{name: c, year: y})
			}
		}
		if len(inRange) == 0 {
			return nil, ErrNoYearsInRange
		}
		recs := t.Records()
		idx := columnIndex(recs[0])
		ci, ii := idx[ColCountry], idx[ColIndicator]
		for _, yc := range inRange {
			vi, ok := idx[yc.name]
			if !ok {
				continue
			}
			for _, row := range recs[1:] {
				rec := LongRecord{Year: yc.year}
				if ci >= 0 && ci < len(row) {
					rec.Country = row[ci]
				}
				if ii >= 0 && ii < len(row) {
					rec.Indicator = row[ii]
				}
				if vi < len(row) {
					rec.Value, rec.Missing = coerce(row[vi])
				} else {
					rec.Missing = true
				}
				out = append(out, rec)
			}
		}
	} else {
		recs := t.Records()
		idx := columnIndex(recs[0])
		ci, ii := idx[ColCountry], idx[ColIndicator]
		yi, vi := idx[ColYear], idx[ColValue]
		for _, row := range recs[1:] {
			if yi < 0 || yi >= len(row) {
				continue
			}
			yf, ok := ParseNumericOrMissing(row[yi])
			if !ok {
				continue // a row without a usable year cannot be placed
			}
			year := int(yf)
			if !sel.Years.Contains(year) {
				continue
			}
			rec := LongRecord{Year: year}
			if ci >= 0 && ci < len(row) {
				rec.Country = row[ci]
			}
			if ii >= 0 && ii < len(row) {
				rec.Indicator = row[ii]
			}
			if vi >= 0 && vi < len(row) {
				rec.Value, rec.Missing = coerce(row[vi])
			} else {
				rec.Missing = true
			}
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func coerce(cell string) (value float64, missing bool) {
	v, ok := ParseNumericOrMissing(cell)
	return v, !ok
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	idx0 := func(name string) {
		if _, ok := idx[name]; !ok {
			idx[name] = -1
		}
	}
	idx0(ColCountry)
	idx0(ColIndicator)
	idx0(ColYear)
	idx0(ColValue)
	return idx
}
