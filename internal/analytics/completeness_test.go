package analytics

import (
	"testing"

	"github.com/0Shafa/education-dashboard/internal/dataset"
)

func TestCompletenessGroupsByYear(t *testing.T) {
	series := dataset.LongSeries{
		gap(2001), obs(2000, 21), gap(2000), obs(2002, 23),
	}
	rows := Completeness(series)
	want := []YearCompleteness{
		{Year: 2000, Total: 2, Missing: 1, MissingRate: 0.5},
		{Year: 2001, Total: 1, Missing: 1, MissingRate: 1},
		{Year: 2002, Total: 1, Missing: 0, MissingRate: 0},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d: %+v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestCompletenessRatesBounded(t *testing.T) {
	series := dataset.LongSeries{
		obs(1999, 1), obs(1999, 2), gap(1999), obs(2000, 3), gap(2001), gap(2001),
	}
	for _, row := range Completeness(series) {
		if row.MissingRate < 0 || row.MissingRate > 1 {
			t.Fatalf("rate out of bounds: %+v", row)
		}
		if row.Total < row.Missing {
			t.Fatalf("missing exceeds total: %+v", row)
		}
	}
}

func TestCompletenessAscendingYears(t *testing.T) {
	series := dataset.LongSeries{
		obs(2010, 1), obs(1995, 2), gap(2003), obs(1995, 4),
	}
	rows := Completeness(series)
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Year >= rows[i].Year {
			t.Fatalf("years not strictly ascending: %+v", rows)
		}
	}
}

func TestCompletenessEmptySeries(t *testing.T) {
	if rows := Completeness(nil); len(rows) != 0 {
		t.Fatalf("rows = %+v, want none", rows)
	}
}
