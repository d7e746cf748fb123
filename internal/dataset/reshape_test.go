package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestReshapeWideMeltsYearColumns(t *testing.T) {
	tbl := FromRecords([][]string{
		{"Country Name", "Indicator Name", "2000", "2001", "2002"},
		{"Aruba", "School enrollment, primary", "10", "", "30"},
	})
	sel := Selection{
		Country:   "Aruba",
		Indicator: "School enrollment, primary",
		Years:     YearRange{From: 2000, To: 2002},
	}
	got, err := Reshape(tbl, ShapeWide, sel)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	want := LongSeries{
		{Country: "Aruba", Indicator: "School enrollment, primary", Year: 2000, Value: 10},
		{Country: "Aruba", Indicator: "School enrollment, primary", Year: 2001, Missing: true},
		{Country: "Aruba", Indicator: "School enrollment, primary", Year: 2002, Value: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("series = %+v, want %+v", got, want)
	}
	if clean := got.Clean(); len(clean) != 2 || clean[0].Year != 2000 || clean[1].Year != 2002 {
		t.Fatalf("clean = %+v, want the 2000 and 2002 records", got.Clean())
	}
}

func TestReshapeWideHonorsRange(t *testing.T) {
	sub, err := FilterSelection(FromRecords(wideRows), "Brazil", "School enrollment, primary")
	if err != nil {
		t.Fatalf("FilterSelection: %v", err)
	}
	sel := Selection{
		Country:   "Brazil",
		Indicator: "School enrollment, primary",
		Years:     YearRange{From: 2001, To: 2002},
	}
	got, err := Reshape(sub, ShapeWide, sel)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("series len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Year != 2001 || got[0].Missing || got[0].Value != 6 {
		t.Fatalf("first record = %+v, want 2001=6", got[0])
	}
	// "x" does not coerce; the record stays but is flagged missing.
	if got[1].Year != 2002 || !got[1].Missing {
		t.Fatalf("second record = %+v, want missing 2002", got[1])
	}
}

func TestReshapeWideEmptyRange(t *testing.T) {
	tbl := FromRecords(wideRows)
	sel := Selection{Country: "Brazil", Indicator: "Adult literacy rate", Years: YearRange{From: 1990, To: 1995}}
	series, err := Reshape(tbl, ShapeWide, sel)
	if !errors.Is(err, ErrNoYearsInRange) {
		t.Fatalf("error = %v, want ErrNoYearsInRange", err)
	}
	if series != nil {
		t.Fatalf("series = %+v, want nil", series)
	}
}

func TestReshapeLongDropsUnparsableYears(t *testing.T) {
	t.Helper()
	sub, err := FilterSelection(FromRecords(longRows), "Chile", "Pupil-teacher ratio")
	if err != nil {
		t.Fatalf("FilterSelection: %v", err)
	}
	sel := Selection{Country: "Chile", Indicator: "Pupil-teacher ratio", Years: YearRange{From: 2000, To: 2002}}
	got, err := Reshape(sub, ShapeLong, sel)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	// The "abc" row is gone; the empty Value row survives as missing.
	want := LongSeries{
		{Country: "Chile", Indicator: "Pupil-teacher ratio", Year: 2000, Value: 21},
		{Country: "Chile", Indicator: "Pupil-teacher ratio", Year: 2001, Value: 22.5},
		{Country: "Chile", Indicator: "Pupil-teacher ratio", Year: 2002, Missing: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("series = %+v, want %+v", got, want)
	}
}

func TestReshapeLongRangeFilter(t *testing.T) {
	sub, err := FilterSelection(FromRecords(longRows), "Chile", "Pupil-teacher ratio")
	if err != nil {
		t.Fatalf("FilterSelection: %v", err)
	}
	sel := Selection{Country: "Chile", Indicator: "Pupil-teacher ratio", Years: YearRange{From: 2001, To: 2001}}
	got, err := Reshape(sub, ShapeLong, sel)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if len(got) != 1 || got[0].Year != 2001 || got[0].Value != 22.5 {
		t.Fatalf("series = %+v, want the single 2001 record", got)
	}
}

func TestReshapeKeepsDuplicateYearsInOrder(t *testing.T) {
	tbl := FromRecords([][]string{
		{"Country Name", "Indicator Name", "Year", "Value"},
		{"Chile", "Literacy rate", "2000", "1"},
		{"Chile", "Literacy rate", "1999", "5"},
		{"Chile", "Literacy rate", "2000", "2"},
	})
	sel := Selection{Country: "Chile", Indicator: "Literacy rate", Years: YearRange{From: 1999, To: 2000}}
	got, err := Reshape(tbl, ShapeLong, sel)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("series len = %d, want 3", len(got))
	}
	// Ascending by year, and records sharing a year keep their source order.
	years := []int{got[0].Year, got[1].Year, got[2].Year}
	if years[0] != 1999 || years[1] != 2000 || years[2] != 2000 {
		t.Fatalf("year order = %v", years)
	}
	if got[1].Value != 1 || got[2].Value != 2 {
		t.Fatalf("duplicate year order = %v then %v, want 1 then 2", got[1].Value, got[2].Value)
	}
	if vals := got.Values(); !reflect.DeepEqual(vals, []float64{5, 1, 2}) {
		t.Fatalf("values = %v, want [5 1 2]", vals)
	}
}

func TestReshapeDeterministic(t *testing.T) {
	tbl := FromRecords(wideRows)
	sel := Selection{Country: "Brazil", Indicator: "School enrollment, primary", Years: YearRange{From: 2000, To: 2002}}
	first, err := Reshape(tbl, ShapeWide, sel)
	if err != nil {
		t.Fatalf("first Reshape: %v", err)
	}
	second, err := Reshape(tbl, ShapeWide, sel)
	if err != nil {
		t.Fatalf("second Reshape: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reshape not deterministic:\n%+v\n%+v", first, second)
	}
}
