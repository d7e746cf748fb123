package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical column names shared by both table shapes.
const (
	ColCountry   = "Country Name"
	ColIndicator = "Indicator Name"
	ColYear      = "Year"
	ColValue     = "Value"
)

// Shape is the detected layout of a raw table.
type Shape int

const (
	// ShapeLong has one row per (country, indicator, year) with Year and
	// Value columns.
	ShapeLong Shape = iota
	// ShapeWide has one column per year, e.g. "1960" ... "2015".
	ShapeWide
)

func (s Shape) String() string {
	if s == ShapeWide {
		return "wide"
	}
	return "long"
}

// IsYearColumn reports whether a header name, after trimming, consists
// entirely of decimal digits. Such columns identify the wide layout.
func IsYearColumn(name string) bool {
	n := strings.TrimSpace(name)
	if n == "" {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// YearColumns returns the year-shaped header names in file order.
func YearColumns(t *Table) []string {
	var out []string
	for _, c := range t.Columns() {
		if IsYearColumn(c) {
			out = append(out, c)
		}
	}
	return out
}

// DetectShape classifies the table: any year-shaped column means wide,
// otherwise long.
func DetectShape(t *Table) Shape {
	if len(YearColumns(t)) > 0 {
		return ShapeWide
	}
	return ShapeLong
}

// RequiredColumns lists the columns a table of the given shape must carry.
func RequiredColumns(shape Shape) []string {
	if shape == ShapeWide {
		return []string{ColCountry, ColIndicator}
	}
	return []string{ColCountry, ColIndicator, ColYear, ColValue}
}

// schemaPreviewLimit caps how many available columns a SchemaError reports.
const schemaPreviewLimit = 30

// SchemaError reports required columns absent from a table. It is fatal for
// the session: no partial rendering happens on a malformed table.
type SchemaError struct {
	Shape     Shape
	Missing   []string
	Available []string // first schemaPreviewLimit column names
	Total     int      // total number of columns in the table
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("missing columns: [%s]; found columns: [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
	if e.Total > len(e.Available) {
		msg += fmt.Sprintf(" (showing %d of %d)", len(e.Available), e.Total)
	}
	return msg
}

// Validate detects the table shape and checks its required columns.
// On failure it returns the shape alongside a *SchemaError.
func Validate(t *Table) (Shape, error) {
	shape := DetectShape(t)
	var missing []string
	for _, c := range RequiredColumns(shape) {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return shape, nil
	}
	cols := t.Columns()
	preview := cols
	if len(preview) > schemaPreviewLimit {
		preview = preview[:schemaPreviewLimit]
	}
	return shape, &SchemaError{
		Shape:     shape,
		Missing:   missing,
		Available: append([]string(nil), preview...),
		Total:     len(cols),
	}
}

// yearValue parses a year-shaped column name into its integer year.
func yearValue(name string) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil {
		return 0, false
	}
	return y, true
}
