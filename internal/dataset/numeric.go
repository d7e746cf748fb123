package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumericOrMissing converts a raw cell into a float64. The second return
// is false when the cell is missing: empty, a known placeholder, or anything
// that does not parse as a finite number. Unparsable input is never an error;
// it degrades to a missing value so a dirty row cannot abort a render cycle.
func ParseNumericOrMissing(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	// Placeholders common in indicator exports.
	switch raw {
	case "..", "...", "NA", "N/A", "na", "n/a", "NaN", "nan", "null", "NULL", "None":
		return 0, false
	}
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	// Non-finite values cannot travel through JSON; treat them as missing too.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
