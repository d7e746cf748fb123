package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var csvWide = strings.Join([]string{
	`Country Name,Country Code,Indicator Name,Indicator Code,2000,2001`,
	`Aruba,ABW,"School enrollment, primary",SE.PRM.ENRR,10,11`,
	`Brazil,BRA,"School enrollment, primary",SE.PRM.ENRR,5,`,
}, "\n")

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoaderReadsCSV(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "wide.csv", csvWide)
	l := NewLoader()
	tbl, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Path() != path {
		t.Fatalf("path = %q, want %q", tbl.Path(), path)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.NumRows())
	}
	if got := len(tbl.Columns()); got != 6 {
		t.Fatalf("columns = %d, want 6", got)
	}
	// The quoted comma must survive as one cell.
	if got := tbl.Column(ColIndicator)[0]; got != "School enrollment, primary" {
		t.Fatalf("indicator cell = %q", got)
	}
	if !tbl.HasColumn("2001") || tbl.HasColumn("2002") {
		t.Fatalf("column lookup wrong: %v", tbl.Columns())
	}
}

func TestLoaderCachesByPath(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "wide.csv", csvWide)
	l := NewLoader()
	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Fatalf("second Load returned a distinct table; cache missed")
	}
}

func TestLoaderResetRereads(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "wide.csv", csvWide)
	l := NewLoader()
	tbl, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.NumRows())
	}

	extra := csvWide + "\n" + `Chile,CHL,"School enrollment, primary",SE.PRM.ENRR,7,8`
	writeCSV(t, dir, "wide.csv", extra)

	cached, err := l.Load(path)
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if cached != tbl {
		t.Fatalf("Load re-read the file without a Reset")
	}

	l.Reset()
	fresh, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load after Reset: %v", err)
	}
	if fresh == tbl {
		t.Fatalf("Reset did not drop the cached table")
	}
	if fresh.NumRows() != 3 {
		t.Fatalf("rows after Reset = %d, want 3", fresh.NumRows())
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader()
	_, err := l.Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open dataset") {
		t.Fatalf("error = %q, want open dataset context", err.Error())
	}
}

func TestFromRecordsRoundTrip(t *testing.T) {
	tbl := FromRecords(wideRows)
	if tbl.Path() != "" {
		t.Fatalf("in-memory path = %q, want empty", tbl.Path())
	}
	recs := tbl.Records()
	if len(recs) != len(wideRows) {
		t.Fatalf("records = %d rows, want %d", len(recs), len(wideRows))
	}
	for i, row := range wideRows {
		for j, cell := range row {
			if recs[i][j] != cell {
				t.Fatalf("records[%d][%d] = %q, want %q", i, j, recs[i][j], cell)
			}
		}
	}
	if tbl.Column("no such column") != nil {
		t.Fatalf("Column on absent name should be nil")
	}
}
