package dataset

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is an immutable snapshot of a raw indicator CSV. Every cell is kept
// as its original string; numeric interpretation happens downstream through
// ParseNumericOrMissing so both table shapes share one coercion path.
type Table struct {
	df   dataframe.DataFrame
	path string
}

// Path returns the file the table was loaded from, or "" for in-memory tables.
func (t *Table) Path() string { return t.path }

// Columns returns the header names in file order.
func (t *Table) Columns() []string { return t.df.Names() }

// NumRows returns the number of data rows (header excluded).
func (t *Table) NumRows() int { return t.df.Nrow() }

// HasColumn reports whether the header contains the exact name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.df.Names() {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the raw string cells of one column, or nil if absent.
func (t *Table) Column(name string) []string {
	if !t.HasColumn(name) {
		return nil
	}
	return t.df.Col(name).Records()
}

// Records returns header plus data rows as raw strings.
func (t *Table) Records() [][]string {
	return t.df.Records()
}

// FromRecords builds an in-memory Table from header+rows. Intended for tests
// and for callers that already hold parsed CSV records.
func FromRecords(records [][]string) *Table {
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	return &Table{df: df}
}

// Loader reads CSV files into Tables and memoizes them by path, so the
// re-render on every interaction does not re-read the file. Reset drops the
// cache; tests use it to compare cold and warm loads.
type Loader struct {
	mu    sync.Mutex
	cache map[string]*Table
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*Table)}
}

// Load returns the cached Table for path, reading and caching it on first use.
func (l *Loader) Load(path string) (*Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.cache[path]; ok {
		return t, nil
	}
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	l.cache[path] = t
	return t, nil
}

// Reset clears the cache so the next Load re-reads from disk.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*Table)
}

func readTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse dataset: %w", df.Err)
	}
	return &Table{df: df, path: path}, nil
}

var defaultLoader = NewLoader()

// Load reads path through the process-wide loader cache.
func Load(path string) (*Table, error) { return defaultLoader.Load(path) }

// ResetCache clears the process-wide loader cache.
func ResetCache() { defaultLoader.Reset() }
