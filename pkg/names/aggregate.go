package names

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoData is returned when none of the requested years has a file.
	ErrNoData = errors.New("no valid year files found")
	// ErrInvalidConfig is wrapped by Config.Validate failures.
	ErrInvalidConfig = errors.New("invalid config")
)

const maxLineLength = 1024 * 1024

// Entry is a name with its accumulated count.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Table accumulates counts per name for a single category.
type Table struct {
	category Category
	counts   map[string]int
}

// NewTable returns an empty table that accepts records of category c.
func NewTable(c Category) *Table {
	return &Table{category: c, counts: make(map[string]int)}
}

// Add folds r into the table. Records of another category are ignored.
// It reports whether r was counted.
func (t *Table) Add(r Record) bool {
	if r.Category != t.category {
		return false
	}
	t.counts[r.Name] += r.Count
	return true
}

// Count returns the accumulated count for name.
func (t *Table) Count(name string) int {
	return t.counts[name]
}

// Len is the number of distinct names.
func (t *Table) Len() int {
	return len(t.counts)
}

// Ranked returns every entry ordered by count descending. Equal counts are
// ordered by name ascending so output is reproducible.
func (t *Table) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for name, count := range t.counts {
		entries = append(entries, Entry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Config selects what Aggregate reads and how much it keeps.
type Config struct {
	Category Category
	Years    []int
	TopN     int
	Resolver Resolver
	Logger   *slog.Logger
}

// Validate checks that c can drive an aggregation.
func (c Config) Validate() error {
	switch {
	case !c.Category.Valid():
		return fmt.Errorf("%w: category %q", ErrInvalidConfig, c.Category)
	case len(c.Years) == 0:
		return fmt.Errorf("%w: at least one year is required", ErrInvalidConfig)
	case c.TopN <= 0:
		return fmt.Errorf("%w: top N must be positive, got %d", ErrInvalidConfig, c.TopN)
	case c.Resolver == nil:
		return fmt.Errorf("%w: resolver is nil", ErrInvalidConfig)
	}
	return nil
}

// Result is the outcome of a successful aggregation.
type Result struct {
	Category Category
	Years    []int   // years that had a file, in request order
	Skipped  []int   // years without a file
	Ranked   []Entry // top N entries
	Distinct int     // distinct matching names before truncation
}

// Names projects the ranked entries to their names.
func (r *Result) Names() []string {
	out := make([]string, len(r.Ranked))
	for i, e := range r.Ranked {
		out[i] = e.Name
	}
	return out
}

// Aggregate reads every requested year, sums counts of the configured
// category and returns the top N names. Missing years are skipped with a
// warning; a malformed line aborts the run.
func Aggregate(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	table := NewTable(cfg.Category)
	res := &Result{Category: cfg.Category}

	for _, year := range cfg.Years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := readYear(cfg.Resolver, year, table)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Warn("year file not found, skipping", "file", FileName(year), "year", year)
			res.Skipped = append(res.Skipped, year)
			continue
		}
		logger.Debug("read year file", "year", year, "distinct", table.Len())
		res.Years = append(res.Years, year)
	}

	if len(res.Years) == 0 {
		return nil, ErrNoData
	}

	logger.Info("processing names", "label", cfg.Category.Label(), "years", joinYears(res.Years))

	ranked := table.Ranked()
	res.Distinct = len(ranked)
	if len(ranked) > cfg.TopN {
		ranked = ranked[:cfg.TopN]
	}
	res.Ranked = ranked
	return res, nil
}

// readYear folds one year file into table. It reports false without error
// when the year has no file.
func readYear(r Resolver, year int, table *Table) (bool, error) {
	rc, err := r.Open(year)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", FileName(year), err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		rec, err := ParseLine(line)
		if err != nil {
			return false, &ParseError{Year: year, Line: lineNo, Text: line, Err: err}
		}
		table.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading %s: %w", FileName(year), err)
	}
	return true, nil
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
