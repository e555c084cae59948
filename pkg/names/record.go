// Package names aggregates yearly name-frequency files and ranks the totals.
//
// A year file holds one record per line in the form "Name,Sex,Count"
// (for example "Liam,M,20000"). There is no header, no quoting and no
// embedded delimiters. Aggregate sums the counts of one sex across the
// requested years and returns the top N names by total count.
package names

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category is the sex code a record is filed under.
type Category string

const (
	Female Category = "F"
	Male   Category = "M"
)

var (
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("parse error")
	// ErrInvalidCategory is returned for codes other than F and M.
	ErrInvalidCategory = errors.New("invalid category")
)

// ParseCategory accepts "F" or "M".
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Female, Male:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q (expected F or M)", ErrInvalidCategory, s)
	}
}

// Label returns the human label used in messages and file names.
func (c Category) Label() string {
	if c == Female {
		return "girl"
	}
	return "boy"
}

// Valid reports whether c is one of the two known codes.
func (c Category) Valid() bool {
	return c == Female || c == Male
}

// Record is one parsed line of a year file.
type Record struct {
	Name     string
	Category Category
	Count    int
}

// ParseError describes a line that does not have the name,sex,count shape.
type ParseError struct {
	Year int
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("year %d line %d: %q: %v", e.Year, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// ParseLine splits a single record line. Surrounding whitespace (including
// the trailing CR of CRLF files) is ignored.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	cat, err := ParseCategory(fields[1])
	if err != nil {
		return Record{}, err
	}
	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("count: %w", err)
	}
	if count < 0 {
		return Record{}, fmt.Errorf("count: negative value %d", count)
	}
	return Record{Name: fields[0], Category: cat, Count: count}, nil
}
