package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadHeader marks a CSV whose header row does not carry the expected
// columns. It aborts the whole import.
var ErrBadHeader = errors.New("csv header does not match expected schema")

// Summary totals the per-row outcomes of one import run.
type Summary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"` // rows rejected by validation
	Failed  int `json:"failed"`  // rows that hit a database error

	Rows []RowError `json:"rows,omitempty"`
}

// RowError records why a single row was not imported.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (s *Summary) skip(line int, reason string) {
	s.Skipped++
	s.Rows = append(s.Rows, RowError{Line: line, Reason: reason})
}

func (s *Summary) fail(line int, err error) {
	s.Failed++
	s.Rows = append(s.Rows, RowError{Line: line, Reason: err.Error()})
}

func (s *Summary) String() string {
	return fmt.Sprintf("created: %d, updated: %d, skipped: %d, failed: %d",
		s.Created, s.Updated, s.Skipped, s.Failed)
}

// header maps lowercased column names to their positions.
type header map[string]int

func readHeader(reader *csv.Reader, required []string) (header, error) {
	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	cols := make(header, len(record))
	for i, name := range record {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, name)
		}
	}
	return cols, nil
}

// get returns the trimmed cell for a column, or "" when the column is absent.
func (h header) get(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseIntField(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %d", n)
	}
	return n, nil
}

func parseFloatField(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("must not be negative: %g", f)
	}
	return f, nil
}

func parseBoolField(value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", value)
}
