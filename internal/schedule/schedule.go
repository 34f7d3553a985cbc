// Package schedule reads and filters the crew shift roster.
//
// The roster is a headered CSV file re-read in full on every lookup; nothing
// is cached between calls. Filtering is pure and never fails for well-typed
// input, so all error paths live in Load.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for roster operations.
var (
	ErrFileMissing = errors.New("schedule file not found")
	ErrBadHeader   = errors.New("schedule file has an invalid header")
	ErrBadRow      = errors.New("schedule file has a malformed row")
)

// Record is one shift assignment from the roster.
type Record struct {
	Date       string `json:"date"`
	Day        string `json:"day"`
	CrewMember string `json:"crew_member"`
	Role       string `json:"role"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Activity   string `json:"activity"`
	Location   string `json:"location"`
	Notes      string `json:"notes,omitempty"`
}

// Options controls roster filtering. Zero-value fields apply no filter;
// an empty string never means "match empty".
type Options struct {
	Day  string // exact match on the Day column, case-insensitive
	Name string // substring match on the Crew Member column, case-insensitive
}

// requiredColumns are the header names the roster must carry. Notes is
// optional and handled separately.
var requiredColumns = []string{
	"Date",
	"Day",
	"Crew Member",
	"Role",
	"Shift Start (UTC)",
	"Shift End (UTC)",
	"Activity",
	"Location",
}

// Store reads shift records from a CSV roster file.
type Store struct {
	path string
}

// New creates a Store for the roster at path. The file is not touched until
// Load is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the roster file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the entire roster into memory, preserving file order.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, s.path)
		}
		return nil, fmt.Errorf("opening schedule file %s: %w", s.path, err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, name)
		}
	}
	notesCol, hasNotes := cols["Notes"]

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, line, err)
		}

		rec := Record{
			Date:       row[cols["Date"]],
			Day:        row[cols["Day"]],
			CrewMember: row[cols["Crew Member"]],
			Role:       row[cols["Role"]],
			ShiftStart: row[cols["Shift Start (UTC)"]],
			ShiftEnd:   row[cols["Shift End (UTC)"]],
			Activity:   row[cols["Activity"]],
			Location:   row[cols["Location"]],
		}
		if hasNotes && notesCol < len(row) {
			rec.Notes = row[notesCol]
		}
		records = append(records, rec)
	}
	return records, nil
}

// Filter returns the records matching opts, in input order. Filters compose
// with AND; an unset filter admits every record.
func Filter(records []Record, opts Options) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if opts.Day != "" && !strings.EqualFold(rec.Day, opts.Day) {
			continue
		}
		if opts.Name != "" && !strings.Contains(strings.ToLower(rec.CrewMember), strings.ToLower(opts.Name)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Crew returns the distinct crew members in first-appearance order.
func Crew(records []Record) []string {
	seen := make(map[string]bool, len(records))
	crew := make([]string, 0, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.CrewMember)
		if rec.CrewMember == "" || seen[key] {
			continue
		}
		seen[key] = true
		crew = append(crew, rec.CrewMember)
	}
	return crew
}
