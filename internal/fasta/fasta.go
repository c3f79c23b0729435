// Package fasta parses FASTA formatted records. Parsing is deliberately
// simple and conservative: a header line starts with '>', and every
// following line up to the next header belongs to that record's sequence.
package fasta

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrMalformed marks non-empty input whose first content is not a '>'
// record header.
var ErrMalformed = errors.New("fasta: content does not begin with a '>' record header")

// Record is a single FASTA record: the header text after '>' (trimmed) and
// the concatenated sequence lines with terminators stripped.
type Record struct {
	Header   string
	Sequence string
}

// Parse reads all records from r. Empty or whitespace-only input yields no
// records and no error. Sequence lines before any header fail with
// ErrMalformed.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	// allow very long single-line sequences
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var records []Record
	var current *Record
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{Header: strings.TrimSpace(line[1:])}
			continue
		}

		if current == nil {
			return nil, ErrMalformed
		}
		current.Sequence += line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}
