// Package seq validates that nucleotide sequences use only permitted bases.
package seq

import "fmt"

// Alphabet is the set of permitted sequence symbols. Matching is
// case-sensitive: lowercase bases are rejected, not normalized.
type Alphabet string

const (
	// DNA is the strict nucleotide alphabet.
	DNA Alphabet = "ACGT"

	// DNAWithN additionally permits the ambiguity code 'N'.
	DNAWithN Alphabet = "ACGTN"
)

// Contains reports whether b is a member of the alphabet.
func (a Alphabet) Contains(b byte) bool {
	for i := 0; i < len(a); i++ {
		if a[i] == b {
			return true
		}
	}
	return false
}

// InvalidBaseError reports the first byte of a sequence outside the
// alphabet, plus how many offending bytes the sequence holds in total.
type InvalidBaseError struct {
	Base   byte
	Offset int
	Count  int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at offset %d (%d bad base(s) total, use only %s)", e.Base, e.Offset, e.Count, DNA)
}

// Validate checks that every byte of s belongs to the alphabet. The whole
// string is scanned before returning so a record is rejected outright
// rather than partially counted. The empty string is valid.
func Validate(s string, alphabet Alphabet) error {
	bad := -1
	count := 0
	for i := 0; i < len(s); i++ {
		if !alphabet.Contains(s[i]) {
			if bad < 0 {
				bad = i
			}
			count++
		}
	}

	if bad >= 0 {
		return &InvalidBaseError{Base: s[bad], Offset: bad, Count: count}
	}
	return nil
}
