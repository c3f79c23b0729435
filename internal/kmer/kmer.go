// Package kmer enumerates fixed-length substrings of nucleotide sequences
// and tallies their frequencies.
package kmer

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Order is a serialization order for a frequency table.
type Order string

const (
	// OrderAlpha sorts k-mers lexicographically.
	OrderAlpha Order = "alpha"

	// OrderFreq sorts by descending count, ties broken lexicographically.
	OrderFreq Order = "freq"
)

// Kmers returns every substring of length k in seq, one per starting
// offset, left to right, overlapping with step 1.
//
// Edge policy: k == 0 yields exactly one k-mer, the empty string, for any
// sequence including the empty one. k > len(seq) yields no k-mers and no
// error. k < 0 is a caller error and yields nil.
func Kmers(seq string, k int) []string {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []string{""}
	}
	if k > len(seq) {
		return nil
	}

	kmers := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers
}

// Table maps each observed k-mer to its occurrence count.
type Table map[string]uint64

// Count tallies kmers into a new Table. Absent keys start at zero and the
// result depends only on the multiset of inputs, not their order.
func Count(kmers []string) Table {
	table := make(Table, len(kmers))
	for _, mer := range kmers {
		table[mer]++
	}
	return table
}

// Add folds kmers into an existing table, so multiple records can share
// one table per file.
func (t Table) Add(kmers []string) {
	for _, mer := range kmers {
		t[mer]++
	}
}

// Total returns the sum of all counts in the table.
func (t Table) Total() (n uint64) {
	for _, count := range t {
		n += count
	}
	return n
}

// Entry is one (k-mer, count) pair of a serialized table.
type Entry struct {
	Seq   string
	Count uint64
}

// Entries returns the table's pairs in the requested order. Both orders are
// total, so identical tables always serialize identically.
func (t Table) Entries(order Order) []Entry {
	entries := make([]Entry, 0, len(t))
	for mer, count := range t {
		entries = append(entries, Entry{Seq: mer, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if order == OrderFreq && entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Seq < entries[j].Seq
	})
	return entries
}

// Write serializes the table to w as tab-separated (kmer, count) lines
// under a "kmer\tcount" header.
func (t Table) Write(w io.Writer, order Order) error {
	var b strings.Builder
	b.WriteString("kmer\tcount\n")
	for _, entry := range t.Entries(order) {
		fmt.Fprintf(&b, "%s\t%d\n", entry.Seq, entry.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
