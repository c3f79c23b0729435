package kmer

import (
	"reflect"
	"strings"
	"testing"
)

func TestKmers(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		k    int
		want []string
	}{
		{"k=1", "ACGT", 1, []string{"A", "C", "G", "T"}},
		{"k=2", "ACGT", 2, []string{"AC", "CG", "GT"}},
		{"k=3", "ACGT", 3, []string{"ACG", "CGT"}},
		{"k=len", "ACGT", 4, []string{"ACGT"}},
		{"k greater than len", "ACGTA", 10, nil},
		{"empty sequence", "", 10, nil},
		{"k=0", "ACGT", 0, []string{""}},
		{"k=0 empty sequence", "", 0, []string{""}},
		{"negative k", "ACGT", -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Kmers(tt.seq, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Kmers(%q, %d) = %v, want %v", tt.seq, tt.k, got, tt.want)
			}
		})
	}
}

// the number of k-mers in a valid sequence is len-k+1 for k <= len
func TestKmersCountProperty(t *testing.T) {
	s := "ACGTACGTACGTAC"
	for k := 1; k <= len(s); k++ {
		if got, want := len(Kmers(s, k)), len(s)-k+1; got != want {
			t.Errorf("len(Kmers(s, %d)) = %d, want %d", k, got, want)
		}
	}
}

func TestKmersRestartable(t *testing.T) {
	first := Kmers("ACGTACGT", 3)
	second := Kmers("ACGTACGT", 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("enumeration is not deterministic: %v vs %v", first, second)
	}
}

func TestCount(t *testing.T) {
	table := Count(Kmers("ACGTACGT", 4))

	want := Table{"ACGT": 2, "CGTA": 1, "GTAC": 1, "TACG": 1}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("Count = %v, want %v", table, want)
	}
	if table.Total() != 5 {
		t.Errorf("Total = %d, want 5 (len-k+1)", table.Total())
	}
}

// identical multisets produce identical tables regardless of input order
func TestCountOrderIndependent(t *testing.T) {
	kmers := []string{"AC", "CG", "GT", "AC", "AC"}
	reversed := []string{"AC", "AC", "GT", "CG", "AC"}
	if !reflect.DeepEqual(Count(kmers), Count(reversed)) {
		t.Error("tables differ for reordered input")
	}
}

// distinct keys never exceed min(4^k, len-k+1)
func TestCountDistinctBound(t *testing.T) {
	s := "ACGTACGTTTACGGGACT"
	for k := 1; k <= 6; k++ {
		table := Count(Kmers(s, k))
		bound := len(s) - k + 1
		if space := 1 << (2 * uint(k)); space < bound { // 4^k
			bound = space
		}
		if len(table) > bound {
			t.Errorf("k=%d: %d distinct k-mers exceeds bound %d", k, len(table), bound)
		}
	}
}

func TestTableAdd(t *testing.T) {
	table := make(Table)
	table.Add(Kmers("ACGT", 2))
	table.Add(Kmers("ACGT", 2))

	want := Table{"AC": 2, "CG": 2, "GT": 2}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("Add = %v, want %v", table, want)
	}
}

func TestEntriesOrder(t *testing.T) {
	table := Table{"TT": 3, "AA": 1, "CC": 3, "GG": 2}

	tests := []struct {
		order Order
		want  []Entry
	}{
		{OrderAlpha, []Entry{{"AA", 1}, {"CC", 3}, {"GG", 2}, {"TT", 3}}},
		{OrderFreq, []Entry{{"CC", 3}, {"TT", 3}, {"GG", 2}, {"AA", 1}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			if got := table.Entries(tt.order); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Entries(%s) = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestTableWrite(t *testing.T) {
	table := Count(Kmers("ACGTACGT", 4))

	var b strings.Builder
	if err := table.Write(&b, OrderAlpha); err != nil {
		t.Fatal(err)
	}

	want := "kmer\tcount\nACGT\t2\nCGTA\t1\nGTAC\t1\nTACG\t1\n"
	if b.String() != want {
		t.Errorf("Write = %q, want %q", b.String(), want)
	}
}
