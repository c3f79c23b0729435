package fasta

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			"two records",
			">seq1\nACGT\n>seq2 desc\nGGTT\n",
			[]Record{{"seq1", "ACGT"}, {"seq2 desc", "GGTT"}},
		},
		{
			"sequence lines are concatenated",
			">seq1\nACGT\nTTAA\nCC\n",
			[]Record{{"seq1", "ACGTTTAACC"}},
		},
		{
			"CRLF terminators stripped",
			">seq1\r\nACGT\r\nTT\r\n",
			[]Record{{"seq1", "ACGTTT"}},
		},
		{
			"blank lines ignored",
			"\n>seq1\n\nACGT\n\n",
			[]Record{{"seq1", "ACGT"}},
		},
		{
			"header without sequence",
			">lonely\n",
			[]Record{{"lonely", ""}},
		},
		{
			"missing trailing newline",
			">seq1\nACGT",
			[]Record{{"seq1", "ACGT"}},
		},
		{"empty input", "", nil},
		{"whitespace-only input", "\n\n  \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("ACGT\n>seq1\nACGT\n"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Parse = %v, want ErrMalformed", err)
	}
}
