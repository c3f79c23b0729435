// Package pipeline composes the per-file counting steps (read, parse,
// validate, enumerate, count, write) and dispatches files to a worker
// pool. Each file's processing is a pure function of (path, Config), so
// any concurrency strategy can wrap it unchanged.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yamad/kmer-count/internal/fasta"
	"github.com/yamad/kmer-count/internal/fileio"
	"github.com/yamad/kmer-count/internal/kmer"
	"github.com/yamad/kmer-count/internal/seq"
)

// Policy says what a run does when a record fails base validation.
type Policy string

const (
	// PolicySkip drops the offending record with a warning and keeps going.
	PolicySkip Policy = "skip"

	// PolicyAbort fails the whole run on the first offending record.
	PolicyAbort Policy = "abort"
)

// Config carries every setting a counting run needs. All state is explicit
// so the pipeline can be tested without bootstrapping logging or globals.
type Config struct {
	// K is the k-mer length. K == 0 counts a single empty k-mer per
	// sequence (see kmer.Kmers); negative K is rejected by config
	// validation before a run starts.
	K int

	// Extensions are the accepted input file extensions, without dots.
	Extensions []string

	// InputRoot is the directory scanned for input files.
	InputRoot string

	// OutputRoot is the directory that mirrors InputRoot's structure.
	OutputRoot string

	// OnInvalid is the policy applied when a record fails validation.
	OnInvalid Policy

	// Sort is the serialization order for output tables.
	Sort kmer.Order

	// Alphabet is the permitted base set for validation.
	Alphabet seq.Alphabet

	// Threads is the number of files processed concurrently.
	Threads int

	// Logger receives per-record warnings and per-file progress.
	Logger *log.Logger
}

// Result summarizes one processed file.
type Result struct {
	// Input and Output are the file's paths on both sides of the run.
	Input  string
	Output string

	// Records is the number of records counted; Skipped is the number
	// dropped under PolicySkip.
	Records int
	Skipped int

	// Kmers is the total number of k-mers tallied across all records.
	Kmers uint64
}

// CountFile runs the whole pipeline for one input file: read and parse its
// records, validate each, accumulate every record's k-mers into the file's
// single shared table, and write the sorted table to the mirrored output
// path. The output write is atomic (temp file + rename).
func (c Config) CountFile(path string) (Result, error) {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	res := Result{Input: path}

	r, err := fileio.Open(path)
	if err != nil {
		return res, err
	}
	content, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	records, err := fasta.Parse(bytes.NewReader(content))
	if err != nil {
		return res, fmt.Errorf("parse %s: %w", path, err)
	}

	// all records in a file share one table
	table := make(kmer.Table)
	for _, rec := range records {
		if err := seq.Validate(rec.Sequence, c.Alphabet); err != nil {
			if c.OnInvalid == PolicyAbort {
				return res, fmt.Errorf("%s, record %q: %w", path, rec.Header, err)
			}
			c.Logger.Warn("skipping record", "file", path, "record", rec.Header, "err", err)
			res.Skipped++
			continue
		}
		table.Add(kmer.Kmers(rec.Sequence, c.K))
		res.Records++
	}

	// a file whose records all failed validation gets no output table at
	// all, just the warnings above: an empty table would be
	// indistinguishable from a valid file with no counted k-mers
	if res.Skipped > 0 && res.Records == 0 {
		c.Logger.Warn("no valid records, output omitted", "file", path, "skipped", res.Skipped)
		return res, nil
	}

	outPath, err := fileio.OutputPath(path, c.InputRoot, c.OutputRoot)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer
	if err := table.Write(&buf, c.Sort); err != nil {
		return res, err
	}
	if err := fileio.WriteAtomic(outPath, buf.Bytes()); err != nil {
		return res, fmt.Errorf("write %s: %w", outPath, err)
	}

	res.Output = outPath
	res.Kmers = table.Total()
	return res, nil
}

// Run locates every matching file under the input root and counts each on
// a pool of Threads workers. Files are independent, so workers share
// nothing but the read-only listing. The first error cancels the run;
// results for files completed before cancellation are still returned,
// sorted by input path.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	paths, err := fileio.Locate(cfg.InputRoot, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		res Result
		err error
	}
	jobs := make(chan string)
	outcomes := make(chan outcome, len(paths))

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					res, err := cfg.CountFile(path)
					outcomes <- outcome{res: res, err: err}
					if err != nil {
						cancel()
						return
					}
					cfg.Logger.Info("counted", "file", path, "out", res.Output, "kmers", res.Kmers)
				}
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	var results []Result
	var firstErr error
	for o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results = append(results, o.res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })

	if firstErr != nil {
		return results, firstErr
	}
	return results, parent.Err()
}
