// Package fileio handles the filesystem side of a counting run: locating
// input files, mapping them to mirrored output paths, and reading/writing
// file content.
package fileio

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

// outputSuffix replaces the input file's extension in derived output names.
const outputSuffix = "_kmer.txt"

// NotADirectoryError is returned when a locate root does not name a
// directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// OutsideRootError is returned when an input path is not rooted under the
// input root and so has no mirrored output path.
type OutsideRootError struct {
	Path string
	Root string
}

func (e *OutsideRootError) Error() string {
	return fmt.Sprintf("input path %s is not under input root %s", e.Path, e.Root)
}

// Locate recursively walks root and returns every file whose extension is
// in exts (case-insensitive, a trailing ".gz" is transparent). The root is
// checked eagerly so a non-directory fails before traversal instead of
// producing a silently empty listing. Paths come back lexically sorted for
// reproducible output.
func Locate(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: root}
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matchExt(d.Name(), exts) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// matchExt reports whether name carries one of the accepted extensions,
// ignoring case and any trailing .gz.
func matchExt(name string, exts []string) bool {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range exts {
		if strings.HasSuffix(name, "."+strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// OutputPath mirrors inputPath from inputRoot into outputRoot, preserving
// the relative subpath and replacing the filename's extension with
// "_kmer.txt". Example: (/data, /out, /data/a/b.fasta) -> /out/a/b_kmer.txt.
func OutputPath(inputPath, inputRoot, outputRoot string) (string, error) {
	rel, err := filepath.Rel(inputRoot, inputPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &OutsideRootError{Path: inputPath, Root: inputRoot}
	}

	name := filepath.Base(rel)
	if strings.EqualFold(filepath.Ext(name), ".gz") {
		name = name[:len(name)-len(".gz")]
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(outputRoot, filepath.Dir(rel), stem+outputSuffix), nil
}

// Open opens path for reading, decompressing transparently when the name
// ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	return &gzipReadCloser{gz: gz, file: f}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) { return r.gz.Read(p) }

func (r *gzipReadCloser) Close() error {
	gzErr := r.gz.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// WriteAtomic writes data to path via a temp file in the destination
// directory plus a rename, creating intermediate directories as needed, so
// no reader ever observes a half-written file.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	// CreateTemp defaults to 0600; tables should be world-readable
	tmp.Chmod(0644)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
