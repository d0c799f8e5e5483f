package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/bookmarkgen/internal/tagindex"
)

// Stub file constants.
const (
	StubExt       = ".md"
	StubLayout    = "tag"
	StubSeparator = "---\n"
	DateFormat    = "2006-01-02"
)

// StubFrontmatter is the metadata block of a tag stub.
type StubFrontmatter struct {
	Layout string `yaml:"layout"`
	Date   string `yaml:"date"`
	Title  string `yaml:"title"`
	Name   string `yaml:"name"`
}

// StubReport lists the files touched by RegenerateStubs.
type StubReport struct {
	Removed []string
	Written []string
}

// NewStubFrontmatter builds the front matter for a tag on the given day.
func NewStubFrontmatter(entry *tagindex.TagEntry, date time.Time) StubFrontmatter {
	return StubFrontmatter{
		Layout: StubLayout,
		Date:   date.Format(DateFormat),
		Title:  "Bookmarks for tag " + entry.Name,
		Name:   entry.Name,
	}
}

// FormatStub renders the stub file content for a tag.
func FormatStub(entry *tagindex.TagEntry, date time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(StubSeparator)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewStubFrontmatter(entry, date)); err != nil {
		return nil, fmt.Errorf("encoding front matter for tag %q: %w", entry.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding front matter for tag %q: %w", entry.Name, err)
	}

	buf.WriteString(StubSeparator)
	return buf.Bytes(), nil
}

// StubPath returns the stub file path for a tag inside dir.
func StubPath(dir string, entry *tagindex.TagEntry) string {
	return filepath.Join(dir, entry.SafeName+StubExt)
}

// RemoveStubs deletes every *.md file in dir, whether or not it belongs to a current tag.
func RemoveStubs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+StubExt))
	if err != nil {
		return nil, &WriteError{Op: "list", Path: dir, Err: err}
	}

	removed := make([]string, 0, len(matches))
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return removed, &WriteError{Op: "remove", Path: path, Err: err}
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// WriteStubFiles writes one stub per entry, in the order given.
// Entries sharing a safe name overwrite each other; the last one wins.
func WriteStubFiles(entries []*tagindex.TagEntry, dir string, date time.Time) ([]string, error) {
	written := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := StubPath(dir, entry)

		content, err := FormatStub(entry, date)
		if err != nil {
			return written, &WriteError{Op: "encode", Path: path, Err: err}
		}

		if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // read by the site generator
			return written, &WriteError{Op: "write", Path: path, Err: err}
		}
		written = append(written, path)
	}
	return written, nil
}

// RegenerateStubs clears dir of stub files and writes the stubs for idx.
// The directory is created when missing. Nothing is rolled back on failure.
func RegenerateStubs(idx *tagindex.Index, dir string, date time.Time) (StubReport, error) {
	var report StubReport

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, &WriteError{Op: "create", Path: dir, Err: err}
	}

	removed, err := RemoveStubs(dir)
	report.Removed = removed
	if err != nil {
		return report, err
	}

	written, err := WriteStubFiles(idx.Entries(), dir, date)
	report.Written = written
	return report, err
}
