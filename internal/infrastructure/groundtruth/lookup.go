// Package groundtruth loads the identifier → symbol table that labels
// training samples.  The table is built once, before any concurrent reads
// begin, and is immutable afterwards — the single shared resource of a batch
// run, safe for many readers without locking.
package groundtruth

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// Table maps sample identifiers to their ground-truth symbol.
type Table struct {
	labels map[string]string
}

// Load reads an iso_GT.txt-style table from path: one sample per line,
// "identifier,label", where the label is everything after the first comma
// (some CROHME symbols are themselves commas).  Blank lines are skipped;
// a line without a comma is a malformed table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGroundTruthLoad, "failed to open ground-truth table").WithDetail(path)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		if app := (*errors.AppError)(nil); errors.As(err, &app) {
			return nil, app.WithDetail(path)
		}
		return nil, err
	}
	return table, nil
}

// Parse reads a ground-truth table from r.
func Parse(r io.Reader) (*Table, error) {
	labels := make(map[string]string)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		id, label, found := strings.Cut(text, ",")
		if !found {
			return nil, errors.Newf(errors.ErrCodeGroundTruthLoad, "malformed ground-truth line %d: no separator", line)
		}
		labels[strings.TrimSpace(id)] = strings.TrimSpace(label)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGroundTruthLoad, "failed to read ground-truth table")
	}
	return &Table{labels: labels}, nil
}

// Len returns the number of labeled identifiers.
func (t *Table) Len() int {
	return len(t.labels)
}

// Lookup returns the label for id.  An unknown identifier is the per-sample
// hard error ErrCodeUnknownLabel; the caller excludes that sample rather
// than zero-filling its label.
func (t *Table) Lookup(id string) (string, error) {
	label, ok := t.labels[id]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownLabel, "no ground-truth entry for sample").WithDetail("ui=" + id)
	}
	return label, nil
}
