// Package discovery locates symbol files under a training-data root and
// watches directories for newly arriving samples.  It is pure I/O glue: the
// pipeline consumes the file paths it yields and imposes no ordering
// requirement, but the scanner sorts numerically by iso index so batch runs
// are reproducible.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/turtacn/Ink-Intelligence/internal/config"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// Scanner walks a directory tree for symbol files.
type Scanner struct {
	cfg config.DiscoveryConfig
}

// NewScanner constructs a Scanner from discovery configuration.
func NewScanner(cfg config.DiscoveryConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Discover returns every symbol file under the configured root: regular
// files inside a directory whose path contains the marker component, whose
// name starts with the file prefix, and whose name is not excluded.  Results
// are sorted by iso index (numeric, not lexicographic), with unnumbered
// files after the numbered ones.
func (s *Scanner) Discover() ([]string, error) {
	var found []string
	err := filepath.WalkDir(s.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if s.matches(path, d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDiscovery, "failed to walk training-data root").WithDetail(s.cfg.Root)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return isoIndex(found[i]) < isoIndex(found[j])
	})
	return found, nil
}

// matches applies the marker, prefix, and exclusion rules to one file.
func (s *Scanner) matches(path, name string) bool {
	if s.cfg.Marker != "" && !containsComponent(filepath.Dir(path), s.cfg.Marker) {
		return false
	}
	if !strings.HasPrefix(name, s.cfg.FilePrefix) {
		return false
	}
	for _, ex := range s.cfg.Exclude {
		if name == ex {
			return false
		}
	}
	return true
}

// containsComponent reports whether any path component of dir equals marker.
func containsComponent(dir, marker string) bool {
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == marker {
			return true
		}
	}
	return false
}

// isoIndex extracts the numeric index from a symbol file name such as
// "iso12345.inkml".  Files without a parsable index sort last.
func isoIndex(path string) int {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	start := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(name[start:])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
