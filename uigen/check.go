package uigen

import (
	"bytes"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/uibind/emit"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/internal/version"
	"github.com/teranos/uibind/logger"
)

// Stale describes a generated file that differs from what would be
// generated now
type Stale struct {
	File     string
	Diff     string // unified diff from the file on disk to the fresh output
	Missing  bool   // the file does not exist
	Recorded string // generator version in the existing header, if any
	Newer    bool   // Recorded is newer than the running generator
}

// Check compares r with the file on disk and returns nil when they match
func Check(r *Result, running string) (*Stale, error) {
	current, err := os.ReadFile(r.File)
	missing := os.IsNotExist(err)
	if err != nil && !missing {
		return nil, errors.Wrapf(err, "failed to read %s", r.File)
	}
	if bytes.Equal(current, r.Content) {
		return nil, nil
	}

	s := &Stale{File: r.File, Missing: missing}
	if recorded, ok := emit.HeaderVersion(current); ok {
		s.Recorded = recorded
		if c, ok := version.Compare(recorded, running); ok && c > 0 {
			s.Newer = true
			logger.Warnw("Generated file was written by a newer uibind",
				logger.FieldFile, r.File, "recorded", recorded, "running", running)
		}
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(r.Content)),
		FromFile: r.File,
		ToFile:   r.File + " (generated)",
		Context:  3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to diff generated code")
	}
	s.Diff = diff
	return s, nil
}

// CheckAll checks every result and returns the stale ones. The error wraps
// ErrStale when any file is out of date.
func CheckAll(results []*Result, running string) ([]*Stale, error) {
	var stale []*Stale
	for _, r := range results {
		s, err := Check(r, running)
		if err != nil {
			return nil, err
		}
		if s != nil {
			stale = append(stale, s)
		}
	}
	if len(stale) > 0 {
		return stale, errors.WithHint(
			errors.Wrapf(errors.ErrStale, "%d of %d file(s)", len(stale), len(results)),
			"run 'uibind generate' to refresh them")
	}
	return nil, nil
}
