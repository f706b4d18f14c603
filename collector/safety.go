package collector

import (
	"os"
	"path/filepath"
	"strings"

	"webpconv/models"
)

// Validate rejects jobs whose output root overlaps an input root. For a
// directory input: the output root must not equal it, contain it, or
// live inside it, otherwise the run would feed on its own outputs. File
// inputs only need the output root to be a different path. Runs once
// per job, before anything is written.
func Validate(inputs []string, outputRoot string) error {
	out := canonicalMaybeMissing(outputRoot)

	for _, input := range inputs {
		fi, err := os.Stat(input)
		if err != nil {
			return &models.CollectionError{Path: input, Err: err}
		}
		in := canonical(input)

		if in == out {
			return &models.UnsafePathError{Input: input, Output: outputRoot, Reason: "output root equals an input root"}
		}
		if !fi.IsDir() {
			continue
		}
		if isWithin(in, out) {
			return &models.UnsafePathError{Input: input, Output: outputRoot, Reason: "output root is inside an input directory"}
		}
		if isWithin(out, in) {
			return &models.UnsafePathError{Input: input, Output: outputRoot, Reason: "output root contains an input directory"}
		}
	}
	return nil
}

// isWithin reports whether child is strictly below parent.
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// canonicalMaybeMissing canonicalizes a path that may not exist yet by
// resolving its closest existing ancestor and re-joining the remainder.
func canonicalMaybeMissing(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	existing := abs
	var tail []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		tail = append([]string{filepath.Base(existing)}, tail...)
		existing = parent
	}

	resolved := canonical(existing)
	return filepath.Join(append([]string{resolved}, tail...)...)
}
