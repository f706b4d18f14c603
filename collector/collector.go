// Package collector expands a mixed selection of files and directories
// into the flat list of convertible source items, and validates that the
// output root does not overlap any input root.
package collector

import (
	"os"
	"path/filepath"
	"strings"

	"webpconv/logger"
	"webpconv/models"
)

// Collect expands the input roots into deduplicated SourceItems.
//
// File roots contribute themselves with RelativePath = basename.
// Directory roots are walked depth-first in lexicographic order; every
// regular file with a supported extension is recorded relative to that
// root. Hidden entries (dot-prefixed) are skipped silently, as are
// symlinks whose canonical target was already visited. A file reachable
// through several roots is attributed to the first root that finds it.
func Collect(inputs []string) ([]models.SourceItem, error) {
	var items []models.SourceItem
	seen := make(map[string]bool) // canonical absolute path → already collected

	for _, input := range inputs {
		fi, err := os.Stat(input)
		if err != nil {
			return nil, &models.CollectionError{Path: input, Err: err}
		}

		if !fi.IsDir() {
			if !supported(input) {
				logger.Debugf("skipping %s: unsupported extension", input)
				continue
			}
			abs := canonical(input)
			if seen[abs] {
				continue
			}
			seen[abs] = true
			items = append(items, models.SourceItem{
				AbsolutePath: abs,
				RelativePath: filepath.Base(input),
			})
			continue
		}

		found, err := walkRoot(input, seen)
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
	}

	logger.Debugf("collected %d source items from %d roots", len(items), len(inputs))
	return items, nil
}

// walkRoot walks one directory root iteratively. Visited canonical
// directory paths are tracked so a symlink cycle is skipped instead of
// followed forever; the walk never relies on recursion depth.
func walkRoot(root string, seen map[string]bool) ([]models.SourceItem, error) {
	var items []models.SourceItem

	type frame struct {
		abs string // directory to read
		rel string // its path relative to root, "" for the root itself
	}

	visitedDirs := map[string]bool{canonical(root): true}
	stack := []frame{{abs: root, rel: ""}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// os.ReadDir returns entries sorted by name, so files land in
		// lexicographic order within each directory.
		entries, err := os.ReadDir(cur.abs)
		if err != nil {
			return nil, &models.CollectionError{Path: cur.abs, Err: err}
		}

		var subdirs []frame
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}

			absPath := filepath.Join(cur.abs, name)
			relPath := filepath.Join(cur.rel, name)

			fi, err := os.Stat(absPath) // resolves symlinks
			if err != nil {
				// Dangling symlink or the like, not worth failing the job.
				logger.Debugf("skipping %s: %v", absPath, err)
				continue
			}

			if fi.IsDir() {
				canon := canonical(absPath)
				if visitedDirs[canon] {
					logger.Warnf("skipping %s: directory already visited (symlink cycle?)", absPath)
					continue
				}
				visitedDirs[canon] = true
				subdirs = append(subdirs, frame{abs: absPath, rel: relPath})
				continue
			}

			if !supported(name) {
				continue
			}
			canon := canonical(absPath)
			if seen[canon] {
				continue
			}
			seen[canon] = true
			items = append(items, models.SourceItem{
				AbsolutePath: canon,
				RelativePath: relPath,
			})
		}

		// Reverse push keeps the LIFO traversal lexicographic.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return items, nil
}

func supported(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return models.SupportedExtensions[ext]
}

// canonical resolves path to a symlink-free absolute form. If the path
// (or part of it) cannot be resolved, the cleaned absolute path is used
// so callers always get a stable key.
func canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
