// Package resolver maps collected source items to concrete destination
// paths under the output root, applying the collision policy.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webpconv/models"
)

// Resolver computes destinations for one job. It tracks every path it
// has handed out, so destinations stay unique within the run even when
// two sources share a stem (a.png and a.jpg both want a.webp). Resolve
// is called sequentially before dispatch; rename numbering is assigned
// here, deterministically, never at write time.
type Resolver struct {
	outputRoot string
	policy     models.CollisionPolicy
	claimed    map[string]bool // destination path → taken by this run
}

// New creates a resolver for one job.
func New(outputRoot string, policy models.CollisionPolicy) *Resolver {
	return &Resolver{
		outputRoot: outputRoot,
		policy:     policy,
		claimed:    make(map[string]bool),
	}
}

// Resolve computes the destination for item and creates its parent
// directory. The only filesystem side effect is that directory; the
// converted bytes are written later by the dispatcher.
func (r *Resolver) Resolve(item models.SourceItem) (models.ResolvedTask, error) {
	base := filepath.Join(r.outputRoot, swapExtension(item.RelativePath))

	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return models.ResolvedTask{}, fmt.Errorf("cannot create output directory for %s: %w", base, err)
	}

	dest := base
	action := models.ActionConvert

	onDisk := exists(base)
	switch {
	case r.claimed[base]:
		// Another item in this run owns the base path; number this one
		// regardless of policy to keep destinations unique.
		dest = r.numbered(base)
	case onDisk && r.policy == models.PolicySkip:
		action = models.ActionSkipExisting
	case onDisk && r.policy == models.PolicyRename:
		dest = r.numbered(base)
	case onDisk && r.policy == models.PolicyOverwrite:
		// keep base, existing file will be replaced
	}

	r.claimed[dest] = true
	return models.ResolvedTask{Source: item, Destination: dest, Action: action}, nil
}

// numbered appends -1, -2, ... before the extension until a path is
// found that neither exists on disk nor was claimed by this run.
func (r *Resolver) numbered(base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if r.claimed[candidate] || exists(candidate) {
			continue
		}
		return candidate
	}
}

// swapExtension replaces the source extension with the target format's,
// whatever the case of the original.
func swapExtension(relPath string) string {
	return strings.TrimSuffix(relPath, filepath.Ext(relPath)) + "." + models.TargetExtension
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
