package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CollisionPolicy decides what happens when a computed destination path
// already exists on disk.
type CollisionPolicy int

const (
	PolicySkip      CollisionPolicy = iota // leave the existing file, count the item as skipped
	PolicyOverwrite                        // replace the existing file
	PolicyRename                           // append -1, -2, ... before the extension
)

func (p CollisionPolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyOverwrite:
		return "overwrite"
	case PolicyRename:
		return "rename"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// ParseCollisionPolicy maps a config string to a CollisionPolicy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return PolicySkip, nil
	case "overwrite":
		return PolicyOverwrite, nil
	case "rename":
		return PolicyRename, nil
	default:
		return PolicySkip, fmt.Errorf("unknown collision policy %q", s)
	}
}

// SupportedExtensions is the fixed set of convertible inputs, lowercase
// without the leading dot.
var SupportedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"bmp":  true,
}

// TargetExtension is the extension of every output file.
const TargetExtension = "webp"

// ConversionJob describes one batch run. It is immutable once built and
// owned by the orchestrator for the job's lifetime.
type ConversionJob struct {
	ID         uuid.UUID
	Inputs     []string        `validate:"min=1,dive,required"` // input roots, files or directories
	OutputRoot string          `validate:"required"`
	Policy     CollisionPolicy `validate:"min=0,max=2"`
	Quality    int             `validate:"min=1,max=100"` // fixed WebP encode setting, passed through
	Workers    int             `validate:"min=0"`         // 0 means derive from CPU count
}

// NewJob builds a ConversionJob with a fresh ID.
func NewJob(inputs []string, outputRoot string, policy CollisionPolicy, quality int) ConversionJob {
	return ConversionJob{
		ID:         uuid.New(),
		Inputs:     inputs,
		OutputRoot: outputRoot,
		Policy:     policy,
		Quality:    quality,
	}
}
