package models

import "fmt"

// ErrorKind classifies a per-item failure for summary display.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrDecode
	ErrEncode
	ErrWrite
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrDecode:
		return "decode"
	case ErrEncode:
		return "encode"
	case ErrWrite:
		return "write"
	default:
		return "unknown"
	}
}

// CollectionError aborts the whole job: an input root is missing or
// unreadable, so no items can be gathered.
type CollectionError struct {
	Path string
	Err  error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("cannot collect input %s: %v", e.Path, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }

// UnsafePathError aborts the whole job: the output root and an input
// root overlap, which would make the run feed on its own outputs.
type UnsafePathError struct {
	Input  string
	Output string
	Reason string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf("unsafe output path %s: %s (input %s)", e.Output, e.Reason, e.Input)
}
