package models

// SourceItem is one candidate file discovered during collection.
// RelativePath is relative to the input root the file was found under,
// so directory structure can be mirrored below the output root.
type SourceItem struct {
	AbsolutePath string
	RelativePath string
}

// TaskAction tells the dispatcher what to do with a resolved task.
type TaskAction int

const (
	ActionConvert      TaskAction = iota // decode, encode, write
	ActionSkipExisting                   // destination exists and policy is skip
)

// ResolvedTask pairs a source item with its final destination path.
// Destinations are unique within a job; the resolver guarantees it.
type ResolvedTask struct {
	Source      SourceItem
	Destination string
	Action      TaskAction
}

// TaskStatus is the terminal state of one task.
type TaskStatus int

const (
	StatusConverted TaskStatus = iota
	StatusSkipped
	StatusFailed
)

func (s TaskStatus) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TaskOutcome is produced once per dispatched task and never mutated.
type TaskOutcome struct {
	Task   ResolvedTask
	Status TaskStatus
	Kind   ErrorKind // set when Status is StatusFailed
	Err    error     // underlying cause, nil unless failed
}

// JobSummary is the terminal artifact of a run. Failures keeps the
// failed outcomes in completion order so callers can show reasons.
type JobSummary struct {
	Converted int
	Skipped   int
	Failed    int
	Failures  []TaskOutcome
	Cancelled bool
}

// Total is the number of items the summary accounts for.
func (s JobSummary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}
