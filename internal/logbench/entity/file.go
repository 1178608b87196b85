package entity

// FileRef points at one file matched during directory enumeration.
type FileRef struct {
	Path string
	Name string
}

// RunKind names the two benchmark passes.
type RunKind string

const (
	RunSequential RunKind = "sequential"
	RunConcurrent RunKind = "concurrent"
)
