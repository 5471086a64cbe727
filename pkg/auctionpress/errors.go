package auctionpress

import "fmt"

// PipelineError wraps a failure in one stage of a tick. Stage is one of
// "resolve", "open", "render", "write", "publish".
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline stage %q: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) *PipelineError {
	return &PipelineError{Stage: stage, Err: err}
}
