package pogreport

import "fmt"

// Stage names the phase of report generation that failed.
type Stage string

const (
	StageTemplate Stage = "template"
	StageParse    Stage = "parse"
	StagePaint    Stage = "paint"
	StageWrite    Stage = "write"
)

// StageError is the single terminal error of a failed generation.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pogreport: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
