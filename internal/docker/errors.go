package docker

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrBuild = errors.New("build failed")
	ErrPush  = errors.New("push failed")
	ErrTag   = errors.New("tag failed")
)

// StageError reports a step whose command exited non-zero.
type StageError struct {
	Stage   Stage
	Command string // masked
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%v: %v", e.sentinel(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the failed stage.
func (e *StageError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *StageError) sentinel() error {
	switch e.Stage {
	case StageBuild:
		return ErrBuild
	case StageTag:
		return ErrTag
	default:
		return ErrPush
	}
}
