// internal/docker/build.go
package docker

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"imgbuild/internal/executil"
)

// Builder runs the build → push → [tag → push latest] workflow.
type Builder struct {
	cfg    Config
	runner executil.Runner
	log    *zap.Logger
}

// NewBuilder returns a Builder. A nil logger discards output.
func NewBuilder(cfg Config, runner executil.Runner, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{cfg: cfg, runner: runner, log: log}
}

// BuildAndPush builds the image, pushes it and, if requested, tags and
// pushes :latest. It stops at the first failing step.
func (b *Builder) BuildAndPush(ctx context.Context, req BuildRequest) (Result, error) {
	if b.runner == nil {
		return Result{}, errors.New("BuildAndPush: runner is nil")
	}
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	contextDir, err := resolveContext(b.cfg.Root, req.Target, b.cfg.DryRun)
	if err != nil {
		return Result{}, err
	}

	plan := PlanBuild(req, contextDir, b.cfg.tool())

	b.log.Info("Building and pushing",
		zap.String("image", plan.Image),
		zap.String("context", contextDir))
	if req.Token != "" {
		b.log.Info("Using provided HuggingFace token for build")
	}

	var res Result
	for _, step := range plan.Steps {
		if err := b.run(ctx, step); err != nil {
			return res, err
		}
		switch step.Stage {
		case StagePush:
			res.Image = plan.Image
			b.log.Info("Successfully built and pushed the container", zap.String("image", plan.Image))
		case StagePushLatest:
			res.Latest = plan.Latest
			b.log.Info("Successfully tagged and pushed", zap.String("image", plan.Latest))
		}
	}
	return res, nil
}

func (b *Builder) run(ctx context.Context, step Step) error {
	cmdStr := step.Command.String()
	b.log.Info("Running docker command",
		zap.String("stage", string(step.Stage)),
		zap.String("command", cmdStr))

	err := b.runner.Run(ctx, step.Command)
	if err == nil {
		return nil
	}

	var exitErr *executil.ExitError
	if errors.As(err, &exitErr) {
		b.log.Error("Got error while executing docker command",
			zap.String("stage", string(step.Stage)),
			zap.String("command", cmdStr),
			zap.Int("exit_code", exitErr.Code))
		return &StageError{Stage: step.Stage, Command: cmdStr, Err: err}
	}
	return err
}
