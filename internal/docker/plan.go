// internal/docker/plan.go
//
// The planner turns a BuildRequest into the ordered list of commands
// issued to the container tool:
//
//   - build        → <tool> build --progress=plain -t <ref> [...] <context>
//   - push         → <tool> push <ref>
//   - tag          → <tool> tag <ref> <user>/<target>:latest   (--latest only)
//   - push-latest  → <tool> push <user>/<target>:latest        (--latest only)
//
// Planning is pure; BuildAndPush executes the steps in order.

package docker

import (
	"imgbuild/internal/executil"
)

// Stage names a step of the workflow.
type Stage string

const (
	StageBuild      Stage = "build"
	StagePush       Stage = "push"
	StageTag        Stage = "tag"
	StagePushLatest Stage = "push-latest"
)

// Step is one planned external command.
type Step struct {
	Stage   Stage
	Command executil.Command
}

// Plan is the output of the planner.
type Plan struct {
	Image  string
	Latest string
	Steps  []Step
}

// PlanBuild turns a request into steps. contextDir must already be resolved.
func PlanBuild(req BuildRequest, contextDir, tool string) Plan {
	if tool == "" {
		tool = DefaultTool
	}
	image := req.Image()

	build := executil.New(tool, "build", "--progress=plain", "-t", image)
	if req.Pull {
		build = build.With(executil.Plain("--pull")...)
	}
	if req.NoCache {
		build = build.With(executil.Plain("--no-cache")...)
	}
	if req.BaseImage != "" {
		build = build.With(executil.Plain("--build-arg")...).
			With(executil.Pair(BaseImageBuildArg, req.BaseImage))
	}
	if req.Token != "" {
		build = build.With(executil.Plain("--build-arg")...).
			With(executil.SecretPair(TokenBuildArg, req.Token))
	}
	build = build.With(executil.Plain(contextDir)...)

	plan := Plan{
		Image: image,
		Steps: []Step{
			{Stage: StageBuild, Command: build},
			{Stage: StagePush, Command: executil.New(tool, "push", image)},
		},
	}

	if latest := req.LatestImage(); latest != "" {
		plan.Latest = latest
		plan.Steps = append(plan.Steps,
			Step{Stage: StageTag, Command: executil.New(tool, "tag", image, latest)},
			Step{Stage: StagePushLatest, Command: executil.New(tool, "push", latest)},
		)
	}
	return plan
}
