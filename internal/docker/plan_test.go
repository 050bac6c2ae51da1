package docker

import (
	"strings"
	"testing"
)

func TestPlanBuild(t *testing.T) {
	tests := []struct {
		name       string
		req        BuildRequest
		tool       string
		wantStages []Stage
		wantBuild  string
	}{
		{
			name:       "minimal",
			req:        BuildRequest{Target: "app", Username: "me", Tag: "01012025"},
			wantStages: []Stage{StageBuild, StagePush},
			wantBuild:  "docker build --progress=plain -t me/app:01012025 /ctx/app",
		},
		{
			name:       "latest adds tag and push",
			req:        BuildRequest{Target: "app", Username: "me", Tag: "01012025", Latest: true},
			wantStages: []Stage{StageBuild, StagePush, StageTag, StagePushLatest},
			wantBuild:  "docker build --progress=plain -t me/app:01012025 /ctx/app",
		},
		{
			name:       "base image before token",
			req:        BuildRequest{Target: "app", Username: "me", Tag: "v1", BaseImage: "ubuntu:22.04", Token: "t0k"},
			wantStages: []Stage{StageBuild, StagePush},
			wantBuild:  "docker build --progress=plain -t me/app:v1 --build-arg DOCKER_FROM=ubuntu:22.04 --build-arg HF_TOKEN=*** /ctx/app",
		},
		{
			name:       "pull and no-cache",
			req:        BuildRequest{Target: "app", Username: "me", Tag: "v1", Pull: true, NoCache: true},
			tool:       "podman",
			wantStages: []Stage{StageBuild, StagePush},
			wantBuild:  "podman build --progress=plain -t me/app:v1 --pull --no-cache /ctx/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanBuild(tt.req, "/ctx/app", tt.tool)
			if len(plan.Steps) != len(tt.wantStages) {
				t.Fatalf("steps = %d, want %d", len(plan.Steps), len(tt.wantStages))
			}
			for i, s := range plan.Steps {
				if s.Stage != tt.wantStages[i] {
					t.Errorf("step[%d].Stage = %s, want %s", i, s.Stage, tt.wantStages[i])
				}
			}
			if got := plan.Steps[0].Command.String(); got != tt.wantBuild {
				t.Errorf("build = %q\nwant    %q", got, tt.wantBuild)
			}
		})
	}
}

func TestPlanBuildLatestCommands(t *testing.T) {
	req := BuildRequest{Target: "app", Username: "me", Tag: "v1", Latest: true}
	plan := PlanBuild(req, "/ctx/app", "")

	if plan.Image != "me/app:v1" || plan.Latest != "me/app:latest" {
		t.Fatalf("plan refs = %q, %q", plan.Image, plan.Latest)
	}
	want := []string{
		"docker push me/app:v1",
		"docker tag me/app:v1 me/app:latest",
		"docker push me/app:latest",
	}
	for i, w := range want {
		if got := plan.Steps[i+1].Command.String(); got != w {
			t.Errorf("step[%d] = %q, want %q", i+1, got, w)
		}
	}
}

func TestPlanBuildTokenOnlyInArgv(t *testing.T) {
	req := BuildRequest{Target: "app", Username: "me", Tag: "v1", Token: "abc def=ghi"}
	build := PlanBuild(req, "/ctx/app", "").Steps[0].Command

	if strings.Contains(build.String(), "abc") {
		t.Fatalf("String() leaked token: %s", build.String())
	}
	argv := build.Argv()
	if argv[len(argv)-2] != "HF_TOKEN=abc def=ghi" {
		t.Fatalf("argv = %q", argv)
	}
	if argv[len(argv)-1] != "/ctx/app" {
		t.Fatalf("context dir not last: %q", argv)
	}
}

func TestPlanBuildEmptyTokenOmitted(t *testing.T) {
	req := BuildRequest{Target: "app", Username: "me", Tag: "v1"}
	for _, a := range PlanBuild(req, "/ctx/app", "").Steps[0].Command.Argv() {
		if a == "--build-arg" {
			t.Fatal("build arg present without token or base image")
		}
	}
}
