package runtime

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadContextFromEnv(t *testing.T) {
	t.Setenv(EnvUsername, " someone ")
	t.Setenv(EnvTool, "podman")
	t.Setenv(EnvRoot, "/srv/dockerfiles")
	t.Setenv(EnvToken, "hf_x")
	t.Setenv(EnvDryRun, "true")

	ctx := LoadContext()
	if ctx.Username != "someone" {
		t.Errorf("Username = %q, want someone", ctx.Username)
	}
	if ctx.Tool != "podman" {
		t.Errorf("Tool = %q, want podman", ctx.Tool)
	}
	if ctx.Root != "/srv/dockerfiles" {
		t.Errorf("Root = %q, want /srv/dockerfiles", ctx.Root)
	}
	if ctx.Token != "hf_x" {
		t.Errorf("Token = %q, want hf_x", ctx.Token)
	}
	if !ctx.DryRun {
		t.Error("DryRun = false, want true")
	}
}

func TestLoadContextDefaults(t *testing.T) {
	for _, k := range []string{EnvUsername, EnvTool, EnvRoot, EnvToken, EnvDryRun} {
		t.Setenv(k, "")
	}

	ctx := LoadContext()
	if ctx.Username != "" || ctx.Tool != "" || ctx.Token != "" || ctx.DryRun {
		t.Fatalf("unexpected non-empty defaults: %+v", ctx)
	}
	if ctx.Root != ExecutableDir() {
		t.Fatalf("Root = %q, want executable dir %q", ctx.Root, ExecutableDir())
	}
}

func TestLoadContextIgnoresAmbientHFToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv("HF_TOKEN", "hf_ambient")

	if ctx := LoadContext(); ctx.Token != "" {
		t.Fatalf("Token = %q, want empty without %s", ctx.Token, EnvToken)
	}
}

func TestExecutableDir(t *testing.T) {
	dir := ExecutableDir()
	if !filepath.IsAbs(dir) {
		t.Fatalf("ExecutableDir() = %q, want absolute path", dir)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("ExecutableDir() = %q is not a directory: %v", dir, err)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{" TRUE ", true},
		{"false", false},
		{"", false},
		{"yes", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvDryRun, tt.val)
		if got := envBool(EnvDryRun); got != tt.want {
			t.Errorf("envBool(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", " b ", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Errorf("firstNonEmpty() = %q, want empty", got)
	}
}
