package runtime

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ridge/must"
)

// Environment variables consulted by LoadContext.
const (
	EnvUsername = "IMGBUILD_USERNAME"
	EnvTool     = "IMGBUILD_TOOL"
	EnvRoot     = "IMGBUILD_ROOT"
	EnvDryRun   = "IMGBUILD_DRY_RUN"
	EnvToken    = "IMGBUILD_HF_TOKEN"
)

// Context captures environment-provided defaults. Flags override every field.
type Context struct {
	Username string
	Tool     string
	Root     string
	Token    string
	DryRun   bool
}

// LoadContext reads the environment. Empty values are left empty so callers
// apply their own defaults.
func LoadContext() Context {
	root := firstNonEmpty(os.Getenv(EnvRoot))
	if root == "" {
		root = ExecutableDir()
	}
	return Context{
		Username: firstNonEmpty(os.Getenv(EnvUsername)),
		Tool:     firstNonEmpty(os.Getenv(EnvTool)),
		Root:     root,
		Token:    os.Getenv(EnvToken),
		DryRun:   envBool(EnvDryRun),
	}
}

// ExecutableDir is the directory holding the running binary, symlinks resolved.
// Build contexts live next to it by default.
func ExecutableDir() string {
	return filepath.Dir(must.String(filepath.EvalSymlinks(must.String(os.Executable()))))
}

func envBool(k string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	return err == nil && v
}
